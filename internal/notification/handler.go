package notification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cheruvugattu/temple-booking-backend/middleware"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetMyNotifications godoc
// @Summary List the authenticated devotee's notifications
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} InAppNotification
// @Router /notifications/my [get]
func (h *Handler) GetMyNotifications(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	notifications, err := h.service.GetMyNotifications(c.Request.Context(), claims.Subject)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// GetUnreadCount godoc
// @Summary Count unread notifications
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /notifications/unread-count [get]
func (h *Handler) GetUnreadCount(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	count, err := h.service.UnreadCount(c.Request.Context(), claims.Subject)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]string
// @Router /notifications/{id}/read [put]
func (h *Handler) MarkRead(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	if err := h.service.MarkRead(c.Request.Context(), c.Param("id"), claims.Subject); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked read"})
}
