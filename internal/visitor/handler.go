package visitor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cheruvugattu/temple-booking-backend/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetStats godoc
// @Summary Visitor counter snapshot
// @Tags visitors
// @Produce json
// @Success 200 {object} Stats
// @Router /visitor-stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Track godoc
// @Summary Record a site visit
// @Tags visitors
// @Produce json
// @Success 200 {object} map[string]string
// @Router /visitor-stats/track [post]
func (h *Handler) Track(c *gin.Context) {
	if err := h.service.Track(c.Request.Context()); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tracked"})
}
