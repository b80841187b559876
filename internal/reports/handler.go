package reports

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

// GetDashboardStats godoc
// @Summary Operational overview (staff)
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} DashboardStats
// @Router /admin/stats [get]
func (h *Handler) GetDashboardStats(c *gin.Context) {
	stats, err := h.service.GetDashboardStats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ExportReport godoc
// @Summary Download a report (staff)
// @Tags reports
// @Security BearerAuth
// @Produce application/octet-stream
// @Param type path string true "Report type (bookings or donations)"
// @Param format query string false "csv, excel or pdf" default(csv)
// @Param filter query string false "Date for bookings, donation type for donations"
// @Success 200 {file} binary
// @Router /admin/reports/{type} [get]
func (h *Handler) ExportReport(c *gin.Context) {
	reportType := c.Param("type")
	format := c.DefaultQuery("format", FormatCSV)
	filter := c.Query("filter")

	claims, _ := middleware.GetClaims(c)
	data, filename, mime, err := h.service.ExportReport(c.Request.Context(), reportType, format, filter, claims.Subject, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, mime, data)
}
