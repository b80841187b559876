package seed

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// Seed godoc
// @Summary      Load demo data
// @Description  Populates the catalog, schedule, accommodations and content with demo rows. No-op when already seeded.
// @Tags         seed
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /seed [post]
func (h *Handler) Seed(c *gin.Context) {
	summary, seeded, err := Run(c.Request.Context(), h.db)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "seeding failed"})
		return
	}
	if !seeded {
		c.JSON(http.StatusOK, gin.H{"message": "Data already seeded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Seed data created successfully",
		"sevas":          summary.Sevas,
		"profiles":       summary.Profiles,
		"slots":          summary.Slots,
		"accommodations": summary.Accommodations,
		"news":           summary.News,
		"gallery":        summary.Gallery,
	})
}
