package donation

import (
	"log"
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

type CreateDonationRequest struct {
	DonationType string  `json:"donation_type" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	DonorName    string  `json:"donor_name"`
	DonorMobile  string  `json:"donor_mobile"`
	DonorEmail   string  `json:"donor_email"`
	DonorGotram  string  `json:"donor_gotram"`
	Message      string  `json:"message"`
	IsAnonymous  bool    `json:"is_anonymous"`
}

// CreateDonation godoc
// @Summary Make a donation
// @Tags donations
// @Accept json
// @Produce json
// @Param donation body CreateDonationRequest true "Donation"
// @Success 201 {object} Donation
// @Router /donations [post]
func (h *Handler) CreateDonation(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ Invalid donation payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// authenticated devotees get the donation attached to their profile
	var devoteeID *string
	if claims, ok := middleware.GetClaims(c); ok {
		devoteeID = &claims.Subject
	}

	input := CreateDonationInput{
		DonationType: req.DonationType,
		Amount:       req.Amount,
		DonorName:    req.DonorName,
		DonorMobile:  req.DonorMobile,
		DonorEmail:   req.DonorEmail,
		DonorGotram:  req.DonorGotram,
		Message:      req.Message,
		IsAnonymous:  req.IsAnonymous,
		DevoteeID:    devoteeID,
	}

	d, err := h.service.CreateDonation(c.Request.Context(), input, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// GetMyDonations godoc
// @Summary List the authenticated devotee's donations
// @Tags donations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} Donation
// @Router /donations/my [get]
func (h *Handler) GetMyDonations(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	donations, err := h.service.GetMyDonations(c.Request.Context(), claims.Subject)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, donations)
}

// AdminListDonations godoc
// @Summary List donations (staff)
// @Tags donations
// @Security BearerAuth
// @Produce json
// @Param donation_type query string false "Filter by donation type"
// @Success 200 {array} Donation
// @Router /admin/donations [get]
func (h *Handler) AdminListDonations(c *gin.Context) {
	donations, err := h.service.AdminListDonations(c.Request.Context(), c.Query("donation_type"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, donations)
}

// GetDonationStats godoc
// @Summary Donation totals per type (staff)
// @Tags donations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Stats
// @Router /admin/donation-stats [get]
func (h *Handler) GetDonationStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetReceipt godoc
// @Summary Get the 80G receipt for a paid donation
// @Tags donations
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} Receipt
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /donations/{id}/receipt [get]
func (h *Handler) GetReceipt(c *gin.Context) {
	receipt, err := h.service.GetReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// GetReceiptPDF godoc
// @Summary Download the 80G receipt as PDF
// @Tags donations
// @Produce application/pdf
// @Param id path string true "Donation ID"
// @Success 200 {file} binary
// @Router /donations/{id}/receipt/pdf [get]
func (h *Handler) GetReceiptPDF(c *gin.Context) {
	data, filename, err := h.service.GetReceiptPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}
