package booking

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

// ========================= Requests =============================

type CreateBookingRequest struct {
	SevaID          string `json:"seva_id" binding:"required"`
	SlotID          string `json:"slot_id" binding:"required"`
	ForDate         string `json:"for_date" binding:"required"`
	NumberOfPersons int    `json:"number_of_persons" binding:"required"`
	Gotram          string `json:"gotram"`
	IsParoksha      bool   `json:"is_paroksha"`
	Nakshatra       string `json:"nakshatra"`
	Rashi           string `json:"rashi"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ========================= Handlers =============================

// CreateBooking godoc
// @Summary Book a seva slot
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking request"
// @Success 201 {object} Booking
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ Invalid booking payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := middleware.GetClaims(c)
	input := CreateBookingInput{
		SevaID:          req.SevaID,
		SlotID:          req.SlotID,
		ForDate:         req.ForDate,
		NumberOfPersons: req.NumberOfPersons,
		Gotram:          req.Gotram,
		IsParoksha:      req.IsParoksha,
		Nakshatra:       req.Nakshatra,
		Rashi:           req.Rashi,
	}

	b, err := h.service.CreateBooking(c.Request.Context(), claims.Subject, input, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetAvailableSlots godoc
// @Summary List bookable slots for a seva on a date
// @Tags bookings
// @Produce json
// @Param seva_id query string true "Seva ID"
// @Param date query string true "Target date (YYYY-MM-DD)"
// @Success 200 {array} SlotAvailability
// @Router /slots/available [get]
func (h *Handler) GetAvailableSlots(c *gin.Context) {
	sevaID := c.Query("seva_id")
	date := c.Query("date")
	if sevaID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seva_id and date are required"})
		return
	}

	slots, err := h.service.GetAvailableSlots(c.Request.Context(), sevaID, date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetMyBookings godoc
// @Summary List the authenticated devotee's bookings
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} Booking
// @Router /bookings/my [get]
func (h *Handler) GetMyBookings(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	bookings, err := h.service.GetMyBookings(c.Request.Context(), claims.Subject)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking godoc
// @Summary Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} Booking
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBookingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// LookupTicket godoc
// @Summary Look up bookings by number or mobile
// @Tags bookings
// @Produce json
// @Param booking_number query string false "Booking number"
// @Param mobile query string false "Devotee mobile"
// @Success 200 {array} Booking
// @Failure 400 {object} map[string]string
// @Router /bookings/lookup/ticket [get]
func (h *Handler) LookupTicket(c *gin.Context) {
	bookings, err := h.service.LookupTicket(c.Request.Context(), c.Query("booking_number"), c.Query("mobile"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// AdminListBookings godoc
// @Summary List bookings with filters (staff)
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param date query string false "Filter by target date"
// @Param seva_id query string false "Filter by seva"
// @Param status query string false "Filter by status"
// @Success 200 {array} Booking
// @Router /admin/bookings [get]
func (h *Handler) AdminListBookings(c *gin.Context) {
	filter := AdminFilter{
		ForDate: c.Query("date"),
		SevaID:  c.Query("seva_id"),
		Status:  c.Query("status"),
	}
	bookings, err := h.service.AdminListBookings(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus godoc
// @Summary Update a booking's status (staff)
// @Tags bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} Booking
// @Failure 400 {object} map[string]string
// @Router /admin/bookings/{id}/status [put]
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := middleware.GetClaims(c)
	b, err := h.service.UpdateBookingStatus(c.Request.Context(), c.Param("id"), req.Status, claims.Subject, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	log.Printf("ℹ️ Booking %s status set to %s", b.BookingNumber, b.Status)
	c.JSON(http.StatusOK, b)
}
