package accommodation

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

type CreateAccommodationRequest struct {
	Name        string  `json:"name" binding:"required"`
	NameTelugu  string  `json:"name_telugu"`
	Description string  `json:"description"`
	RoomType    string  `json:"room_type" binding:"required"`
	Capacity    int     `json:"capacity"`
	PricePerDay float64 `json:"price_per_day"`
	Amenities   string  `json:"amenities"`
	TotalRooms  int     `json:"total_rooms"`
	ActiveFlag  *bool   `json:"active_flag"`
}

type UpdateAccommodationRequest struct {
	Name        *string  `json:"name"`
	NameTelugu  *string  `json:"name_telugu"`
	Description *string  `json:"description"`
	RoomType    *string  `json:"room_type"`
	Capacity    *int     `json:"capacity"`
	PricePerDay *float64 `json:"price_per_day"`
	Amenities   *string  `json:"amenities"`
	TotalRooms  *int     `json:"total_rooms"`
	ActiveFlag  *bool    `json:"active_flag"`
}

func (r *UpdateAccommodationRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.NameTelugu != nil {
		fields["name_telugu"] = *r.NameTelugu
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.RoomType != nil {
		fields["room_type"] = *r.RoomType
	}
	if r.Capacity != nil {
		fields["capacity"] = *r.Capacity
	}
	if r.PricePerDay != nil {
		fields["price_per_day"] = *r.PricePerDay
	}
	if r.Amenities != nil {
		fields["amenities"] = *r.Amenities
	}
	if r.TotalRooms != nil {
		fields["total_rooms"] = *r.TotalRooms
	}
	if r.ActiveFlag != nil {
		fields["active_flag"] = *r.ActiveFlag
	}
	return fields
}

type CreateStayRequest struct {
	AccommodationID string `json:"accommodation_id" binding:"required"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	NumRooms        int    `json:"num_rooms"`
	NumGuests       int    `json:"num_guests"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateStayStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ========================= Catalog Handlers =============================

// ListAccommodations godoc
// @Summary List accommodations
// @Tags accommodations
// @Produce json
// @Param active_only query bool false "Only active accommodations" default(true)
// @Success 200 {array} Accommodation
// @Router /accommodations [get]
func (h *Handler) ListAccommodations(c *gin.Context) {
	activeOnly := c.DefaultQuery("active_only", "true") == "true"
	accs, err := h.service.ListAccommodations(c.Request.Context(), activeOnly)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accs)
}

// GetAccommodation godoc
// @Summary Get an accommodation by ID
// @Tags accommodations
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} Accommodation
// @Failure 404 {object} map[string]string
// @Router /accommodations/{id} [get]
func (h *Handler) GetAccommodation(c *gin.Context) {
	acc, err := h.service.GetAccommodation(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}

// CreateAccommodation godoc
// @Summary Create an accommodation (staff)
// @Tags accommodations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accommodation body CreateAccommodationRequest true "Accommodation"
// @Success 201 {object} Accommodation
// @Router /admin/accommodations [post]
func (h *Handler) CreateAccommodation(c *gin.Context) {
	var req CreateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ Invalid accommodation payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.ActiveFlag != nil {
		active = *req.ActiveFlag
	}
	acc := &Accommodation{
		Name:        req.Name,
		NameTelugu:  req.NameTelugu,
		Description: req.Description,
		RoomType:    req.RoomType,
		Capacity:    req.Capacity,
		PricePerDay: req.PricePerDay,
		Amenities:   req.Amenities,
		TotalRooms:  req.TotalRooms,
		ActiveFlag:  active,
	}

	claims, _ := middleware.GetClaims(c)
	if err := h.service.CreateAccommodation(c.Request.Context(), acc, claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}

	log.Printf("✅ Accommodation created: %s (%s)", acc.Name, acc.RoomType)
	c.JSON(http.StatusCreated, acc)
}

// UpdateAccommodation godoc
// @Summary Update an accommodation (staff)
// @Tags accommodations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param accommodation body UpdateAccommodationRequest true "Fields to update"
// @Success 200 {object} Accommodation
// @Router /admin/accommodations/{id} [put]
func (h *Handler) UpdateAccommodation(c *gin.Context) {
	var req UpdateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := middleware.GetClaims(c)
	acc, err := h.service.UpdateAccommodation(c.Request.Context(), c.Param("id"), req.Fields(), claims.Subject, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}

// DeleteAccommodation godoc
// @Summary Delete an accommodation (staff)
// @Tags accommodations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} map[string]string
// @Router /admin/accommodations/{id} [delete]
func (h *Handler) DeleteAccommodation(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	if err := h.service.DeleteAccommodation(c.Request.Context(), c.Param("id"), claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "accommodation deleted"})
}

// ========================= Stay Handlers =============================

// CreateStay godoc
// @Summary Book an accommodation stay
// @Tags accommodations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param booking body CreateStayRequest true "Stay request"
// @Success 201 {object} AccommodationBooking
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /accommodation-bookings [post]
func (h *Handler) CreateStay(c *gin.Context) {
	var req CreateStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ Invalid stay payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.NumRooms == 0 {
		req.NumRooms = 1
	}
	if req.NumGuests == 0 {
		req.NumGuests = 1
	}

	claims, _ := middleware.GetClaims(c)
	input := CreateStayInput{
		AccommodationID: req.AccommodationID,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		NumRooms:        req.NumRooms,
		NumGuests:       req.NumGuests,
		SpecialRequests: req.SpecialRequests,
	}

	b, err := h.service.CreateStay(c.Request.Context(), claims.Subject, input, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetMyStays godoc
// @Summary List the authenticated devotee's stays
// @Tags accommodations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} AccommodationBooking
// @Router /accommodation-bookings/my [get]
func (h *Handler) GetMyStays(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	stays, err := h.service.GetMyStays(c.Request.Context(), claims.Subject)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stays)
}

// AdminListStays godoc
// @Summary List all accommodation bookings (staff)
// @Tags accommodations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} AccommodationBooking
// @Router /admin/accommodation-bookings [get]
func (h *Handler) AdminListStays(c *gin.Context) {
	stays, err := h.service.AdminListStays(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stays)
}

// UpdateStayStatus godoc
// @Summary Update an accommodation booking's status (staff)
// @Tags accommodations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param status body UpdateStayStatusRequest true "New status"
// @Success 200 {object} AccommodationBooking
// @Router /admin/accommodation-bookings/{id}/status [put]
func (h *Handler) UpdateStayStatus(c *gin.Context) {
	var req UpdateStayStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := middleware.GetClaims(c)
	b, err := h.service.UpdateStayStatus(c.Request.Context(), c.Param("id"), req.Status, claims.Subject, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
