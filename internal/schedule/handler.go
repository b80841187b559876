package schedule

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

// ========================= Day Profile Requests =============================

type CreateProfileRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateProfileRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	return fields
}

// ========================= Slot Requests =============================

type CreateSlotRequest struct {
	SevaID       string  `json:"seva_id" binding:"required"`
	ProfileID    string  `json:"profile_id" binding:"required"`
	Date         *string `json:"date"`
	StartTime    string  `json:"start_time" binding:"required"`
	EndTime      string  `json:"end_time" binding:"required"`
	MaxBookings  int     `json:"max_bookings"`
	OnlineQuota  int     `json:"online_quota"`
	CounterQuota int     `json:"counter_quota"`
}

type UpdateSlotRequest struct {
	Date         *string `json:"date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	MaxBookings  *int    `json:"max_bookings"`
	OnlineQuota  *int    `json:"online_quota"`
	CounterQuota *int    `json:"counter_quota"`
}

func (r *UpdateSlotRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Date != nil {
		fields["date"] = *r.Date
	}
	if r.StartTime != nil {
		fields["start_time"] = *r.StartTime
	}
	if r.EndTime != nil {
		fields["end_time"] = *r.EndTime
	}
	if r.MaxBookings != nil {
		fields["max_bookings"] = *r.MaxBookings
	}
	if r.OnlineQuota != nil {
		fields["online_quota"] = *r.OnlineQuota
	}
	if r.CounterQuota != nil {
		fields["counter_quota"] = *r.CounterQuota
	}
	return fields
}

// ========================= Day Profile Handlers =============================

// CreateProfile godoc
// @Summary Create a day profile
// @Tags schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param profile body CreateProfileRequest true "Day profile"
// @Success 201 {object} DayProfile
// @Router /admin/day-profiles [post]
func (h *Handler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ Invalid day profile payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := middleware.GetClaims(c)
	profile := &DayProfile{Name: req.Name, Description: req.Description}

	if err := h.service.CreateProfile(c.Request.Context(), profile, claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}

	log.Printf("✅ Day profile created: %s", profile.Name)
	c.JSON(http.StatusCreated, profile)
}

// ListProfiles godoc
// @Summary List day profiles
// @Tags schedule
// @Produce json
// @Success 200 {array} DayProfile
// @Router /day-profiles [get]
func (h *Handler) ListProfiles(c *gin.Context) {
	profiles, err := h.service.ListProfiles(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// UpdateProfile godoc
// @Summary Update a day profile
// @Tags schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param profile body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} DayProfile
// @Router /admin/day-profiles/{id} [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := middleware.GetClaims(c)
	profile, err := h.service.UpdateProfile(c.Request.Context(), c.Param("id"), req.Fields(), claims.Subject, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteProfile godoc
// @Summary Delete a day profile
// @Tags schedule
// @Security BearerAuth
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} map[string]string
// @Router /admin/day-profiles/{id} [delete]
func (h *Handler) DeleteProfile(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	if err := h.service.DeleteProfile(c.Request.Context(), c.Param("id"), claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile deleted"})
}

// ========================= Slot Handlers =============================

// CreateSlot godoc
// @Summary Create a schedule slot
// @Tags schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param slot body CreateSlotRequest true "Schedule slot"
// @Success 201 {object} ScheduleSlot
// @Router /admin/schedule-slots [post]
func (h *Handler) CreateSlot(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ Invalid schedule slot payload: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.MaxBookings <= 0 {
		req.MaxBookings = 20
	}
	if req.OnlineQuota <= 0 {
		req.OnlineQuota = req.MaxBookings
	}

	claims, _ := middleware.GetClaims(c)
	slot := &ScheduleSlot{
		SevaID:       req.SevaID,
		ProfileID:    req.ProfileID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MaxBookings:  req.MaxBookings,
		OnlineQuota:  req.OnlineQuota,
		CounterQuota: req.CounterQuota,
	}

	if err := h.service.CreateSlot(c.Request.Context(), slot, claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}

	log.Printf("✅ Schedule slot created: %s %s-%s", slot.SevaID, slot.StartTime, slot.EndTime)
	c.JSON(http.StatusCreated, slot)
}

// ListSlots godoc
// @Summary List schedule slots
// @Tags schedule
// @Produce json
// @Param seva_id query string false "Filter by seva"
// @Param profile_id query string false "Filter by day profile"
// @Success 200 {array} ScheduleSlot
// @Router /schedule-slots [get]
func (h *Handler) ListSlots(c *gin.Context) {
	slots, err := h.service.ListSlots(c.Request.Context(), c.Query("seva_id"), c.Query("profile_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// UpdateSlot godoc
// @Summary Update a schedule slot
// @Tags schedule
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Slot ID"
// @Param slot body UpdateSlotRequest true "Fields to update"
// @Success 200 {object} ScheduleSlot
// @Router /admin/schedule-slots/{id} [put]
func (h *Handler) UpdateSlot(c *gin.Context) {
	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := middleware.GetClaims(c)
	slot, err := h.service.UpdateSlot(c.Request.Context(), c.Param("id"), req.Fields(), claims.Subject, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

// DeleteSlot godoc
// @Summary Delete a schedule slot
// @Tags schedule
// @Security BearerAuth
// @Produce json
// @Param id path string true "Slot ID"
// @Success 200 {object} map[string]string
// @Router /admin/schedule-slots/{id} [delete]
func (h *Handler) DeleteSlot(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	if err := h.service.DeleteSlot(c.Request.Context(), c.Param("id"), claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slot deleted"})
}
