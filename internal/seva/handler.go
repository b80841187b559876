package seva

import (
	"net/http"
	"strconv"

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

// ========================= REQUEST STRUCTS =============================

type CreateSevaRequest struct {
	NameEnglish         string  `json:"name_english" binding:"required"`
	NameTelugu          string  `json:"name_telugu" binding:"required"`
	Description         string  `json:"description"`
	BasePrice           float64 `json:"base_price"`
	DurationMinutes     int     `json:"duration_minutes"`
	IsOnlineBookable    *bool   `json:"is_online_bookable"`
	IsParokshaAvailable bool    `json:"is_paroksha_available"`
	MaxPerSlotDefault   int     `json:"max_per_slot_default"`
	MaxPersonsPerTicket int     `json:"max_persons_per_ticket"`
	SpecialInstructions string  `json:"special_instructions"`
	ActiveFlag          *bool   `json:"active_flag"`
}

type UpdateSevaRequest struct {
	NameEnglish         *string  `json:"name_english,omitempty"`
	NameTelugu          *string  `json:"name_telugu,omitempty"`
	Description         *string  `json:"description,omitempty"`
	BasePrice           *float64 `json:"base_price,omitempty"`
	DurationMinutes     *int     `json:"duration_minutes,omitempty"`
	IsOnlineBookable    *bool    `json:"is_online_bookable,omitempty"`
	IsParokshaAvailable *bool    `json:"is_paroksha_available,omitempty"`
	MaxPerSlotDefault   *int     `json:"max_per_slot_default,omitempty"`
	MaxPersonsPerTicket *int     `json:"max_persons_per_ticket,omitempty"`
	SpecialInstructions *string  `json:"special_instructions,omitempty"`
	ActiveFlag          *bool    `json:"active_flag,omitempty"`
}

// Fields flattens the request into the partial-update column map, keeping
// only what the client actually supplied.
func (r UpdateSevaRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.NameEnglish != nil {
		fields["name_english"] = *r.NameEnglish
	}
	if r.NameTelugu != nil {
		fields["name_telugu"] = *r.NameTelugu
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.BasePrice != nil {
		fields["base_price"] = *r.BasePrice
	}
	if r.DurationMinutes != nil {
		fields["duration_minutes"] = *r.DurationMinutes
	}
	if r.IsOnlineBookable != nil {
		fields["is_online_bookable"] = *r.IsOnlineBookable
	}
	if r.IsParokshaAvailable != nil {
		fields["is_paroksha_available"] = *r.IsParokshaAvailable
	}
	if r.MaxPerSlotDefault != nil {
		fields["max_per_slot_default"] = *r.MaxPerSlotDefault
	}
	if r.MaxPersonsPerTicket != nil {
		fields["max_persons_per_ticket"] = *r.MaxPersonsPerTicket
	}
	if r.SpecialInstructions != nil {
		fields["special_instructions"] = *r.SpecialInstructions
	}
	if r.ActiveFlag != nil {
		fields["active_flag"] = *r.ActiveFlag
	}
	return fields
}

// ========================= SEVA HANDLERS =============================

// ListSevas - GET /sevas
func (h *Handler) ListSevas(c *gin.Context) {
	activeOnly := true
	if v, err := strconv.ParseBool(c.DefaultQuery("active_only", "true")); err == nil {
		activeOnly = v
	}

	filter := ListFilter{ActiveOnly: activeOnly}
	if p := c.Query("paroksha"); p != "" {
		if v, err := strconv.ParseBool(p); err == nil {
			filter.Paroksha = &v
		}
	}

	sevas, err := h.service.ListSevas(c, filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sevas)
}

// GetSeva - GET /sevas/:id
func (h *Handler) GetSeva(c *gin.Context) {
	seva, err := h.service.GetSevaByID(c, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, seva)
}

// CreateSeva - POST /admin/sevas
func (h *Handler) CreateSeva(c *gin.Context) {
	var input CreateSevaRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error(), "code": "INVALID_REQUEST"})
		return
	}

	seva := Seva{
		NameEnglish:         input.NameEnglish,
		NameTelugu:          input.NameTelugu,
		Description:         input.Description,
		BasePrice:           input.BasePrice,
		DurationMinutes:     input.DurationMinutes,
		IsOnlineBookable:    true,
		IsParokshaAvailable: input.IsParokshaAvailable,
		MaxPerSlotDefault:   input.MaxPerSlotDefault,
		MaxPersonsPerTicket: input.MaxPersonsPerTicket,
		SpecialInstructions: input.SpecialInstructions,
		ActiveFlag:          true,
	}
	if input.IsOnlineBookable != nil {
		seva.IsOnlineBookable = *input.IsOnlineBookable
	}
	if input.ActiveFlag != nil {
		seva.ActiveFlag = *input.ActiveFlag
	}
	if seva.DurationMinutes == 0 {
		seva.DurationMinutes = 30
	}
	if seva.MaxPerSlotDefault == 0 {
		seva.MaxPerSlotDefault = 20
	}
	if seva.MaxPersonsPerTicket == 0 {
		seva.MaxPersonsPerTicket = 4
	}

	claims, _ := middleware.GetClaims(c)
	if err := h.service.CreateSeva(c, &seva, claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, seva)
}

// UpdateSeva - PUT /admin/sevas/:id
func (h *Handler) UpdateSeva(c *gin.Context) {
	var input UpdateSevaRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error(), "code": "INVALID_REQUEST"})
		return
	}

	claims, _ := middleware.GetClaims(c)
	seva, err := h.service.UpdateSeva(c, c.Param("id"), input.Fields(), claims.Subject, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, seva)
}

// DeleteSeva - DELETE /admin/sevas/:id
func (h *Handler) DeleteSeva(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	if err := h.service.DeleteSeva(c, c.Param("id"), claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Seva deleted"})
}
