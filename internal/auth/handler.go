package auth

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

// ========================= REQUEST STRUCTS =============================

type DevoteeRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`
	Email    string `json:"email"`
	Gotram   string `json:"gotram"`
	Password string `json:"password" binding:"required"`
}

type DevoteeLoginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ========================= HANDLERS =============================

// RegisterDevotee - POST /auth/devotee/register
func (h *Handler) RegisterDevotee(c *gin.Context) {
	var input DevoteeRegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error(), "code": "INVALID_REQUEST"})
		return
	}

	token, devotee, err := h.service.RegisterDevotee(c, RegisterInput{
		Name:     input.Name,
		Mobile:   input.Mobile,
		Email:    input.Email,
		Gotram:   input.Gotram,
		Password: input.Password,
	}, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "devotee": devotee})
}

// LoginDevotee - POST /auth/devotee/login
func (h *Handler) LoginDevotee(c *gin.Context) {
	var input DevoteeLoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error(), "code": "INVALID_REQUEST"})
		return
	}

	token, devotee, err := h.service.LoginDevotee(c, input.Mobile, input.Password, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "devotee": devotee})
}

// LoginAdmin - POST /auth/admin/login
func (h *Handler) LoginAdmin(c *gin.Context) {
	var input AdminLoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error(), "code": "INVALID_REQUEST"})
		return
	}

	token, user, err := h.service.LoginStaff(c, input.Username, input.Password, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GetProfile - GET /devotee/profile
func (h *Handler) GetProfile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "code": "UNAUTHENTICATED"})
		return
	}

	devotee, err := h.service.GetDevoteeByID(c, claims.Subject)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, devotee)
}

// ListDevotees - GET /admin/devotees
func (h *Handler) ListDevotees(c *gin.Context) {
	devotees, err := h.service.ListDevotees(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, devotees)
}
