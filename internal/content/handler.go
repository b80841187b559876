package content

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

type CreateNewsRequest struct {
	Title         string `json:"title" binding:"required"`
	TitleTelugu   string `json:"title_telugu"`
	Content       string `json:"content" binding:"required"`
	ContentTelugu string `json:"content_telugu"`
	IsImportant   bool   `json:"is_important"`
	ActiveFlag    *bool  `json:"active_flag"`
}

type UpdateNewsRequest struct {
	Title         *string `json:"title"`
	TitleTelugu   *string `json:"title_telugu"`
	Content       *string `json:"content"`
	ContentTelugu *string `json:"content_telugu"`
	IsImportant   *bool   `json:"is_important"`
	ActiveFlag    *bool   `json:"active_flag"`
}

func (r *UpdateNewsRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.TitleTelugu != nil {
		fields["title_telugu"] = *r.TitleTelugu
	}
	if r.Content != nil {
		fields["content"] = *r.Content
	}
	if r.ContentTelugu != nil {
		fields["content_telugu"] = *r.ContentTelugu
	}
	if r.IsImportant != nil {
		fields["is_important"] = *r.IsImportant
	}
	if r.ActiveFlag != nil {
		fields["active_flag"] = *r.ActiveFlag
	}
	return fields
}

type CreateGalleryRequest struct {
	Title      string `json:"title" binding:"required"`
	ImageURL   string `json:"image_url" binding:"required"`
	MediaURL   string `json:"media_url"`
	Category   string `json:"category"`
	MediaType  string `json:"media_type"`
	ActiveFlag *bool  `json:"active_flag"`
}

type UpdateGalleryRequest struct {
	Title      *string `json:"title"`
	ImageURL   *string `json:"image_url"`
	MediaURL   *string `json:"media_url"`
	Category   *string `json:"category"`
	ActiveFlag *bool   `json:"active_flag"`
}

func (r *UpdateGalleryRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.ImageURL != nil {
		fields["image_url"] = *r.ImageURL
	}
	if r.MediaURL != nil {
		fields["media_url"] = *r.MediaURL
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.ActiveFlag != nil {
		fields["active_flag"] = *r.ActiveFlag
	}
	return fields
}

type RegisterVolunteerRequest struct {
	Name         string `json:"name" binding:"required"`
	Mobile       string `json:"mobile" binding:"required"`
	Email        string `json:"email"`
	City         string `json:"city"`
	Skills       string `json:"skills"`
	Availability string `json:"availability"`
	Message      string `json:"message"`
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Mobile  string `json:"mobile"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ========================= News Handlers =============================

// ListNews godoc
// @Summary List news items
// @Tags content
// @Produce json
// @Param active_only query bool false "Only active items" default(true)
// @Success 200 {array} News
// @Router /news [get]
func (h *Handler) ListNews(c *gin.Context) {
	activeOnly := c.DefaultQuery("active_only", "true") == "true"
	items, err := h.service.ListNews(c.Request.Context(), activeOnly)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetNews godoc
// @Summary Get a news item
// @Tags content
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} News
// @Router /news/{id} [get]
func (h *Handler) GetNews(c *gin.Context) {
	item, err := h.service.GetNews(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateNews godoc
// @Summary Create a news item (staff)
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param news body CreateNewsRequest true "News item"
// @Success 201 {object} News
// @Router /admin/news [post]
func (h *Handler) CreateNews(c *gin.Context) {
	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.ActiveFlag != nil {
		active = *req.ActiveFlag
	}
	item := &News{
		Title:         req.Title,
		TitleTelugu:   req.TitleTelugu,
		Content:       req.Content,
		ContentTelugu: req.ContentTelugu,
		IsImportant:   req.IsImportant,
		ActiveFlag:    active,
	}

	claims, _ := middleware.GetClaims(c)
	if err := h.service.CreateNews(c.Request.Context(), item, claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}

	log.Printf("✅ News published: %s", item.Title)
	c.JSON(http.StatusCreated, item)
}

// UpdateNews godoc
// @Summary Update a news item (staff)
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "News ID"
// @Param news body UpdateNewsRequest true "Fields to update"
// @Success 200 {object} News
// @Router /admin/news/{id} [put]
func (h *Handler) UpdateNews(c *gin.Context) {
	var req UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := middleware.GetClaims(c)
	item, err := h.service.UpdateNews(c.Request.Context(), c.Param("id"), req.Fields(), claims.Subject, middleware.GetIPFromContext(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteNews godoc
// @Summary Delete a news item (staff)
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param id path string true "News ID"
// @Success 200 {object} map[string]string
// @Router /admin/news/{id} [delete]
func (h *Handler) DeleteNews(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	if err := h.service.DeleteNews(c.Request.Context(), c.Param("id"), claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "news deleted"})
}

// ========================= Gallery Handlers =============================

// ListGallery godoc
// @Summary List gallery items
// @Tags content
// @Produce json
// @Param active_only query bool false "Only active items" default(true)
// @Param media_type query string false "IMAGE or VIDEO"
// @Success 200 {array} GalleryItem
// @Router /gallery [get]
func (h *Handler) ListGallery(c *gin.Context) {
	activeOnly := c.DefaultQuery("active_only", "true") == "true"
	items, err := h.service.ListGallery(c.Request.Context(), activeOnly, c.Query("media_type"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateGalleryItem godoc
// @Summary Add a gallery item (staff)
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body CreateGalleryRequest true "Gallery item"
// @Success 201 {object} GalleryItem
// @Router /admin/gallery [post]
func (h *Handler) CreateGalleryItem(c *gin.Context) {
	var req CreateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.ActiveFlag != nil {
		active = *req.ActiveFlag
	}
	item := &GalleryItem{
		Title:      req.Title,
		ImageURL:   req.ImageURL,
		MediaURL:   req.MediaURL,
		Category:   req.Category,
		MediaType:  req.MediaType,
		ActiveFlag: active,
	}

	claims, _ := middleware.GetClaims(c)
	if err := h.service.CreateGalleryItem(c.Request.Context(), item, claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateGalleryItem godoc
// @Summary Update a gallery item (staff)
// @Tags content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Gallery item ID"
// @Param item body UpdateGalleryRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Router /admin/gallery/{id} [put]
func (h *Handler) UpdateGalleryItem(c *gin.Context) {
	var req UpdateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, _ := middleware.GetClaims(c)
	if err := h.service.UpdateGalleryItem(c.Request.Context(), c.Param("id"), req.Fields(), claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "gallery item updated"})
}

// DeleteGalleryItem godoc
// @Summary Delete a gallery item (staff)
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} map[string]string
// @Router /admin/gallery/{id} [delete]
func (h *Handler) DeleteGalleryItem(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	if err := h.service.DeleteGalleryItem(c.Request.Context(), c.Param("id"), claims.Subject, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "gallery item deleted"})
}

// ========================= Volunteer / Newsletter / Contact =============================

// RegisterVolunteer godoc
// @Summary Register as a volunteer
// @Tags content
// @Accept json
// @Produce json
// @Param volunteer body RegisterVolunteerRequest true "Volunteer application"
// @Success 201 {object} Volunteer
// @Failure 409 {object} map[string]string
// @Router /volunteers [post]
func (h *Handler) RegisterVolunteer(c *gin.Context) {
	var req RegisterVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vol := &Volunteer{
		Name:         req.Name,
		Mobile:       req.Mobile,
		Email:        req.Email,
		City:         req.City,
		Skills:       req.Skills,
		Availability: req.Availability,
		Message:      req.Message,
	}
	if err := h.service.RegisterVolunteer(c.Request.Context(), vol, middleware.GetIPFromContext(c)); err != nil {
		utils.RespondError(c, err)
		return
	}

	log.Printf("✅ Volunteer registered: %s (%s)", vol.Name, vol.Mobile)
	c.JSON(http.StatusCreated, vol)
}

// ListVolunteers godoc
// @Summary List volunteer applications (staff)
// @Tags content
// @Security BearerAuth
// @Produce json
// @Success 200 {array} Volunteer
// @Router /admin/volunteers [get]
func (h *Handler) ListVolunteers(c *gin.Context) {
	vols, err := h.service.ListVolunteers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vols)
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags content
// @Accept json
// @Produce json
// @Param subscription body SubscribeRequest true "Email address"
// @Success 200 {object} map[string]string
// @Router /newsletter/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	already, err := h.service.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if already {
		c.JSON(http.StatusOK, gin.H{"message": "Already subscribed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscribed successfully"})
}

// SubmitContact godoc
// @Summary Send a contact message
// @Tags content
// @Accept json
// @Produce json
// @Param message body ContactRequest true "Contact message"
// @Success 201 {object} ContactMessage
// @Router /contact [post]
func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := &ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Mobile:  req.Mobile,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.service.SubmitContactMessage(c.Request.Context(), msg); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListContactMessages godoc
// @Summary List contact messages (staff)
// @Tags content
// @Security BearerAuth
// @Produce json
// @Success 200 {array} ContactMessage
// @Router /admin/contact-messages [get]
func (h *Handler) ListContactMessages(c *gin.Context) {
	msgs, err := h.service.ListContactMessages(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// ListLiveStreams godoc
// @Summary List live streams
// @Tags content
// @Produce json
// @Success 200 {array} LiveStream
// @Router /live-streams [get]
func (h *Handler) ListLiveStreams(c *gin.Context) {
	streams, err := h.service.ListLiveStreams(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, streams)
}
