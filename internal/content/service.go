package content

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

const (
	volunteerListLimit = 500
	contactListLimit   = 200
)

type Service interface {
	// News
	CreateNews(ctx context.Context, item *News, staffID, ip string) error
	GetNews(ctx context.Context, id string) (*News, error)
	ListNews(ctx context.Context, activeOnly bool) ([]News, error)
	UpdateNews(ctx context.Context, id string, fields map[string]interface{}, staffID, ip string) (*News, error)
	DeleteNews(ctx context.Context, id string, staffID, ip string) error

	// Gallery
	CreateGalleryItem(ctx context.Context, item *GalleryItem, staffID, ip string) error
	ListGallery(ctx context.Context, activeOnly bool, mediaType string) ([]GalleryItem, error)
	UpdateGalleryItem(ctx context.Context, id string, fields map[string]interface{}, staffID, ip string) error
	DeleteGalleryItem(ctx context.Context, id string, staffID, ip string) error

	// Volunteers
	RegisterVolunteer(ctx context.Context, vol *Volunteer, ip string) error
	ListVolunteers(ctx context.Context) ([]Volunteer, error)

	// Newsletter
	Subscribe(ctx context.Context, email string) (alreadySubscribed bool, err error)

	// Contact
	SubmitContactMessage(ctx context.Context, msg *ContactMessage) error
	ListContactMessages(ctx context.Context) ([]ContactMessage, error)

	// Live streams
	ListLiveStreams(ctx context.Context) ([]LiveStream, error)
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
}

func NewService(repo Repository, auditSvc auditlog.Service) Service {
	return &service{repo: repo, auditSvc: auditSvc}
}

// -----------------------------------------
// News
// -----------------------------------------

func (s *service) CreateNews(ctx context.Context, item *News, staffID, ip string) error {
	if item.Title == "" {
		return utils.InvalidRequestf("title is required")
	}
	item.ID = uuid.NewString()
	if err := s.repo.CreateNews(ctx, item); err != nil {
		return err
	}
	_ = s.auditSvc.LogAction(ctx, &staffID, "NEWS_CREATED", map[string]interface{}{
		"news_id": item.ID,
		"title":   item.Title,
	}, ip, "success")
	return nil
}

func (s *service) GetNews(ctx context.Context, id string) (*News, error) {
	item, err := s.repo.GetNewsByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("news not found")
		}
		return nil, err
	}
	return item, nil
}

func (s *service) ListNews(ctx context.Context, activeOnly bool) ([]News, error) {
	return s.repo.ListNews(ctx, activeOnly)
}

func (s *service) UpdateNews(ctx context.Context, id string, fields map[string]interface{}, staffID, ip string) (*News, error) {
	if len(fields) == 0 {
		return nil, utils.InvalidRequestf("no fields to update")
	}
	affected, err := s.repo.UpdateNewsFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, utils.NotFoundf("news not found")
	}
	_ = s.auditSvc.LogAction(ctx, &staffID, "NEWS_UPDATED", map[string]interface{}{
		"news_id": id,
		"fields":  fields,
	}, ip, "success")
	return s.GetNews(ctx, id)
}

func (s *service) DeleteNews(ctx context.Context, id string, staffID, ip string) error {
	affected, err := s.repo.DeleteNews(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.NotFoundf("news not found")
	}
	_ = s.auditSvc.LogAction(ctx, &staffID, "NEWS_DELETED", map[string]interface{}{
		"news_id": id,
	}, ip, "success")
	return nil
}

// -----------------------------------------
// Gallery
// -----------------------------------------

func (s *service) CreateGalleryItem(ctx context.Context, item *GalleryItem, staffID, ip string) error {
	if item.Title == "" || item.ImageURL == "" {
		return utils.InvalidRequestf("title and image_url are required")
	}
	if item.MediaType == "" {
		item.MediaType = "IMAGE"
	}
	if item.Category == "" {
		item.Category = "Temple"
	}
	item.ID = uuid.NewString()
	if err := s.repo.CreateGalleryItem(ctx, item); err != nil {
		return err
	}
	_ = s.auditSvc.LogAction(ctx, &staffID, "GALLERY_ITEM_CREATED", map[string]interface{}{
		"item_id": item.ID,
		"title":   item.Title,
	}, ip, "success")
	return nil
}

func (s *service) ListGallery(ctx context.Context, activeOnly bool, mediaType string) ([]GalleryItem, error) {
	return s.repo.ListGallery(ctx, activeOnly, mediaType)
}

func (s *service) UpdateGalleryItem(ctx context.Context, id string, fields map[string]interface{}, staffID, ip string) error {
	if len(fields) == 0 {
		return utils.InvalidRequestf("no fields to update")
	}
	affected, err := s.repo.UpdateGalleryFields(ctx, id, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.NotFoundf("gallery item not found")
	}
	_ = s.auditSvc.LogAction(ctx, &staffID, "GALLERY_ITEM_UPDATED", map[string]interface{}{
		"item_id": id,
		"fields":  fields,
	}, ip, "success")
	return nil
}

func (s *service) DeleteGalleryItem(ctx context.Context, id string, staffID, ip string) error {
	affected, err := s.repo.DeleteGalleryItem(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.NotFoundf("gallery item not found")
	}
	_ = s.auditSvc.LogAction(ctx, &staffID, "GALLERY_ITEM_DELETED", map[string]interface{}{
		"item_id": id,
	}, ip, "success")
	return nil
}

// -----------------------------------------
// Volunteers
// -----------------------------------------

func (s *service) RegisterVolunteer(ctx context.Context, vol *Volunteer, ip string) error {
	if vol.Name == "" || vol.Mobile == "" {
		return utils.InvalidRequestf("name and mobile are required")
	}
	if _, err := s.repo.GetVolunteerByMobile(ctx, vol.Mobile); err == nil {
		return utils.Conflictf("mobile already registered as volunteer")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	vol.ID = uuid.NewString()
	vol.Status = "Pending"
	if err := s.repo.CreateVolunteer(ctx, vol); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Conflictf("mobile already registered as volunteer")
		}
		return err
	}

	_ = s.auditSvc.LogAction(ctx, nil, "VOLUNTEER_REGISTERED", map[string]interface{}{
		"volunteer_id": vol.ID,
		"mobile":       vol.Mobile,
	}, ip, "success")
	return nil
}

func (s *service) ListVolunteers(ctx context.Context) ([]Volunteer, error) {
	return s.repo.ListVolunteers(ctx, volunteerListLimit)
}

// -----------------------------------------
// Newsletter
// -----------------------------------------

// Subscribe is idempotent: re-subscribing an existing address is
// reported, not treated as an error.
func (s *service) Subscribe(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, utils.InvalidRequestf("email is required")
	}

	if _, err := s.repo.GetSubscriberByEmail(ctx, email); err == nil {
		return true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	sub := &NewsletterSubscriber{ID: uuid.NewString(), Email: email}
	if err := s.repo.CreateSubscriber(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// -----------------------------------------
// Contact
// -----------------------------------------

func (s *service) SubmitContactMessage(ctx context.Context, msg *ContactMessage) error {
	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return utils.InvalidRequestf("name, email, subject and message are required")
	}
	msg.ID = uuid.NewString()
	msg.Status = "New"
	return s.repo.CreateContactMessage(ctx, msg)
}

func (s *service) ListContactMessages(ctx context.Context) ([]ContactMessage, error) {
	return s.repo.ListContactMessages(ctx, contactListLimit)
}

// -----------------------------------------
// Live streams
// -----------------------------------------

func (s *service) ListLiveStreams(ctx context.Context) ([]LiveStream, error) {
	return s.repo.ListLiveStreams(ctx)
}
