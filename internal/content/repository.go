package content

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// News
	CreateNews(ctx context.Context, item *News) error
	GetNewsByID(ctx context.Context, id string) (*News, error)
	ListNews(ctx context.Context, activeOnly bool) ([]News, error)
	UpdateNewsFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	DeleteNews(ctx context.Context, id string) (int64, error)

	// Gallery
	CreateGalleryItem(ctx context.Context, item *GalleryItem) error
	ListGallery(ctx context.Context, activeOnly bool, mediaType string) ([]GalleryItem, error)
	UpdateGalleryFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	DeleteGalleryItem(ctx context.Context, id string) (int64, error)

	// Volunteers
	CreateVolunteer(ctx context.Context, vol *Volunteer) error
	GetVolunteerByMobile(ctx context.Context, mobile string) (*Volunteer, error)
	ListVolunteers(ctx context.Context, limit int) ([]Volunteer, error)

	// Newsletter
	GetSubscriberByEmail(ctx context.Context, email string) (*NewsletterSubscriber, error)
	CreateSubscriber(ctx context.Context, sub *NewsletterSubscriber) error

	// Contact
	CreateContactMessage(ctx context.Context, msg *ContactMessage) error
	ListContactMessages(ctx context.Context, limit int) ([]ContactMessage, error)

	// Live streams
	ListLiveStreams(ctx context.Context) ([]LiveStream, error)
	CreateLiveStream(ctx context.Context, stream *LiveStream) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// -----------------------------------------
// News
// -----------------------------------------

func (r *repository) CreateNews(ctx context.Context, item *News) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) GetNewsByID(ctx context.Context, id string) (*News, error) {
	var item News
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) ListNews(ctx context.Context, activeOnly bool) ([]News, error) {
	query := r.db.WithContext(ctx).Model(&News{})
	if activeOnly {
		query = query.Where("active_flag = ?", true)
	}
	var items []News
	err := query.Order("created_at DESC").Limit(50).Find(&items).Error
	return items, err
}

func (r *repository) UpdateNewsFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&News{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *repository) DeleteNews(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&News{})
	return result.RowsAffected, result.Error
}

// -----------------------------------------
// Gallery
// -----------------------------------------

func (r *repository) CreateGalleryItem(ctx context.Context, item *GalleryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) ListGallery(ctx context.Context, activeOnly bool, mediaType string) ([]GalleryItem, error) {
	query := r.db.WithContext(ctx).Model(&GalleryItem{})
	if activeOnly {
		query = query.Where("active_flag = ?", true)
	}
	if mediaType != "" {
		query = query.Where("media_type = ?", mediaType)
	}
	var items []GalleryItem
	err := query.Order("created_at DESC").Limit(50).Find(&items).Error
	return items, err
}

func (r *repository) UpdateGalleryFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&GalleryItem{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *repository) DeleteGalleryItem(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&GalleryItem{})
	return result.RowsAffected, result.Error
}

// -----------------------------------------
// Volunteers
// -----------------------------------------

func (r *repository) CreateVolunteer(ctx context.Context, vol *Volunteer) error {
	return r.db.WithContext(ctx).Create(vol).Error
}

func (r *repository) GetVolunteerByMobile(ctx context.Context, mobile string) (*Volunteer, error) {
	var vol Volunteer
	if err := r.db.WithContext(ctx).Where("mobile = ?", mobile).First(&vol).Error; err != nil {
		return nil, err
	}
	return &vol, nil
}

func (r *repository) ListVolunteers(ctx context.Context, limit int) ([]Volunteer, error) {
	var vols []Volunteer
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&vols).Error
	return vols, err
}

// -----------------------------------------
// Newsletter
// -----------------------------------------

func (r *repository) GetSubscriberByEmail(ctx context.Context, email string) (*NewsletterSubscriber, error) {
	var sub NewsletterSubscriber
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *repository) CreateSubscriber(ctx context.Context, sub *NewsletterSubscriber) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// -----------------------------------------
// Contact
// -----------------------------------------

func (r *repository) CreateContactMessage(ctx context.Context, msg *ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *repository) ListContactMessages(ctx context.Context, limit int) ([]ContactMessage, error) {
	var msgs []ContactMessage
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&msgs).Error
	return msgs, err
}

// -----------------------------------------
// Live streams
// -----------------------------------------

func (r *repository) ListLiveStreams(ctx context.Context) ([]LiveStream, error) {
	var streams []LiveStream
	err := r.db.WithContext(ctx).Limit(10).Find(&streams).Error
	return streams, err
}

func (r *repository) CreateLiveStream(ctx context.Context, stream *LiveStream) error {
	return r.db.WithContext(ctx).Create(stream).Error
}
