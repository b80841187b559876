package auth

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	CreateDevotee(ctx context.Context, devotee *Devotee) error
	GetDevoteeByID(ctx context.Context, id string) (*Devotee, error)
	GetDevoteeByMobile(ctx context.Context, mobile string) (*Devotee, error)
	TouchLastLogin(ctx context.Context, devoteeID string) error
	ListDevotees(ctx context.Context, limit int) ([]Devotee, error)

	GetStaffByUsername(ctx context.Context, username string) (*StaffUser, error)
	CreateStaff(ctx context.Context, user *StaffUser) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) CreateDevotee(ctx context.Context, devotee *Devotee) error {
	return r.db.WithContext(ctx).Create(devotee).Error
}

func (r *repository) GetDevoteeByID(ctx context.Context, id string) (*Devotee, error) {
	var devotee Devotee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&devotee).Error
	if err != nil {
		return nil, err
	}
	return &devotee, nil
}

func (r *repository) GetDevoteeByMobile(ctx context.Context, mobile string) (*Devotee, error) {
	var devotee Devotee
	err := r.db.WithContext(ctx).Where("mobile = ?", mobile).First(&devotee).Error
	if err != nil {
		return nil, err
	}
	return &devotee, nil
}

func (r *repository) TouchLastLogin(ctx context.Context, devoteeID string) error {
	return r.db.WithContext(ctx).
		Model(&Devotee{}).
		Where("id = ?", devoteeID).
		Update("last_login_at", time.Now().UTC()).Error
}

func (r *repository) ListDevotees(ctx context.Context, limit int) ([]Devotee, error) {
	var devotees []Devotee
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&devotees).Error
	return devotees, err
}

func (r *repository) GetStaffByUsername(ctx context.Context, username string) (*StaffUser, error) {
	var user StaffUser
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) CreateStaff(ctx context.Context, user *StaffUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}
