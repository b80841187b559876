package donation

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, d *Donation) error
	GetByID(ctx context.Context, id string) (*Donation, error)
	ListByDevotee(ctx context.Context, devoteeID string, limit int) ([]Donation, error)
	ListAdmin(ctx context.Context, donationType string, limit int) ([]Donation, error)
	TypeStats(ctx context.Context, donationType string) (TypeStats, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Donation, error) {
	var d Donation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) ListByDevotee(ctx context.Context, devoteeID string, limit int) ([]Donation, error) {
	var donations []Donation
	err := r.db.WithContext(ctx).
		Where("devotee_id = ?", devoteeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&donations).Error
	return donations, err
}

func (r *repository) ListAdmin(ctx context.Context, donationType string, limit int) ([]Donation, error) {
	query := r.db.WithContext(ctx).Model(&Donation{})
	if donationType != "" {
		query = query.Where("donation_type = ?", donationType)
	}
	var donations []Donation
	err := query.Order("created_at DESC").Limit(limit).Find(&donations).Error
	return donations, err
}

func (r *repository) TypeStats(ctx context.Context, donationType string) (TypeStats, error) {
	var stats TypeStats
	err := r.db.WithContext(ctx).Model(&Donation{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("donation_type = ? AND payment_status = ?", donationType, "Paid").
		Scan(&stats).Error
	return stats, err
}
