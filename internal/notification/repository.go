package notification

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, n *InAppNotification) error
	ListByDevotee(ctx context.Context, devoteeID string, limit int) ([]InAppNotification, error)
	MarkRead(ctx context.Context, id, devoteeID string) (int64, error)
	CountUnread(ctx context.Context, devoteeID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *InAppNotification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) ListByDevotee(ctx context.Context, devoteeID string, limit int) ([]InAppNotification, error) {
	var notifications []InAppNotification
	err := r.db.WithContext(ctx).
		Where("devotee_id = ?", devoteeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

func (r *repository) MarkRead(ctx context.Context, id, devoteeID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&InAppNotification{}).
		Where("id = ? AND devotee_id = ?", id, devoteeID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (r *repository) CountUnread(ctx context.Context, devoteeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&InAppNotification{}).
		Where("devotee_id = ? AND is_read = ?", devoteeID, false).
		Count(&count).Error
	return count, err
}
