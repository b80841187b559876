package seva

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, seva *Seva) error
	GetByID(ctx context.Context, id string) (*Seva, error)
	List(ctx context.Context, filter ListFilter) ([]Seva, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(ctx context.Context, seva *Seva) error {
	return r.db.WithContext(ctx).Create(seva).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Seva, error) {
	var seva Seva
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&seva).Error
	if err != nil {
		return nil, err
	}
	return &seva, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Seva, error) {
	var sevas []Seva

	query := r.db.WithContext(ctx).Model(&Seva{})
	if filter.ActiveOnly {
		query = query.Where("active_flag = ?", true)
	}
	if filter.Paroksha != nil {
		query = query.Where("is_paroksha_available = ?", *filter.Paroksha)
	}

	err := query.Order("created_at ASC").Limit(100).Find(&sevas).Error
	return sevas, err
}

// UpdateFields applies a partial merge: only the supplied columns change.
func (r *repository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&Seva{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Seva{})
	return result.RowsAffected, result.Error
}
