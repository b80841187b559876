package schedule

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Day profiles
	CreateProfile(ctx context.Context, profile *DayProfile) error
	ListProfiles(ctx context.Context) ([]DayProfile, error)
	GetProfileByID(ctx context.Context, id string) (*DayProfile, error)
	UpdateProfileFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	DeleteProfile(ctx context.Context, id string) (int64, error)

	// Schedule slots
	CreateSlot(ctx context.Context, slot *ScheduleSlot) error
	GetSlotByID(ctx context.Context, id string) (*ScheduleSlot, error)
	ListSlots(ctx context.Context, sevaID, profileID string) ([]ScheduleSlot, error)
	UpdateSlotFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	DeleteSlot(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// -----------------------------------------
// Day Profiles
// -----------------------------------------

func (r *repository) CreateProfile(ctx context.Context, profile *DayProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *repository) ListProfiles(ctx context.Context) ([]DayProfile, error) {
	var profiles []DayProfile
	err := r.db.WithContext(ctx).Limit(100).Find(&profiles).Error
	return profiles, err
}

func (r *repository) GetProfileByID(ctx context.Context, id string) (*DayProfile, error) {
	var profile DayProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) UpdateProfileFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&DayProfile{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *repository) DeleteProfile(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DayProfile{})
	return result.RowsAffected, result.Error
}

// -----------------------------------------
// Schedule Slots
// -----------------------------------------

func (r *repository) CreateSlot(ctx context.Context, slot *ScheduleSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *repository) GetSlotByID(ctx context.Context, id string) (*ScheduleSlot, error) {
	var slot ScheduleSlot
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *repository) ListSlots(ctx context.Context, sevaID, profileID string) ([]ScheduleSlot, error) {
	var slots []ScheduleSlot

	query := r.db.WithContext(ctx).Model(&ScheduleSlot{})
	if sevaID != "" {
		query = query.Where("seva_id = ?", sevaID)
	}
	if profileID != "" {
		query = query.Where("profile_id = ?", profileID)
	}

	err := query.Order("start_time ASC").Limit(500).Find(&slots).Error
	return slots, err
}

func (r *repository) UpdateSlotFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&ScheduleSlot{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *repository) DeleteSlot(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ScheduleSlot{})
	return result.RowsAffected, result.Error
}
