package schedule

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

type Service interface {
	// Day profiles
	CreateProfile(ctx context.Context, profile *DayProfile, staffID, ip string) error
	ListProfiles(ctx context.Context) ([]DayProfile, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]interface{}, staffID, ip string) (*DayProfile, error)
	DeleteProfile(ctx context.Context, id string, staffID, ip string) error

	// Schedule slots
	CreateSlot(ctx context.Context, slot *ScheduleSlot, staffID, ip string) error
	GetSlotByID(ctx context.Context, id string) (*ScheduleSlot, error)
	ListSlots(ctx context.Context, sevaID, profileID string) ([]ScheduleSlot, error)
	UpdateSlot(ctx context.Context, id string, fields map[string]interface{}, staffID, ip string) (*ScheduleSlot, error)
	DeleteSlot(ctx context.Context, id string, staffID, ip string) error
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
}

func NewService(repo Repository, auditSvc auditlog.Service) Service {
	return &service{repo: repo, auditSvc: auditSvc}
}

// -----------------------------------------
// Day Profiles
// -----------------------------------------

func (s *service) CreateProfile(ctx context.Context, profile *DayProfile, staffID, ip string) error {
	if profile.Name == "" {
		return utils.InvalidRequestf("name is required")
	}

	profile.ID = uuid.NewString()
	if err := s.repo.CreateProfile(ctx, profile); err != nil {
		return err
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "DAY_PROFILE_CREATED", map[string]interface{}{
		"profile_id": profile.ID,
		"name":       profile.Name,
	}, ip, "success")
	return nil
}

func (s *service) ListProfiles(ctx context.Context) ([]DayProfile, error) {
	return s.repo.ListProfiles(ctx)
}

func (s *service) UpdateProfile(ctx context.Context, id string, fields map[string]interface{}, staffID, ip string) (*DayProfile, error) {
	if len(fields) == 0 {
		return nil, utils.InvalidRequestf("no fields to update")
	}

	affected, err := s.repo.UpdateProfileFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, utils.NotFoundf("profile not found")
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "DAY_PROFILE_UPDATED", map[string]interface{}{
		"profile_id": id,
		"fields":     fields,
	}, ip, "success")

	profile, err := s.repo.GetProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *service) DeleteProfile(ctx context.Context, id string, staffID, ip string) error {
	affected, err := s.repo.DeleteProfile(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.NotFoundf("profile not found")
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "DAY_PROFILE_DELETED", map[string]interface{}{
		"profile_id": id,
	}, ip, "success")
	return nil
}

// -----------------------------------------
// Schedule Slots
// -----------------------------------------

func (s *service) CreateSlot(ctx context.Context, slot *ScheduleSlot, staffID, ip string) error {
	if slot.SevaID == "" || slot.ProfileID == "" {
		return utils.InvalidRequestf("seva_id and profile_id are required")
	}
	if slot.StartTime == "" || slot.EndTime == "" {
		return utils.InvalidRequestf("start_time and end_time are required")
	}

	slot.ID = uuid.NewString()
	if err := s.repo.CreateSlot(ctx, slot); err != nil {
		return err
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "SCHEDULE_SLOT_CREATED", map[string]interface{}{
		"slot_id":      slot.ID,
		"seva_id":      slot.SevaID,
		"online_quota": slot.OnlineQuota,
	}, ip, "success")
	return nil
}

func (s *service) GetSlotByID(ctx context.Context, id string) (*ScheduleSlot, error) {
	slot, err := s.repo.GetSlotByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("slot not found")
		}
		return nil, err
	}
	return slot, nil
}

func (s *service) ListSlots(ctx context.Context, sevaID, profileID string) ([]ScheduleSlot, error) {
	return s.repo.ListSlots(ctx, sevaID, profileID)
}

func (s *service) UpdateSlot(ctx context.Context, id string, fields map[string]interface{}, staffID, ip string) (*ScheduleSlot, error) {
	if len(fields) == 0 {
		return nil, utils.InvalidRequestf("no fields to update")
	}

	affected, err := s.repo.UpdateSlotFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, utils.NotFoundf("slot not found")
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "SCHEDULE_SLOT_UPDATED", map[string]interface{}{
		"slot_id": id,
		"fields":  fields,
	}, ip, "success")

	return s.GetSlotByID(ctx, id)
}

func (s *service) DeleteSlot(ctx context.Context, id string, staffID, ip string) error {
	affected, err := s.repo.DeleteSlot(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.NotFoundf("slot not found")
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "SCHEDULE_SLOT_DELETED", map[string]interface{}{
		"slot_id": id,
	}, ip, "success")
	return nil
}
