package seva

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

type Service interface {
	CreateSeva(ctx context.Context, seva *Seva, staffID string, ip string) error
	UpdateSeva(ctx context.Context, id string, fields map[string]interface{}, staffID string, ip string) (*Seva, error)
	DeleteSeva(ctx context.Context, id string, staffID string, ip string) error
	ListSevas(ctx context.Context, filter ListFilter) ([]Seva, error)
	GetSevaByID(ctx context.Context, id string) (*Seva, error)
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
}

func NewService(repo Repository, auditSvc auditlog.Service) Service {
	return &service{
		repo:     repo,
		auditSvc: auditSvc,
	}
}

func (s *service) CreateSeva(ctx context.Context, seva *Seva, staffID string, ip string) error {
	if seva.MaxPersonsPerTicket < 1 {
		return utils.InvalidRequestf("max_persons_per_ticket must be at least 1")
	}
	if seva.DurationMinutes <= 0 {
		return utils.InvalidRequestf("duration_minutes must be positive")
	}
	if seva.BasePrice < 0 {
		return utils.InvalidRequestf("base_price must not be negative")
	}
	if seva.MaxPerSlotDefault <= 0 {
		return utils.InvalidRequestf("max_per_slot_default must be positive")
	}

	seva.ID = uuid.NewString()
	seva.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, seva); err != nil {
		_ = s.auditSvc.LogAction(ctx, &staffID, "SEVA_CREATE_FAILED", map[string]interface{}{
			"seva_name": seva.NameEnglish,
			"error":     err.Error(),
		}, ip, "failure")
		return err
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "SEVA_CREATED", map[string]interface{}{
		"seva_id":   seva.ID,
		"seva_name": seva.NameEnglish,
		"price":     seva.BasePrice,
	}, ip, "success")

	return nil
}

// UpdateSeva performs a partial merge: only the supplied fields overwrite.
func (s *service) UpdateSeva(ctx context.Context, id string, fields map[string]interface{}, staffID string, ip string) (*Seva, error) {
	if len(fields) == 0 {
		return nil, utils.InvalidRequestf("no fields to update")
	}

	if v, ok := fields["max_persons_per_ticket"]; ok {
		if n, ok := v.(int); ok && n < 1 {
			return nil, utils.InvalidRequestf("max_persons_per_ticket must be at least 1")
		}
	}

	affected, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		_ = s.auditSvc.LogAction(ctx, &staffID, "SEVA_UPDATE_FAILED", map[string]interface{}{
			"seva_id": id,
			"error":   err.Error(),
		}, ip, "failure")
		return nil, err
	}
	if affected == 0 {
		return nil, utils.NotFoundf("seva not found")
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "SEVA_UPDATED", map[string]interface{}{
		"seva_id": id,
		"fields":  fields,
	}, ip, "success")

	return s.GetSevaByID(ctx, id)
}

// DeleteSeva removes the catalog row. Bookings keep their snapshots, so
// the delete neither cascades nor blocks on references.
func (s *service) DeleteSeva(ctx context.Context, id string, staffID string, ip string) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.NotFoundf("seva not found")
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "SEVA_DELETED", map[string]interface{}{
		"seva_id": id,
	}, ip, "success")
	return nil
}

func (s *service) ListSevas(ctx context.Context, filter ListFilter) ([]Seva, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetSevaByID(ctx context.Context, id string) (*Seva, error) {
	seva, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("seva not found")
		}
		return nil, err
	}
	return seva, nil
}
