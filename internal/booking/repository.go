package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrCapacityExhausted is returned by AdmitBooking when the slot's
// online quota is already fully booked for the requested date.
var ErrCapacityExhausted = errors.New("slot capacity exhausted")

type Repository interface {
	// AdmitBooking atomically re-checks occupancy for the booking's
	// (slot, date) pair against onlineQuota and inserts the booking.
	// The check and insert run in one transaction holding a row lock
	// on the slot, so concurrent admissions for the same slot
	// serialize and the quota can never be oversubscribed.
	AdmitBooking(ctx context.Context, b *Booking, onlineQuota int) error

	CountActiveBookings(ctx context.Context, slotID, forDate string) (int64, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	GetByNumber(ctx context.Context, bookingNumber string) (*Booking, error)
	ListByDevotee(ctx context.Context, devoteeID string, limit int) ([]Booking, error)
	ListByMobile(ctx context.Context, mobile string, limit int) ([]Booking, error)
	ListAdmin(ctx context.Context, filter AdminFilter, limit int) ([]Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) AdmitBooking(ctx context.Context, b *Booking, onlineQuota int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the slot row so concurrent admissions for the same slot
		// queue behind this transaction.
		var locked struct{ ID string }
		if err := tx.Table("schedule_slots").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", b.SlotID).
			Take(&locked).Error; err != nil {
			return err
		}

		var booked int64
		if err := tx.Model(&Booking{}).
			Where("slot_id = ? AND for_date = ? AND status <> ?", b.SlotID, b.ForDate, StatusCancelled).
			Count(&booked).Error; err != nil {
			return err
		}
		if booked >= int64(onlineQuota) {
			return ErrCapacityExhausted
		}

		return tx.Create(b).Error
	})
}

func (r *repository) CountActiveBookings(ctx context.Context, slotID, forDate string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Booking{}).
		Where("slot_id = ? AND for_date = ? AND status <> ?", slotID, forDate, StatusCancelled).
		Count(&count).Error
	return count, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Booking, error) {
	var b Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetByNumber(ctx context.Context, bookingNumber string) (*Booking, error) {
	var b Booking
	if err := r.db.WithContext(ctx).Where("booking_number = ?", bookingNumber).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListByDevotee(ctx context.Context, devoteeID string, limit int) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("devotee_id = ?", devoteeID).
		Order("booking_date_time DESC").
		Limit(limit).
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) ListByMobile(ctx context.Context, mobile string, limit int) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("devotee_mobile = ?", mobile).
		Order("booking_date_time DESC").
		Limit(limit).
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) ListAdmin(ctx context.Context, filter AdminFilter, limit int) ([]Booking, error) {
	query := r.db.WithContext(ctx).Model(&Booking{})
	if filter.ForDate != "" {
		query = query.Where("for_date = ?", filter.ForDate)
	}
	if filter.SevaID != "" {
		query = query.Where("seva_id = ?", filter.SevaID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var bookings []Booking
	err := query.Order("booking_date_time DESC").Limit(limit).Find(&bookings).Error
	return bookings, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
