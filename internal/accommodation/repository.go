package accommodation

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoRoomsAvailable is returned by AdmitBooking when the requested
// rooms would oversubscribe the accommodation for the stay's dates.
var ErrNoRoomsAvailable = errors.New("no rooms available for the requested dates")

type Repository interface {
	Create(ctx context.Context, acc *Accommodation) error
	GetByID(ctx context.Context, id string) (*Accommodation, error)
	List(ctx context.Context, activeOnly bool) ([]Accommodation, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)

	// AdmitBooking atomically checks room occupancy over the stay's
	// date range and inserts the booking. Two stays overlap when one
	// checks in before the other checks out; rooms held by
	// non-Cancelled overlapping stays count against total_rooms.
	AdmitBooking(ctx context.Context, b *AccommodationBooking, totalRooms int) error

	GetBookingByID(ctx context.Context, id string) (*AccommodationBooking, error)
	ListBookingsByDevotee(ctx context.Context, devoteeID string, limit int) ([]AccommodationBooking, error)
	ListBookingsAdmin(ctx context.Context, limit int) ([]AccommodationBooking, error)
	UpdateBookingStatus(ctx context.Context, id, status string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, acc *Accommodation) error {
	return r.db.WithContext(ctx).Create(acc).Error
}

func (r *repository) GetByID(ctx context.Context, id string) (*Accommodation, error) {
	var acc Accommodation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&acc).Error; err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]Accommodation, error) {
	query := r.db.WithContext(ctx).Model(&Accommodation{})
	if activeOnly {
		query = query.Where("active_flag = ?", true)
	}
	var accs []Accommodation
	err := query.Limit(50).Find(&accs).Error
	return accs, err
}

func (r *repository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&Accommodation{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Accommodation{})
	return result.RowsAffected, result.Error
}

func (r *repository) AdmitBooking(ctx context.Context, b *AccommodationBooking, totalRooms int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked struct{ ID string }
		if err := tx.Table("accommodations").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", b.AccommodationID).
			Take(&locked).Error; err != nil {
			return err
		}

		// COALESCE because SUM over zero rows is NULL.
		var occupied int64
		if err := tx.Model(&AccommodationBooking{}).
			Select("COALESCE(SUM(num_rooms), 0)").
			Where("accommodation_id = ? AND status <> ? AND check_in_date < ? AND check_out_date > ?",
				b.AccommodationID, StatusCancelled, b.CheckOutDate, b.CheckInDate).
			Scan(&occupied).Error; err != nil {
			return err
		}
		if occupied+int64(b.NumRooms) > int64(totalRooms) {
			return ErrNoRoomsAvailable
		}

		return tx.Create(b).Error
	})
}

func (r *repository) GetBookingByID(ctx context.Context, id string) (*AccommodationBooking, error) {
	var b AccommodationBooking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListBookingsByDevotee(ctx context.Context, devoteeID string, limit int) ([]AccommodationBooking, error) {
	var bookings []AccommodationBooking
	err := r.db.WithContext(ctx).
		Where("devotee_id = ?", devoteeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) ListBookingsAdmin(ctx context.Context, limit int) ([]AccommodationBooking, error) {
	var bookings []AccommodationBooking
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) UpdateBookingStatus(ctx context.Context, id, status string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&AccommodationBooking{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
