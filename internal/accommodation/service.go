package accommodation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/internal/auth"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

const (
	bookingNumberPrefix = "ACC"
	numberRetries       = 3

	myBookingsLimit = 50
	adminListLimit  = 500

	dateLayout = "2006-01-02"
)

// DevoteeReader resolves devotee profiles; satisfied by auth.Repository.
type DevoteeReader interface {
	GetDevoteeByID(ctx context.Context, id string) (*auth.Devotee, error)
}

// CreateStayInput carries a devotee's stay request.
type CreateStayInput struct {
	AccommodationID string
	CheckInDate     string
	CheckOutDate    string
	NumRooms        int
	NumGuests       int
	SpecialRequests string
}

type Service interface {
	CreateAccommodation(ctx context.Context, acc *Accommodation, staffID, ip string) error
	GetAccommodation(ctx context.Context, id string) (*Accommodation, error)
	ListAccommodations(ctx context.Context, activeOnly bool) ([]Accommodation, error)
	UpdateAccommodation(ctx context.Context, id string, fields map[string]interface{}, staffID, ip string) (*Accommodation, error)
	DeleteAccommodation(ctx context.Context, id string, staffID, ip string) error

	CreateStay(ctx context.Context, devoteeID string, input CreateStayInput, ip string) (*AccommodationBooking, error)
	GetMyStays(ctx context.Context, devoteeID string) ([]AccommodationBooking, error)
	AdminListStays(ctx context.Context) ([]AccommodationBooking, error)
	UpdateStayStatus(ctx context.Context, id, status, staffID, ip string) (*AccommodationBooking, error)
}

type service struct {
	repo     Repository
	devotees DevoteeReader
	auditSvc auditlog.Service
}

func NewService(repo Repository, devotees DevoteeReader, auditSvc auditlog.Service) Service {
	return &service{repo: repo, devotees: devotees, auditSvc: auditSvc}
}

// -----------------------------------------
// Accommodation catalog
// -----------------------------------------

func (s *service) CreateAccommodation(ctx context.Context, acc *Accommodation, staffID, ip string) error {
	if acc.Name == "" || acc.RoomType == "" {
		return utils.InvalidRequestf("name and room_type are required")
	}
	if acc.PricePerDay < 0 {
		return utils.InvalidRequestf("price_per_day must not be negative")
	}
	if acc.TotalRooms <= 0 {
		acc.TotalRooms = 10
	}
	if acc.Capacity <= 0 {
		acc.Capacity = 2
	}

	acc.ID = uuid.NewString()
	if err := s.repo.Create(ctx, acc); err != nil {
		return err
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "ACCOMMODATION_CREATED", map[string]interface{}{
		"accommodation_id": acc.ID,
		"name":             acc.Name,
	}, ip, "success")
	return nil
}

func (s *service) GetAccommodation(ctx context.Context, id string) (*Accommodation, error) {
	acc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("accommodation not found")
		}
		return nil, err
	}
	return acc, nil
}

func (s *service) ListAccommodations(ctx context.Context, activeOnly bool) ([]Accommodation, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *service) UpdateAccommodation(ctx context.Context, id string, fields map[string]interface{}, staffID, ip string) (*Accommodation, error) {
	if len(fields) == 0 {
		return nil, utils.InvalidRequestf("no fields to update")
	}

	affected, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, utils.NotFoundf("accommodation not found")
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "ACCOMMODATION_UPDATED", map[string]interface{}{
		"accommodation_id": id,
		"fields":           fields,
	}, ip, "success")

	return s.GetAccommodation(ctx, id)
}

func (s *service) DeleteAccommodation(ctx context.Context, id string, staffID, ip string) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.NotFoundf("accommodation not found")
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "ACCOMMODATION_DELETED", map[string]interface{}{
		"accommodation_id": id,
	}, ip, "success")
	return nil
}

// -----------------------------------------
// Stays
// -----------------------------------------

func (s *service) CreateStay(ctx context.Context, devoteeID string, input CreateStayInput, ip string) (*AccommodationBooking, error) {
	acc, err := s.GetAccommodation(ctx, input.AccommodationID)
	if err != nil {
		return nil, err
	}

	checkIn, err := time.Parse(dateLayout, input.CheckInDate)
	if err != nil {
		return nil, utils.InvalidRequestf("check_in_date must be YYYY-MM-DD")
	}
	checkOut, err := time.Parse(dateLayout, input.CheckOutDate)
	if err != nil {
		return nil, utils.InvalidRequestf("check_out_date must be YYYY-MM-DD")
	}
	numDays := int(checkOut.Sub(checkIn).Hours() / 24)
	if numDays < 1 {
		return nil, utils.InvalidRequestf("check-out must be after check-in")
	}
	if input.NumRooms < 1 {
		return nil, utils.InvalidRequestf("num_rooms must be at least 1")
	}

	devotee, err := s.devotees.GetDevoteeByID(ctx, devoteeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("devotee not found")
		}
		return nil, err
	}

	b := &AccommodationBooking{
		ID:                uuid.NewString(),
		DevoteeID:         devotee.ID,
		DevoteeName:       devotee.Name,
		DevoteeMobile:     devotee.Mobile,
		AccommodationID:   acc.ID,
		AccommodationName: acc.Name,
		RoomType:          acc.RoomType,
		CheckInDate:       input.CheckInDate,
		CheckOutDate:      input.CheckOutDate,
		NumDays:           numDays,
		NumRooms:          input.NumRooms,
		NumGuests:         input.NumGuests,
		SpecialRequests:   input.SpecialRequests,
		Amount:            acc.PricePerDay * float64(input.NumRooms) * float64(numDays),
		PaymentStatus:     "Paid",
		Status:            StatusConfirmed,
	}

	for attempt := 0; attempt < numberRetries; attempt++ {
		b.BookingNumber = utils.GenerateNumber(bookingNumberPrefix)
		err = s.repo.AdmitBooking(ctx, b, acc.TotalRooms)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		log.Printf("⚠️ Accommodation booking number collision on %s, regenerating", b.BookingNumber)
	}
	if err != nil {
		if errors.Is(err, ErrNoRoomsAvailable) {
			_ = s.auditSvc.LogAction(ctx, &devoteeID, "STAY_REJECTED", map[string]interface{}{
				"accommodation_id": acc.ID,
				"check_in_date":    input.CheckInDate,
				"check_out_date":   input.CheckOutDate,
				"num_rooms":        input.NumRooms,
				"reason":           "no_rooms_available",
			}, ip, "failure")
			return nil, utils.CapacityExhaustedf("no rooms available for the selected dates")
		}
		return nil, err
	}

	_ = s.auditSvc.LogAction(ctx, &devoteeID, "STAY_BOOKED", map[string]interface{}{
		"booking_id":     b.ID,
		"booking_number": b.BookingNumber,
		"num_rooms":      b.NumRooms,
		"num_days":       b.NumDays,
	}, ip, "success")

	utils.PublishEvent(utils.Event{
		Type:      "STAY_CONFIRMED",
		DevoteeID: b.DevoteeID,
		Title:     "Accommodation Confirmed",
		Body:      fmt.Sprintf("Your stay %s at %s from %s to %s is confirmed.", b.BookingNumber, b.AccommodationName, b.CheckInDate, b.CheckOutDate),
		Category:  "accommodation",
	})

	log.Printf("✅ Stay admitted: %s (%s, %d rooms, %d nights)", b.BookingNumber, b.AccommodationName, b.NumRooms, b.NumDays)
	return b, nil
}

func (s *service) GetMyStays(ctx context.Context, devoteeID string) ([]AccommodationBooking, error) {
	return s.repo.ListBookingsByDevotee(ctx, devoteeID, myBookingsLimit)
}

func (s *service) AdminListStays(ctx context.Context) ([]AccommodationBooking, error) {
	return s.repo.ListBookingsAdmin(ctx, adminListLimit)
}

func (s *service) UpdateStayStatus(ctx context.Context, id, status, staffID, ip string) (*AccommodationBooking, error) {
	if !ValidStatuses[status] {
		return nil, utils.InvalidRequestf("invalid status, must be one of: Pending, Confirmed, Completed, Cancelled, NoShow")
	}

	affected, err := s.repo.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, utils.NotFoundf("booking not found")
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "STAY_STATUS_UPDATED", map[string]interface{}{
		"booking_id": id,
		"status":     status,
	}, ip, "success")

	b, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return b, nil
}
