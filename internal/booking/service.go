package booking

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/internal/auth"
	"github.com/cheruvugattu/temple-booking-backend/internal/schedule"
	"github.com/cheruvugattu/temple-booking-backend/internal/seva"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

const (
	bookingNumberPrefix = "SPJR"
	numberRetries       = 3

	myBookingsLimit   = 100
	ticketLookupLimit = 20
	adminListLimit    = 500
)

// SevaReader resolves catalog sevas; satisfied by seva.Repository.
type SevaReader interface {
	GetByID(ctx context.Context, id string) (*seva.Seva, error)
}

// SlotReader resolves schedule slots; satisfied by schedule.Repository.
type SlotReader interface {
	GetSlotByID(ctx context.Context, id string) (*schedule.ScheduleSlot, error)
	ListSlots(ctx context.Context, sevaID, profileID string) ([]schedule.ScheduleSlot, error)
}

// DevoteeReader resolves devotee profiles; satisfied by auth.Repository.
type DevoteeReader interface {
	GetDevoteeByID(ctx context.Context, id string) (*auth.Devotee, error)
}

// CreateBookingInput carries a devotee's admission request.
type CreateBookingInput struct {
	SevaID          string
	SlotID          string
	ForDate         string
	NumberOfPersons int
	Gotram          string
	IsParoksha      bool
	Nakshatra       string
	Rashi           string
}

type Service interface {
	CreateBooking(ctx context.Context, devoteeID string, input CreateBookingInput, ip string) (*Booking, error)
	GetAvailableSlots(ctx context.Context, sevaID, date string) ([]SlotAvailability, error)
	GetMyBookings(ctx context.Context, devoteeID string) ([]Booking, error)
	GetBookingByID(ctx context.Context, id string) (*Booking, error)
	LookupTicket(ctx context.Context, bookingNumber, mobile string) ([]Booking, error)
	AdminListBookings(ctx context.Context, filter AdminFilter) ([]Booking, error)
	UpdateBookingStatus(ctx context.Context, id, status, staffID, ip string) (*Booking, error)
}

type service struct {
	repo     Repository
	sevas    SevaReader
	slots    SlotReader
	devotees DevoteeReader
	auditSvc auditlog.Service
}

func NewService(repo Repository, sevas SevaReader, slots SlotReader, devotees DevoteeReader, auditSvc auditlog.Service) Service {
	return &service{repo: repo, sevas: sevas, slots: slots, devotees: devotees, auditSvc: auditSvc}
}

func (s *service) CreateBooking(ctx context.Context, devoteeID string, input CreateBookingInput, ip string) (*Booking, error) {
	sv, err := s.sevas.GetByID(ctx, input.SevaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("seva not found")
		}
		return nil, err
	}

	slot, err := s.slots.GetSlotByID(ctx, input.SlotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("slot not found")
		}
		return nil, err
	}
	if slot.SevaID != sv.ID {
		return nil, utils.InvalidRequestf("slot does not belong to the requested seva")
	}

	if input.NumberOfPersons < 1 || input.NumberOfPersons > sv.MaxPersonsPerTicket {
		return nil, utils.InvalidRequestf("number of persons must be 1-%d", sv.MaxPersonsPerTicket)
	}

	devotee, err := s.devotees.GetDevoteeByID(ctx, devoteeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("devotee not found")
		}
		return nil, err
	}

	b := &Booking{
		ID:              uuid.NewString(),
		DevoteeID:       devotee.ID,
		DevoteeName:     devotee.Name,
		DevoteeMobile:   devotee.Mobile,
		SevaID:          sv.ID,
		SevaNameEnglish: sv.NameEnglish,
		SevaNameTelugu:  sv.NameTelugu,
		SlotID:          slot.ID,
		SlotStartTime:   slot.StartTime,
		SlotEndTime:     slot.EndTime,
		ForDate:         input.ForDate,
		Status:          StatusConfirmed,
		PaymentStatus:   "Paid",
		NumberOfPersons: input.NumberOfPersons,
		Gotram:          input.Gotram,
		IsParoksha:      input.IsParoksha,
		Nakshatra:       input.Nakshatra,
		Rashi:           input.Rashi,
		Amount:          sv.BasePrice,
		NoteToDevotee:   sv.SpecialInstructions,
	}

	// The booking number suffix is short and random; retry a few times
	// if the unique index catches a collision.
	for attempt := 0; attempt < numberRetries; attempt++ {
		b.BookingNumber = utils.GenerateNumber(bookingNumberPrefix)
		err = s.repo.AdmitBooking(ctx, b, slot.OnlineQuota)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		log.Printf("⚠️ Booking number collision on %s, regenerating", b.BookingNumber)
	}
	if err != nil {
		if errors.Is(err, ErrCapacityExhausted) {
			_ = s.auditSvc.LogAction(ctx, &devoteeID, "BOOKING_REJECTED", map[string]interface{}{
				"seva_id":  input.SevaID,
				"slot_id":  input.SlotID,
				"for_date": input.ForDate,
				"reason":   "capacity_exhausted",
			}, ip, "failure")
			return nil, utils.CapacityExhaustedf("no slots available")
		}
		return nil, err
	}

	_ = s.auditSvc.LogAction(ctx, &devoteeID, "BOOKING_CREATED", map[string]interface{}{
		"booking_id":     b.ID,
		"booking_number": b.BookingNumber,
		"seva_id":        b.SevaID,
		"for_date":       b.ForDate,
		"persons":        b.NumberOfPersons,
	}, ip, "success")

	utils.PublishEvent(utils.Event{
		Type:      "BOOKING_CONFIRMED",
		DevoteeID: b.DevoteeID,
		Title:     "Booking Confirmed",
		Body:      fmt.Sprintf("Your booking %s for %s on %s is confirmed.", b.BookingNumber, b.SevaNameEnglish, b.ForDate),
		Category:  "booking",
	})

	log.Printf("✅ Booking admitted: %s (%s, %s)", b.BookingNumber, b.SevaNameEnglish, b.ForDate)
	return b, nil
}

// GetAvailableSlots returns the seva's slots bookable on the given
// date with their remaining online capacity. Full slots are omitted.
func (s *service) GetAvailableSlots(ctx context.Context, sevaID, date string) ([]SlotAvailability, error) {
	slots, err := s.slots.ListSlots(ctx, sevaID, "")
	if err != nil {
		return nil, err
	}

	available := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		if slot.Date != nil && *slot.Date != date {
			continue
		}
		booked, err := s.repo.CountActiveBookings(ctx, slot.ID, date)
		if err != nil {
			return nil, err
		}
		remaining := int64(slot.OnlineQuota) - booked
		if remaining <= 0 {
			continue
		}
		available = append(available, SlotAvailability{
			SlotID:         slot.ID,
			SevaID:         slot.SevaID,
			ProfileID:      slot.ProfileID,
			Date:           slot.Date,
			StartTime:      slot.StartTime,
			EndTime:        slot.EndTime,
			MaxBookings:    slot.MaxBookings,
			OnlineQuota:    slot.OnlineQuota,
			CounterQuota:   slot.CounterQuota,
			BookedCount:    booked,
			RemainingSlots: remaining,
		})
	}
	return available, nil
}

func (s *service) GetMyBookings(ctx context.Context, devoteeID string) ([]Booking, error) {
	return s.repo.ListByDevotee(ctx, devoteeID, myBookingsLimit)
}

func (s *service) GetBookingByID(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("booking not found")
		}
		return nil, err
	}
	return b, nil
}

// LookupTicket resolves a booking by its exact number, falling back to
// the devotee mobile when the number yields nothing.
func (s *service) LookupTicket(ctx context.Context, bookingNumber, mobile string) ([]Booking, error) {
	if bookingNumber == "" && mobile == "" {
		return nil, utils.InvalidRequestf("provide booking_number or mobile")
	}

	if bookingNumber != "" {
		b, err := s.repo.GetByNumber(ctx, bookingNumber)
		if err == nil {
			return []Booking{*b}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if mobile != "" {
		return s.repo.ListByMobile(ctx, mobile, ticketLookupLimit)
	}
	return []Booking{}, nil
}

func (s *service) AdminListBookings(ctx context.Context, filter AdminFilter) ([]Booking, error) {
	return s.repo.ListAdmin(ctx, filter, adminListLimit)
}

func (s *service) UpdateBookingStatus(ctx context.Context, id, status, staffID, ip string) (*Booking, error) {
	if !ValidStatuses[status] {
		return nil, utils.InvalidRequestf("invalid status, must be one of: Pending, Confirmed, Completed, Cancelled, NoShow")
	}

	affected, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, utils.NotFoundf("booking not found")
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "BOOKING_STATUS_UPDATED", map[string]interface{}{
		"booking_id": id,
		"status":     status,
	}, ip, "success")

	return s.GetBookingByID(ctx, id)
}
