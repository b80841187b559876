package accommodation

import (
	"context"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/internal/auth"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

// ========================= Fakes =============================

type fakeRepo struct {
	mu       sync.Mutex
	accs     map[string]*Accommodation
	bookings []AccommodationBooking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accs: map[string]*Accommodation{}}
}

func (f *fakeRepo) Create(_ context.Context, acc *Accommodation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accs[acc.ID] = acc
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Accommodation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if acc, ok := f.accs[id]; ok {
		copied := *acc
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) List(_ context.Context, activeOnly bool) ([]Accommodation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Accommodation
	for _, acc := range f.accs {
		if activeOnly && !acc.ActiveFlag {
			continue
		}
		out = append(out, *acc)
	}
	return out, nil
}

func (f *fakeRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	acc, ok := f.accs[id]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["name"]; ok {
		acc.Name = v.(string)
	}
	if v, ok := fields["total_rooms"]; ok {
		acc.TotalRooms = v.(int)
	}
	if v, ok := fields["active_flag"]; ok {
		acc.ActiveFlag = v.(bool)
	}
	return 1, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.accs[id]; !ok {
		return 0, nil
	}
	delete(f.accs, id)
	return 1, nil
}

// AdmitBooking serializes check-and-insert under the mutex, like the
// real repository does under the accommodation row lock.
func (f *fakeRepo) AdmitBooking(_ context.Context, b *AccommodationBooking, totalRooms int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var occupied int64
	for _, existing := range f.bookings {
		if existing.AccommodationID != b.AccommodationID || existing.Status == StatusCancelled {
			continue
		}
		// overlap: one stay checks in before the other checks out
		if existing.CheckInDate < b.CheckOutDate && existing.CheckOutDate > b.CheckInDate {
			occupied += int64(existing.NumRooms)
		}
	}
	if occupied+int64(b.NumRooms) > int64(totalRooms) {
		return ErrNoRoomsAvailable
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) GetBookingByID(_ context.Context, id string) (*AccommodationBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListBookingsByDevotee(_ context.Context, devoteeID string, limit int) ([]AccommodationBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []AccommodationBooking
	for _, b := range f.bookings {
		if b.DevoteeID == devoteeID {
			out = append(out, b)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) ListBookingsAdmin(_ context.Context, limit int) ([]AccommodationBooking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]AccommodationBooking(nil), f.bookings...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) UpdateBookingStatus(_ context.Context, id, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

type fakeDevotees map[string]*auth.Devotee

func (f fakeDevotees) GetDevoteeByID(_ context.Context, id string) (*auth.Devotee, error) {
	if d, ok := f[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type nopAudit struct{}

func (nopAudit) LogAction(context.Context, *string, string, map[string]interface{}, string, string) error {
	return nil
}

func (nopAudit) GetAuditLogs(context.Context, auditlog.AuditLogFilter) (*auditlog.PaginatedAuditLogs, error) {
	return nil, nil
}

// ========================= Fixtures =============================

const (
	testAccID     = "acc-1"
	testDevoteeID = "dev-1"
)

func newFixture(totalRooms int) (*fakeRepo, Service) {
	repo := newFakeRepo()
	repo.accs[testAccID] = &Accommodation{
		ID:          testAccID,
		Name:        "Nachiketa Sadan",
		RoomType:    "AC",
		Capacity:    3,
		PricePerDay: 1200,
		TotalRooms:  totalRooms,
		ActiveFlag:  true,
	}
	devotees := fakeDevotees{testDevoteeID: {ID: testDevoteeID, Name: "Lakshmi", Mobile: "9000000001"}}
	return repo, NewService(repo, devotees, nopAudit{})
}

func book(svc Service, checkIn, checkOut string, rooms int) (*AccommodationBooking, error) {
	return svc.CreateStay(context.Background(), testDevoteeID, CreateStayInput{
		AccommodationID: testAccID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumRooms:        rooms,
		NumGuests:       2,
	}, "127.0.0.1")
}

// ========================= Tests =============================

func TestCreateStayUnknownAccommodation(t *testing.T) {
	_, svc := newFixture(5)
	_, err := svc.CreateStay(context.Background(), testDevoteeID, CreateStayInput{
		AccommodationID: "missing",
		CheckInDate:     "2025-11-14",
		CheckOutDate:    "2025-11-15",
		NumRooms:        1,
	}, "")
	if !utils.IsKind(err, "NOT_FOUND") {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestCreateStayDateValidation(t *testing.T) {
	repo, svc := newFixture(5)

	if _, err := book(svc, "2025-11-14", "2025-11-14", 1); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("same-day checkout should fail, got %v", err)
	}
	if _, err := book(svc, "2025-11-15", "2025-11-14", 1); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("reversed dates should fail, got %v", err)
	}
	if _, err := book(svc, "14-11-2025", "2025-11-15", 1); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("malformed date should fail, got %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatalf("rejected stays must not write, found %d", len(repo.bookings))
	}

	b, err := book(svc, "2025-11-14", "2025-11-15", 1)
	if err != nil {
		t.Fatalf("one-night stay should admit: %v", err)
	}
	if b.NumDays != 1 {
		t.Fatalf("expected 1 night, got %d", b.NumDays)
	}
}

func TestCreateStayAmountComputation(t *testing.T) {
	_, svc := newFixture(5)

	b, err := book(svc, "2025-11-14", "2025-11-17", 2)
	if err != nil {
		t.Fatalf("stay should admit: %v", err)
	}
	if b.NumDays != 3 {
		t.Fatalf("expected 3 nights, got %d", b.NumDays)
	}
	// 1200 per day x 2 rooms x 3 nights
	if b.Amount != 7200 {
		t.Fatalf("expected amount 7200, got %v", b.Amount)
	}
	if b.AccommodationName != "Nachiketa Sadan" || b.RoomType != "AC" {
		t.Fatalf("missing snapshots: %+v", b)
	}
	if b.Status != StatusConfirmed || b.PaymentStatus != "Paid" {
		t.Fatalf("unexpected admitted state: %s/%s", b.Status, b.PaymentStatus)
	}
}

func TestOverlappingStaysRespectTotalRooms(t *testing.T) {
	repo, svc := newFixture(3)

	if _, err := book(svc, "2025-11-14", "2025-11-18", 2); err != nil {
		t.Fatalf("first stay: %v", err)
	}
	// 2025-11-16 to 11-17 overlaps the first stay, only 1 room left
	if _, err := book(svc, "2025-11-16", "2025-11-17", 2); !utils.IsKind(err, "CAPACITY_EXHAUSTED") {
		t.Fatalf("overlapping stay should be rejected, got %v", err)
	}
	if _, err := book(svc, "2025-11-16", "2025-11-17", 1); err != nil {
		t.Fatalf("stay within remaining rooms should admit: %v", err)
	}
	// checkout day is free: a stay starting on the first stay's
	// checkout date does not overlap it
	if _, err := book(svc, "2025-11-18", "2025-11-20", 3); err != nil {
		t.Fatalf("back-to-back stay should admit: %v", err)
	}
	if len(repo.bookings) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(repo.bookings))
	}
}

func TestCancelledStayFreesRooms(t *testing.T) {
	_, svc := newFixture(1)

	first, err := book(svc, "2025-11-14", "2025-11-15", 1)
	if err != nil {
		t.Fatalf("first stay: %v", err)
	}
	if _, err := book(svc, "2025-11-14", "2025-11-15", 1); !utils.IsKind(err, "CAPACITY_EXHAUSTED") {
		t.Fatalf("full accommodation should reject, got %v", err)
	}

	if _, err := svc.UpdateStayStatus(context.Background(), first.ID, StatusCancelled, "staff-1", ""); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := book(svc, "2025-11-14", "2025-11-15", 1); err != nil {
		t.Fatalf("stay after cancellation should admit: %v", err)
	}
}

func TestConcurrentStaysRespectTotalRooms(t *testing.T) {
	const totalRooms, attempts = 4, 30
	repo, svc := newFixture(totalRooms)

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := book(svc, "2025-11-14", "2025-11-16", 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	admitted := 0
	for err := range results {
		switch {
		case err == nil:
			admitted++
		case utils.IsKind(err, "CAPACITY_EXHAUSTED"):
		default:
			t.Fatalf("unexpected error kind: %v", err)
		}
	}
	if admitted != totalRooms {
		t.Fatalf("expected exactly %d admissions, got %d", totalRooms, admitted)
	}
	if len(repo.bookings) != totalRooms {
		t.Fatalf("invariant breached: %d bookings for %d rooms", len(repo.bookings), totalRooms)
	}
}

func TestUpdateAccommodationPartialMerge(t *testing.T) {
	repo, svc := newFixture(5)

	if _, err := svc.UpdateAccommodation(context.Background(), testAccID, map[string]interface{}{}, "staff-1", ""); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("empty update should fail, got %v", err)
	}

	updated, err := svc.UpdateAccommodation(context.Background(), testAccID, map[string]interface{}{"total_rooms": 8}, "staff-1", "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.TotalRooms != 8 {
		t.Fatalf("field not applied: %d", updated.TotalRooms)
	}
	if updated.Name != "Nachiketa Sadan" {
		t.Fatalf("untouched field changed: %s", updated.Name)
	}

	if _, err := svc.UpdateAccommodation(context.Background(), "missing", map[string]interface{}{"total_rooms": 8}, "staff-1", ""); !utils.IsKind(err, "NOT_FOUND") {
		t.Fatalf("missing accommodation should fail, got %v", err)
	}
	_ = repo
}

func TestDeleteAccommodation(t *testing.T) {
	_, svc := newFixture(5)

	if err := svc.DeleteAccommodation(context.Background(), "missing", "staff-1", ""); !utils.IsKind(err, "NOT_FOUND") {
		t.Fatalf("missing accommodation should fail, got %v", err)
	}
	if err := svc.DeleteAccommodation(context.Background(), testAccID, "staff-1", ""); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetAccommodation(context.Background(), testAccID); !utils.IsKind(err, "NOT_FOUND") {
		t.Fatalf("deleted accommodation should be gone, got %v", err)
	}
}
