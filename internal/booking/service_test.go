package booking

import (
	"context"
	"sort"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/internal/auth"
	"github.com/cheruvugattu/temple-booking-backend/internal/schedule"
	"github.com/cheruvugattu/temple-booking-backend/internal/seva"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

// ========================= Fakes =============================

// fakeRepo mirrors the repository contract in memory. AdmitBooking
// holds a mutex across the check-and-insert, matching the row-lock
// serialization the real repository gets from the database.
type fakeRepo struct {
	mu       sync.Mutex
	bookings []Booking
	// when > 0, AdmitBooking reports this many duplicate-key errors
	// before accepting, to exercise the number-retry path
	dupsRemaining int
}

func (f *fakeRepo) AdmitBooking(_ context.Context, b *Booking, onlineQuota int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.dupsRemaining > 0 {
		f.dupsRemaining--
		return gorm.ErrDuplicatedKey
	}

	var booked int64
	for _, existing := range f.bookings {
		if existing.SlotID == b.SlotID && existing.ForDate == b.ForDate && existing.Status != StatusCancelled {
			booked++
		}
	}
	if booked >= int64(onlineQuota) {
		return ErrCapacityExhausted
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) CountActiveBookings(_ context.Context, slotID, forDate string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, b := range f.bookings {
		if b.SlotID == slotID && b.ForDate == forDate && b.Status != StatusCancelled {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
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

func (f *fakeRepo) GetByNumber(_ context.Context, number string) (*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].BookingNumber == number {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListByDevotee(_ context.Context, devoteeID string, limit int) ([]Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Booking
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

func (f *fakeRepo) ListByMobile(_ context.Context, mobile string, limit int) ([]Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Booking
	for _, b := range f.bookings {
		if b.DevoteeMobile == mobile {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].BookingDateTime.After(out[j].BookingDateTime)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) ListAdmin(_ context.Context, filter AdminFilter, limit int) ([]Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Booking
	for _, b := range f.bookings {
		if filter.ForDate != "" && b.ForDate != filter.ForDate {
			continue
		}
		if filter.SevaID != "" && b.SevaID != filter.SevaID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, b)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id, status string) (int64, error) {
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

func (f *fakeRepo) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bookings)
}

type fakeSevas map[string]*seva.Seva

func (f fakeSevas) GetByID(_ context.Context, id string) (*seva.Seva, error) {
	if s, ok := f[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeSlots map[string]*schedule.ScheduleSlot

func (f fakeSlots) GetSlotByID(_ context.Context, id string) (*schedule.ScheduleSlot, error) {
	if s, ok := f[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeSlots) ListSlots(_ context.Context, sevaID, _ string) ([]schedule.ScheduleSlot, error) {
	var out []schedule.ScheduleSlot
	for _, s := range f {
		if sevaID == "" || s.SevaID == sevaID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
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
	testSevaID    = "seva-1"
	testSlotID    = "slot-1"
	testDevoteeID = "dev-1"
	testDate      = "2025-11-14"
)

func newFixture(onlineQuota, maxPersons int) (*fakeRepo, Service) {
	repo := &fakeRepo{}
	sevas := fakeSevas{testSevaID: {
		ID:                  testSevaID,
		NameEnglish:         "Abhishekam",
		NameTelugu:          "అభిషేకం",
		BasePrice:           516,
		MaxPersonsPerTicket: maxPersons,
		SpecialInstructions: "Report 15 minutes early",
	}}
	slots := fakeSlots{testSlotID: {
		ID:          testSlotID,
		SevaID:      testSevaID,
		ProfileID:   "profile-1",
		StartTime:   "06:00",
		EndTime:     "07:00",
		MaxBookings: onlineQuota + 5,
		OnlineQuota: onlineQuota,
	}}
	devotees := fakeDevotees{testDevoteeID: {
		ID:     testDevoteeID,
		Name:   "Ramesh",
		Mobile: "9876543210",
	}}
	svc := NewService(repo, sevas, slots, devotees, nopAudit{})
	return repo, svc
}

func admit(svc Service, persons int) (*Booking, error) {
	return svc.CreateBooking(context.Background(), testDevoteeID, CreateBookingInput{
		SevaID:          testSevaID,
		SlotID:          testSlotID,
		ForDate:         testDate,
		NumberOfPersons: persons,
		Gotram:          "Bharadwaja",
	}, "127.0.0.1")
}

// ========================= Tests =============================

func TestCreateBookingUnknownSeva(t *testing.T) {
	_, svc := newFixture(5, 4)
	_, err := svc.CreateBooking(context.Background(), testDevoteeID, CreateBookingInput{
		SevaID: "missing", SlotID: testSlotID, ForDate: testDate, NumberOfPersons: 1,
	}, "")
	if !utils.IsKind(err, "NOT_FOUND") {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestCreateBookingUnknownSlot(t *testing.T) {
	_, svc := newFixture(5, 4)
	_, err := svc.CreateBooking(context.Background(), testDevoteeID, CreateBookingInput{
		SevaID: testSevaID, SlotID: "missing", ForDate: testDate, NumberOfPersons: 1,
	}, "")
	if !utils.IsKind(err, "NOT_FOUND") {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestCreateBookingSlotSevaMismatch(t *testing.T) {
	repo := &fakeRepo{}
	sevas := fakeSevas{
		testSevaID: {ID: testSevaID, MaxPersonsPerTicket: 4},
		"seva-2":   {ID: "seva-2", MaxPersonsPerTicket: 4},
	}
	slots := fakeSlots{testSlotID: {ID: testSlotID, SevaID: "seva-2", OnlineQuota: 5}}
	devotees := fakeDevotees{testDevoteeID: {ID: testDevoteeID}}
	svc := NewService(repo, sevas, slots, devotees, nopAudit{})

	_, err := svc.CreateBooking(context.Background(), testDevoteeID, CreateBookingInput{
		SevaID: testSevaID, SlotID: testSlotID, ForDate: testDate, NumberOfPersons: 1,
	}, "")
	if !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("expected INVALID_REQUEST, got %v", err)
	}
	if repo.total() != 0 {
		t.Fatalf("rejected admission must not write, found %d bookings", repo.total())
	}
}

func TestCreateBookingPersonBounds(t *testing.T) {
	repo, svc := newFixture(10, 4)

	if _, err := admit(svc, 0); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("0 persons: expected INVALID_REQUEST, got %v", err)
	}
	if _, err := admit(svc, 5); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("5 persons with max 4: expected INVALID_REQUEST, got %v", err)
	}
	if repo.total() != 0 {
		t.Fatalf("rejected admissions must not write, found %d bookings", repo.total())
	}

	b, err := admit(svc, 4)
	if err != nil {
		t.Fatalf("4 persons with max 4 should admit: %v", err)
	}
	if b.Status != StatusConfirmed || b.PaymentStatus != "Paid" {
		t.Fatalf("unexpected admitted state: %s/%s", b.Status, b.PaymentStatus)
	}
	if b.Amount != 516 {
		t.Fatalf("amount should snapshot seva base price, got %v", b.Amount)
	}
	if b.DevoteeName != "Ramesh" || b.SevaNameEnglish != "Abhishekam" || b.SlotStartTime != "06:00" {
		t.Fatalf("missing snapshots: %+v", b)
	}
}

func TestCreateBookingCapacityExhausted(t *testing.T) {
	repo, svc := newFixture(2, 4)

	for i := 0; i < 2; i++ {
		if _, err := admit(svc, 1); err != nil {
			t.Fatalf("admission %d failed: %v", i, err)
		}
	}
	_, err := admit(svc, 1)
	if !utils.IsKind(err, "CAPACITY_EXHAUSTED") {
		t.Fatalf("expected CAPACITY_EXHAUSTED, got %v", err)
	}
	if repo.total() != 2 {
		t.Fatalf("rejection wrote a booking: %d records", repo.total())
	}
}

// The core invariant: with N concurrent attempts against a quota of Q,
// exactly Q admissions succeed and the bookings table never exceeds Q.
func TestConcurrentAdmissionsRespectQuota(t *testing.T) {
	const quota, attempts = 5, 40
	repo, svc := newFixture(quota, 4)

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := admit(svc, 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	admitted, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			admitted++
		case utils.IsKind(err, "CAPACITY_EXHAUSTED"):
			rejected++
		default:
			t.Fatalf("unexpected error kind: %v", err)
		}
	}

	if admitted != quota {
		t.Fatalf("expected exactly %d admissions, got %d", quota, admitted)
	}
	if rejected != attempts-quota {
		t.Fatalf("expected %d rejections, got %d", attempts-quota, rejected)
	}
	count, _ := repo.CountActiveBookings(context.Background(), testSlotID, testDate)
	if count != quota {
		t.Fatalf("invariant breached: %d active bookings for quota %d", count, quota)
	}
}

func TestCancellationFreesCapacity(t *testing.T) {
	_, svc := newFixture(2, 4)

	first, err := admit(svc, 1)
	if err != nil {
		t.Fatalf("first admission: %v", err)
	}
	if _, err := admit(svc, 1); err != nil {
		t.Fatalf("second admission: %v", err)
	}
	if _, err := admit(svc, 1); !utils.IsKind(err, "CAPACITY_EXHAUSTED") {
		t.Fatalf("third admission should exhaust capacity, got %v", err)
	}

	if _, err := svc.UpdateBookingStatus(context.Background(), first.ID, StatusCancelled, "staff-1", ""); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := admit(svc, 1); err != nil {
		t.Fatalf("admission after cancellation should succeed: %v", err)
	}
}

func TestBookingNumberCollisionRetry(t *testing.T) {
	repo, svc := newFixture(5, 4)
	repo.dupsRemaining = 2

	b, err := admit(svc, 1)
	if err != nil {
		t.Fatalf("admission should survive two collisions: %v", err)
	}
	if b.BookingNumber == "" {
		t.Fatal("booking number missing after retry")
	}
}

func TestAvailableSlotsExcludeFullAndForeignDates(t *testing.T) {
	repo := &fakeRepo{}
	otherDate := "2025-12-25"
	sevas := fakeSevas{testSevaID: {ID: testSevaID, MaxPersonsPerTicket: 4}}
	slots := fakeSlots{
		"slot-recurring": {ID: "slot-recurring", SevaID: testSevaID, StartTime: "06:00", EndTime: "07:00", OnlineQuota: 2},
		"slot-dated":     {ID: "slot-dated", SevaID: testSevaID, Date: &otherDate, StartTime: "08:00", EndTime: "09:00", OnlineQuota: 2},
		"slot-full":      {ID: "slot-full", SevaID: testSevaID, StartTime: "10:00", EndTime: "11:00", OnlineQuota: 1},
	}
	devotees := fakeDevotees{testDevoteeID: {ID: testDevoteeID}}
	svc := NewService(repo, sevas, slots, devotees, nopAudit{})

	repo.bookings = append(repo.bookings,
		Booking{ID: "b1", SlotID: "slot-full", ForDate: testDate, Status: StatusConfirmed},
		Booking{ID: "b2", SlotID: "slot-recurring", ForDate: testDate, Status: StatusCancelled},
	)

	available, err := svc.GetAvailableSlots(context.Background(), testSevaID, testDate)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(available) != 1 {
		t.Fatalf("expected 1 bookable slot, got %d", len(available))
	}
	got := available[0]
	if got.SlotID != "slot-recurring" {
		t.Fatalf("wrong slot returned: %s", got.SlotID)
	}
	if got.BookedCount != 0 || got.RemainingSlots != 2 {
		t.Fatalf("cancelled bookings must not count: booked=%d remaining=%d", got.BookedCount, got.RemainingSlots)
	}
}

func TestLookupTicket(t *testing.T) {
	repo, svc := newFixture(5, 4)

	if _, err := svc.LookupTicket(context.Background(), "", ""); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("empty lookup should fail, got %v", err)
	}

	b, err := admit(svc, 1)
	if err != nil {
		t.Fatalf("admission: %v", err)
	}

	byNumber, err := svc.LookupTicket(context.Background(), b.BookingNumber, "")
	if err != nil || len(byNumber) != 1 || byNumber[0].ID != b.ID {
		t.Fatalf("lookup by number failed: %v %v", byNumber, err)
	}

	byMobile, err := svc.LookupTicket(context.Background(), "", "9876543210")
	if err != nil || len(byMobile) != 1 {
		t.Fatalf("lookup by mobile failed: %v %v", byMobile, err)
	}

	if repo.total() != 1 {
		t.Fatalf("lookups must not write, found %d bookings", repo.total())
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	_, svc := newFixture(5, 4)

	b, err := admit(svc, 1)
	if err != nil {
		t.Fatalf("admission: %v", err)
	}

	if _, err := svc.UpdateBookingStatus(context.Background(), b.ID, "Archived", "staff-1", ""); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("unknown status should fail, got %v", err)
	}
	if _, err := svc.UpdateBookingStatus(context.Background(), "missing", StatusCompleted, "staff-1", ""); !utils.IsKind(err, "NOT_FOUND") {
		t.Fatalf("missing booking should fail, got %v", err)
	}

	updated, err := svc.UpdateBookingStatus(context.Background(), b.ID, StatusNoShow, "staff-1", "")
	if err != nil {
		t.Fatalf("status update: %v", err)
	}
	if updated.Status != StatusNoShow {
		t.Fatalf("status not applied: %s", updated.Status)
	}
}
