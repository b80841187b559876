package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/config"
	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

// ========================= Fakes =============================

type fakeRepo struct {
	devotees map[string]*Devotee // keyed by mobile
	staff    map[string]*StaffUser
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		devotees: make(map[string]*Devotee),
		staff:    make(map[string]*StaffUser),
	}
}

func (f *fakeRepo) CreateDevotee(_ context.Context, devotee *Devotee) error {
	if _, ok := f.devotees[devotee.Mobile]; ok {
		return gorm.ErrDuplicatedKey
	}
	cp := *devotee
	f.devotees[devotee.Mobile] = &cp
	return nil
}

func (f *fakeRepo) GetDevoteeByID(_ context.Context, id string) (*Devotee, error) {
	for _, d := range f.devotees {
		if d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetDevoteeByMobile(_ context.Context, mobile string) (*Devotee, error) {
	d, ok := f.devotees[mobile]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeRepo) TouchLastLogin(_ context.Context, devoteeID string) error {
	for _, d := range f.devotees {
		if d.ID == devoteeID {
			d.LastLoginAt = time.Now().UTC()
		}
	}
	return nil
}

func (f *fakeRepo) ListDevotees(_ context.Context, limit int) ([]Devotee, error) {
	var out []Devotee
	for _, d := range f.devotees {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeRepo) GetStaffByUsername(_ context.Context, username string) (*StaffUser, error) {
	u, ok := f.staff[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) CreateStaff(_ context.Context, user *StaffUser) error {
	cp := *user
	f.staff[user.Username] = &cp
	return nil
}

type nopAudit struct{}

func (nopAudit) LogAction(context.Context, *string, string, map[string]interface{}, string, string) error {
	return nil
}

func (nopAudit) GetAuditLogs(context.Context, auditlog.AuditLogFilter) (*auditlog.PaginatedAuditLogs, error) {
	return nil, nil
}

// ========================= Tests =============================

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTTTLHours: 1}
}

func TestRegisterDevotee(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, testConfig(), nopAudit{})

	in := RegisterInput{Name: "Ramesh", Mobile: "9876543210", Password: "secret12", Gotram: "Bharadwaja"}

	_, _, err := svc.RegisterDevotee(ctx, RegisterInput{Mobile: "9876543210"}, "1.2.3.4")
	if !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("missing fields: got %v", err)
	}

	token, devotee, err := svc.RegisterDevotee(ctx, in, "1.2.3.4")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" || devotee.ID == "" {
		t.Fatal("expected token and id")
	}
	if devotee.PasswordHash == "secret12" {
		t.Fatal("password stored in clear")
	}

	_, _, err = svc.RegisterDevotee(ctx, in, "1.2.3.4")
	if !utils.IsKind(err, "CONFLICT") {
		t.Fatalf("duplicate mobile: got %v", err)
	}
}

func TestLoginDevotee(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, testConfig(), nopAudit{})

	_, devotee, err := svc.RegisterDevotee(ctx, RegisterInput{Name: "Ramesh", Mobile: "9876543210", Password: "secret12"}, "1.2.3.4")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.LoginDevotee(ctx, "9876543210", "wrong", "1.2.3.4"); !utils.IsKind(err, "UNAUTHENTICATED") {
		t.Fatalf("wrong password: got %v", err)
	}
	if _, _, err := svc.LoginDevotee(ctx, "9999999999", "secret12", "1.2.3.4"); !utils.IsKind(err, "UNAUTHENTICATED") {
		t.Fatalf("unknown mobile: got %v", err)
	}

	before := repo.devotees["9876543210"].LastLoginAt
	token, got, err := svc.LoginDevotee(ctx, "9876543210", "secret12", "1.2.3.4")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || got.ID != devotee.ID {
		t.Fatalf("unexpected login result: %+v", got)
	}
	if repo.devotees["9876543210"].LastLoginAt.Before(before) {
		t.Fatal("last login not stamped")
	}
}

func TestLoginStaff(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, testConfig(), nopAudit{})

	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	_ = repo.CreateStaff(ctx, &StaffUser{ID: "staff-1", Name: "Temple EO", Role: "EO", Username: "admin", PasswordHash: string(hash), ActiveFlag: true})
	_ = repo.CreateStaff(ctx, &StaffUser{ID: "staff-2", Name: "Old Clerk", Role: "Clerk", Username: "clerk", PasswordHash: string(hash), ActiveFlag: false})

	if _, _, err := svc.LoginStaff(ctx, "admin", "wrong", "1.2.3.4"); !utils.IsKind(err, "UNAUTHENTICATED") {
		t.Fatalf("wrong password: got %v", err)
	}
	if _, _, err := svc.LoginStaff(ctx, "nobody", "admin123", "1.2.3.4"); !utils.IsKind(err, "UNAUTHENTICATED") {
		t.Fatalf("unknown user: got %v", err)
	}
	if _, _, err := svc.LoginStaff(ctx, "clerk", "admin123", "1.2.3.4"); !utils.IsKind(err, "FORBIDDEN") {
		t.Fatalf("disabled account: got %v", err)
	}

	token, user, err := svc.LoginStaff(ctx, "admin", "admin123", "1.2.3.4")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || user.Role != "EO" {
		t.Fatalf("unexpected staff login: %+v", user)
	}
}
