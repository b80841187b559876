package seva

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

// ========================= Fakes =============================

type fakeRepo struct {
	sevas map[string]*Seva
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sevas: make(map[string]*Seva)}
}

func (f *fakeRepo) Create(_ context.Context, seva *Seva) error {
	cp := *seva
	f.sevas[seva.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Seva, error) {
	sv, ok := f.sevas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *sv
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, filter ListFilter) ([]Seva, error) {
	var out []Seva
	for _, sv := range f.sevas {
		if filter.ActiveOnly && !sv.ActiveFlag {
			continue
		}
		if filter.Paroksha != nil && sv.IsParokshaAvailable != *filter.Paroksha {
			continue
		}
		out = append(out, *sv)
	}
	return out, nil
}

func (f *fakeRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) (int64, error) {
	sv, ok := f.sevas[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "name_english":
			sv.NameEnglish = v.(string)
		case "base_price":
			sv.BasePrice = v.(float64)
		case "max_persons_per_ticket":
			sv.MaxPersonsPerTicket = v.(int)
		case "active_flag":
			sv.ActiveFlag = v.(bool)
		}
	}
	return 1, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := f.sevas[id]; !ok {
		return 0, nil
	}
	delete(f.sevas, id)
	return 1, nil
}

type nopAudit struct{}

func (nopAudit) LogAction(context.Context, *string, string, map[string]interface{}, string, string) error {
	return nil
}

func (nopAudit) GetAuditLogs(context.Context, auditlog.AuditLogFilter) (*auditlog.PaginatedAuditLogs, error) {
	return nil, nil
}

// ========================= Tests =============================

func newSeva() *Seva {
	return &Seva{
		NameEnglish:         "Abhishekam",
		NameTelugu:          "అభిషేకం",
		BasePrice:           500,
		DurationMinutes:     45,
		MaxPerSlotDefault:   10,
		MaxPersonsPerTicket: 4,
		ActiveFlag:          true,
	}
}

func TestCreateSevaValidation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})

	bad := newSeva()
	bad.MaxPersonsPerTicket = 0
	if err := svc.CreateSeva(ctx, bad, "staff-1", "1.2.3.4"); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("zero max persons: got %v", err)
	}

	bad = newSeva()
	bad.DurationMinutes = 0
	if err := svc.CreateSeva(ctx, bad, "staff-1", "1.2.3.4"); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("zero duration: got %v", err)
	}

	bad = newSeva()
	bad.BasePrice = -1
	if err := svc.CreateSeva(ctx, bad, "staff-1", "1.2.3.4"); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("negative price: got %v", err)
	}

	good := newSeva()
	if err := svc.CreateSeva(ctx, good, "staff-1", "1.2.3.4"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if good.ID == "" {
		t.Fatal("expected generated id")
	}
	if _, err := svc.GetSevaByID(ctx, good.ID); err != nil {
		t.Fatalf("fetch created: %v", err)
	}
}

func TestUpdateSevaPartialMerge(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})

	sv := newSeva()
	if err := svc.CreateSeva(ctx, sv, "staff-1", "1.2.3.4"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpdateSeva(ctx, sv.ID, map[string]interface{}{}, "staff-1", "1.2.3.4"); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("empty update: got %v", err)
	}

	if _, err := svc.UpdateSeva(ctx, sv.ID, map[string]interface{}{"max_persons_per_ticket": 0}, "staff-1", "1.2.3.4"); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("invalid max persons: got %v", err)
	}

	updated, err := svc.UpdateSeva(ctx, sv.ID, map[string]interface{}{"base_price": 750.0}, "staff-1", "1.2.3.4")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.BasePrice != 750 {
		t.Fatalf("price not updated: %v", updated.BasePrice)
	}
	// Untouched fields survive the partial update.
	if updated.NameEnglish != "Abhishekam" || updated.MaxPersonsPerTicket != 4 {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}

	if _, err := svc.UpdateSeva(ctx, "missing", map[string]interface{}{"base_price": 1.0}, "staff-1", "1.2.3.4"); !utils.IsKind(err, "NOT_FOUND") {
		t.Fatalf("missing seva: got %v", err)
	}
}

func TestDeleteSeva(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})

	sv := newSeva()
	if err := svc.CreateSeva(ctx, sv, "staff-1", "1.2.3.4"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteSeva(ctx, sv.ID, "staff-1", "1.2.3.4"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteSeva(ctx, sv.ID, "staff-1", "1.2.3.4"); !utils.IsKind(err, "NOT_FOUND") {
		t.Fatalf("double delete: got %v", err)
	}
}

func TestListSevasFilters(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})

	active := newSeva()
	if err := svc.CreateSeva(ctx, active, "staff-1", "1.2.3.4"); err != nil {
		t.Fatalf("create: %v", err)
	}
	inactive := newSeva()
	inactive.NameEnglish = "Kalyanam"
	inactive.ActiveFlag = false
	if err := svc.CreateSeva(ctx, inactive, "staff-1", "1.2.3.4"); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.ListSevas(ctx, ListFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].NameEnglish != "Abhishekam" {
		t.Fatalf("active filter: %+v", got)
	}
}
