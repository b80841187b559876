package schedule

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

// ========================= Fakes =============================

type fakeRepo struct {
	profiles map[string]*DayProfile
	slots    map[string]*ScheduleSlot
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		profiles: make(map[string]*DayProfile),
		slots:    make(map[string]*ScheduleSlot),
	}
}

func (f *fakeRepo) CreateProfile(_ context.Context, profile *DayProfile) error {
	cp := *profile
	f.profiles[profile.ID] = &cp
	return nil
}

func (f *fakeRepo) ListProfiles(_ context.Context) ([]DayProfile, error) {
	var out []DayProfile
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRepo) GetProfileByID(_ context.Context, id string) (*DayProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) UpdateProfileFields(_ context.Context, id string, fields map[string]interface{}) (int64, error) {
	p, ok := f.profiles[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "description":
			p.Description = v.(string)
		case "is_special_day_flag":
			p.IsSpecialDayFlag = v.(bool)
		}
	}
	return 1, nil
}

func (f *fakeRepo) DeleteProfile(_ context.Context, id string) (int64, error) {
	if _, ok := f.profiles[id]; !ok {
		return 0, nil
	}
	delete(f.profiles, id)
	return 1, nil
}

func (f *fakeRepo) CreateSlot(_ context.Context, slot *ScheduleSlot) error {
	cp := *slot
	f.slots[slot.ID] = &cp
	return nil
}

func (f *fakeRepo) GetSlotByID(_ context.Context, id string) (*ScheduleSlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeRepo) ListSlots(_ context.Context, sevaID, profileID string) ([]ScheduleSlot, error) {
	var out []ScheduleSlot
	for _, s := range f.slots {
		if sevaID != "" && s.SevaID != sevaID {
			continue
		}
		if profileID != "" && s.ProfileID != profileID {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeRepo) UpdateSlotFields(_ context.Context, id string, fields map[string]interface{}) (int64, error) {
	s, ok := f.slots[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "start_time":
			s.StartTime = v.(string)
		case "end_time":
			s.EndTime = v.(string)
		case "max_bookings":
			s.MaxBookings = v.(int)
		case "online_quota":
			s.OnlineQuota = v.(int)
		case "counter_quota":
			s.CounterQuota = v.(int)
		}
	}
	return 1, nil
}

func (f *fakeRepo) DeleteSlot(_ context.Context, id string) (int64, error) {
	if _, ok := f.slots[id]; !ok {
		return 0, nil
	}
	delete(f.slots, id)
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

func TestProfileLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo(), nopAudit{})

	if err := svc.CreateProfile(ctx, &DayProfile{}, "staff-1", "1.2.3.4"); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("nameless profile: got %v", err)
	}

	profile := &DayProfile{Name: "Pournami", Description: "Full moon day", IsSpecialDayFlag: true}
	if err := svc.CreateProfile(ctx, profile, "staff-1", "1.2.3.4"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpdateProfile(ctx, profile.ID, map[string]interface{}{}, "staff-1", "1.2.3.4"); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("empty update: got %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, profile.ID, map[string]interface{}{"description": "Full moon special schedule"}, "staff-1", "1.2.3.4")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Description != "Full moon special schedule" || updated.Name != "Pournami" {
		t.Fatalf("partial merge broken: %+v", updated)
	}

	if err := svc.DeleteProfile(ctx, "missing", "staff-1", "1.2.3.4"); !utils.IsKind(err, "NOT_FOUND") {
		t.Fatalf("delete missing: got %v", err)
	}
	if err := svc.DeleteProfile(ctx, profile.ID, "staff-1", "1.2.3.4"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestSlotLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepo(), nopAudit{})

	if err := svc.CreateSlot(ctx, &ScheduleSlot{SevaID: "seva-1"}, "staff-1", "1.2.3.4"); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("missing profile: got %v", err)
	}
	if err := svc.CreateSlot(ctx, &ScheduleSlot{SevaID: "seva-1", ProfileID: "profile-1"}, "staff-1", "1.2.3.4"); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("missing times: got %v", err)
	}

	slot := &ScheduleSlot{
		SevaID:       "seva-1",
		ProfileID:    "profile-1",
		StartTime:    "06:00",
		EndTime:      "07:00",
		MaxBookings:  10,
		OnlineQuota:  7,
		CounterQuota: 3,
	}
	if err := svc.CreateSlot(ctx, slot, "staff-1", "1.2.3.4"); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateSlot(ctx, slot.ID, map[string]interface{}{"online_quota": 5}, "staff-1", "1.2.3.4")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.OnlineQuota != 5 || updated.StartTime != "06:00" {
		t.Fatalf("partial merge broken: %+v", updated)
	}

	listed, err := svc.ListSlots(ctx, "seva-1", "")
	if err != nil || len(listed) != 1 {
		t.Fatalf("list by seva: %v %d", err, len(listed))
	}
	listed, err = svc.ListSlots(ctx, "other", "")
	if err != nil || len(listed) != 0 {
		t.Fatalf("list foreign seva: %v %d", err, len(listed))
	}

	if err := svc.DeleteSlot(ctx, slot.ID, "staff-1", "1.2.3.4"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetSlotByID(ctx, slot.ID); !utils.IsKind(err, "NOT_FOUND") {
		t.Fatalf("fetch deleted: got %v", err)
	}
}
