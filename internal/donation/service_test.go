package donation

import (
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

type fakeRepo struct {
	donations []Donation
}

func (f *fakeRepo) Create(_ context.Context, d *Donation) error {
	for _, existing := range f.donations {
		if existing.DonationNumber == d.DonationNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	f.donations = append(f.donations, *d)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Donation, error) {
	for i := range f.donations {
		if f.donations[i].ID == id {
			d := f.donations[i]
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListByDevotee(_ context.Context, devoteeID string, limit int) ([]Donation, error) {
	var out []Donation
	for _, d := range f.donations {
		if d.DevoteeID != nil && *d.DevoteeID == devoteeID {
			out = append(out, d)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) ListAdmin(_ context.Context, donationType string, limit int) ([]Donation, error) {
	var out []Donation
	for _, d := range f.donations {
		if donationType == "" || d.DonationType == donationType {
			out = append(out, d)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) TypeStats(_ context.Context, donationType string) (TypeStats, error) {
	var stats TypeStats
	for _, d := range f.donations {
		if d.DonationType == donationType && d.PaymentStatus == "Paid" {
			stats.Total += d.Amount
			stats.Count++
		}
	}
	return stats, nil
}

type nopAudit struct{}

func (nopAudit) LogAction(context.Context, *string, string, map[string]interface{}, string, string) error {
	return nil
}

func (nopAudit) GetAuditLogs(context.Context, auditlog.AuditLogFilter) (*auditlog.PaginatedAuditLogs, error) {
	return nil, nil
}

func TestCreateDonationValidation(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopAudit{})

	_, err := svc.CreateDonation(context.Background(), CreateDonationInput{DonationType: TypeEHundi, Amount: 0}, "")
	if !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("zero amount should fail, got %v", err)
	}
	_, err = svc.CreateDonation(context.Background(), CreateDonationInput{Amount: 100}, "")
	if !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("missing type should fail, got %v", err)
	}
	if len(repo.donations) != 0 {
		t.Fatalf("rejected donations must not write, found %d", len(repo.donations))
	}
}

func TestCreateDonationAnonymization(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopAudit{})

	d, err := svc.CreateDonation(context.Background(), CreateDonationInput{
		DonationType: TypeEHundi,
		Amount:       1001,
		DonorName:    "Suresh",
		IsAnonymous:  true,
	}, "")
	if err != nil {
		t.Fatalf("donation: %v", err)
	}
	if d.DonorName != "Anonymous" {
		t.Fatalf("anonymous donation kept donor name: %q", d.DonorName)
	}
	if !strings.HasPrefix(d.DonationNumber, "DON-") {
		t.Fatalf("unexpected donation number: %s", d.DonationNumber)
	}
	if d.PaymentStatus != "Paid" {
		t.Fatalf("unexpected payment status: %s", d.PaymentStatus)
	}
}

func TestGetReceiptGating(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopAudit{})

	if _, err := svc.GetReceipt(context.Background(), "missing"); !utils.IsKind(err, "NOT_FOUND") {
		t.Fatalf("missing donation should be NOT_FOUND, got %v", err)
	}

	d, err := svc.CreateDonation(context.Background(), CreateDonationInput{
		DonationType: TypeAnnaPrasadam,
		Amount:       516,
		DonorName:    "Suresh",
		DonorGotram:  "Kashyapa",
	}, "")
	if err != nil {
		t.Fatalf("donation: %v", err)
	}

	receipt, err := svc.GetReceipt(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("receipt: %v", err)
	}
	if receipt.ReceiptNumber != "80G-"+d.DonationNumber[4:] {
		t.Fatalf("receipt number mismatch: %s vs %s", receipt.ReceiptNumber, d.DonationNumber)
	}
	if receipt.AmountWords != "Five Hundred and Sixteen Rupees Only" {
		t.Fatalf("amount words: %q", receipt.AmountWords)
	}
	if receipt.TempleName == "" || receipt.PANNumber == "" {
		t.Fatal("temple identity missing from receipt")
	}

	// unpaid donations never get a receipt
	repo.donations[0].PaymentStatus = "Pending"
	if _, err := svc.GetReceipt(context.Background(), d.ID); !utils.IsKind(err, "INVALID_REQUEST") {
		t.Fatalf("unpaid donation should be INVALID_REQUEST, got %v", err)
	}
}

func TestGetReceiptPDF(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopAudit{})

	d, err := svc.CreateDonation(context.Background(), CreateDonationInput{
		DonationType: TypeEHundi,
		Amount:       2500,
		DonorName:    "Padma",
	}, "")
	if err != nil {
		t.Fatalf("donation: %v", err)
	}

	data, filename, err := svc.GetReceiptPDF(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if len(data) == 0 || !strings.HasPrefix(string(data[:5]), "%PDF-") {
		t.Fatal("output is not a PDF document")
	}
	if !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename: %s", filename)
	}
}

func TestDonationStats(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopAudit{})

	for _, amount := range []float64{100, 200, 300} {
		if _, err := svc.CreateDonation(context.Background(), CreateDonationInput{DonationType: TypeEHundi, Amount: amount, DonorName: "X"}, ""); err != nil {
			t.Fatalf("donation: %v", err)
		}
	}
	if _, err := svc.CreateDonation(context.Background(), CreateDonationInput{DonationType: TypeAnnaPrasadam, Amount: 750, DonorName: "Y"}, ""); err != nil {
		t.Fatalf("donation: %v", err)
	}

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.EHundi.Total != 600 || stats.EHundi.Count != 3 {
		t.Fatalf("e-Hundi stats wrong: %+v", stats.EHundi)
	}
	if stats.AnnaPrasadam.Total != 750 || stats.AnnaPrasadam.Count != 1 {
		t.Fatalf("AnnaPrasadam stats wrong: %+v", stats.AnnaPrasadam)
	}
}
