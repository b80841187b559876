package donation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/config"
	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

const (
	donationNumberPrefix = "DON"
	numberRetries        = 3

	myDonationsLimit = 50
	adminListLimit   = 500
)

// CreateDonationInput carries a donor's contribution. DevoteeID is nil
// for anonymous/unauthenticated donors.
type CreateDonationInput struct {
	DonationType string
	Amount       float64
	DonorName    string
	DonorMobile  string
	DonorEmail   string
	DonorGotram  string
	Message      string
	IsAnonymous  bool
	DevoteeID    *string
}

type Service interface {
	CreateDonation(ctx context.Context, input CreateDonationInput, ip string) (*Donation, error)
	GetMyDonations(ctx context.Context, devoteeID string) ([]Donation, error)
	AdminListDonations(ctx context.Context, donationType string) ([]Donation, error)
	GetStats(ctx context.Context) (*Stats, error)
	GetReceipt(ctx context.Context, donationID string) (*Receipt, error)
	GetReceiptPDF(ctx context.Context, donationID string) ([]byte, string, error)
}

type service struct {
	repo     Repository
	auditSvc auditlog.Service
}

func NewService(repo Repository, auditSvc auditlog.Service) Service {
	return &service{repo: repo, auditSvc: auditSvc}
}

func (s *service) CreateDonation(ctx context.Context, input CreateDonationInput, ip string) (*Donation, error) {
	if input.Amount <= 0 {
		return nil, utils.InvalidRequestf("amount must be positive")
	}
	if input.DonationType == "" {
		return nil, utils.InvalidRequestf("donation_type is required")
	}

	donorName := input.DonorName
	if input.IsAnonymous {
		donorName = "Anonymous"
	}

	d := &Donation{
		ID:            uuid.NewString(),
		DonationType:  input.DonationType,
		Amount:        input.Amount,
		DonorName:     donorName,
		DonorMobile:   input.DonorMobile,
		DonorEmail:    input.DonorEmail,
		DonorGotram:   input.DonorGotram,
		Message:       input.Message,
		IsAnonymous:   input.IsAnonymous,
		DevoteeID:     input.DevoteeID,
		PaymentStatus: "Paid",
	}

	var err error
	for attempt := 0; attempt < numberRetries; attempt++ {
		d.DonationNumber = utils.GenerateNumber(donationNumberPrefix)
		err = s.repo.Create(ctx, d)
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		log.Printf("⚠️ Donation number collision on %s, regenerating", d.DonationNumber)
	}
	if err != nil {
		return nil, err
	}

	_ = s.auditSvc.LogAction(ctx, input.DevoteeID, "DONATION_RECEIVED", map[string]interface{}{
		"donation_id":     d.ID,
		"donation_number": d.DonationNumber,
		"donation_type":   d.DonationType,
		"amount":          d.Amount,
	}, ip, "success")

	if input.DevoteeID != nil {
		utils.PublishEvent(utils.Event{
			Type:      "DONATION_RECEIVED",
			DevoteeID: *input.DevoteeID,
			Title:     "Donation Received",
			Body:      fmt.Sprintf("Thank you for your %s donation of ₹%.2f (%s).", d.DonationType, d.Amount, d.DonationNumber),
			Category:  "donation",
		})
	}

	log.Printf("✅ Donation recorded: %s (%s ₹%.2f)", d.DonationNumber, d.DonationType, d.Amount)
	return d, nil
}

func (s *service) GetMyDonations(ctx context.Context, devoteeID string) ([]Donation, error) {
	return s.repo.ListByDevotee(ctx, devoteeID, myDonationsLimit)
}

func (s *service) AdminListDonations(ctx context.Context, donationType string) ([]Donation, error) {
	return s.repo.ListAdmin(ctx, donationType, adminListLimit)
}

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	hundi, err := s.repo.TypeStats(ctx, TypeEHundi)
	if err != nil {
		return nil, err
	}
	anna, err := s.repo.TypeStats(ctx, TypeAnnaPrasadam)
	if err != nil {
		return nil, err
	}
	return &Stats{EHundi: hundi, AnnaPrasadam: anna}, nil
}

// GetReceipt builds the 80G receipt. Only paid donations get one.
func (s *service) GetReceipt(ctx context.Context, donationID string) (*Receipt, error) {
	d, err := s.repo.GetByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("donation not found")
		}
		return nil, err
	}
	if d.PaymentStatus != "Paid" {
		return nil, utils.InvalidRequestf("receipt only for paid donations")
	}

	year := time.Now().UTC().Year()
	return &Receipt{
		// 80G- replaces the DON- prefix, keeping the date and suffix
		ReceiptNumber:      "80G-" + d.DonationNumber[4:],
		DonationNumber:     d.DonationNumber,
		DonationType:       d.DonationType,
		DonorName:          d.DonorName,
		DonorMobile:        d.DonorMobile,
		DonorEmail:         d.DonorEmail,
		DonorGotram:        d.DonorGotram,
		Amount:             d.Amount,
		AmountWords:        AmountToWords(int(d.Amount)),
		PaymentStatus:      d.PaymentStatus,
		Date:               d.CreatedAt.UTC().Format(time.RFC3339),
		TempleName:         config.TempleName,
		TempleNameTelugu:   config.TempleNameTelugu,
		TempleAddress:      config.TempleAddress,
		PANNumber:          config.TemplePAN,
		RegistrationNumber: config.TempleRegNo,
		Section:            "Section 80G of Income Tax Act, 1961",
		FinancialYear:      fmt.Sprintf("%d-%d", year, year+1),
		IsAnonymous:        d.IsAnonymous,
	}, nil
}

// GetReceiptPDF renders the receipt as a downloadable PDF and returns
// the bytes with a suggested filename.
func (s *service) GetReceiptPDF(ctx context.Context, donationID string) ([]byte, string, error) {
	receipt, err := s.GetReceipt(ctx, donationID)
	if err != nil {
		return nil, "", err
	}
	data, err := renderReceiptPDF(receipt)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("receipt_%s.pdf", receipt.ReceiptNumber), nil
}
