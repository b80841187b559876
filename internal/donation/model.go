package donation

import "time"

// Donation types accepted by the temple.
const (
	TypeEHundi       = "e-Hundi"
	TypeAnnaPrasadam = "AnnaPrasadam"
)

type Donation struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	DonationNumber string    `gorm:"size:32;uniqueIndex" json:"donation_number"`
	DonationType   string    `gorm:"size:50;index" json:"donation_type"`
	Amount         float64   `gorm:"type:decimal(12,2)" json:"amount"`
	DonorName      string    `gorm:"size:255" json:"donor_name"`
	DonorMobile    string    `gorm:"size:20" json:"donor_mobile"`
	DonorEmail     string    `gorm:"size:255" json:"donor_email"`
	DonorGotram    string    `gorm:"size:255" json:"donor_gotram"`
	Message        string    `gorm:"type:text" json:"message"`
	IsAnonymous    bool      `json:"is_anonymous"`
	DevoteeID      *string   `gorm:"size:36;index" json:"devotee_id"`
	PaymentStatus  string    `gorm:"size:20;default:Paid" json:"payment_status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Donation) TableName() string {
	return "donations"
}

// Receipt is the 80G tax receipt rendered for a paid donation.
type Receipt struct {
	ReceiptNumber      string  `json:"receipt_number"`
	DonationNumber     string  `json:"donation_number"`
	DonationType       string  `json:"donation_type"`
	DonorName          string  `json:"donor_name"`
	DonorMobile        string  `json:"donor_mobile"`
	DonorEmail         string  `json:"donor_email"`
	DonorGotram        string  `json:"donor_gotram"`
	Amount             float64 `json:"amount"`
	AmountWords        string  `json:"amount_words"`
	PaymentStatus      string  `json:"payment_status"`
	Date               string  `json:"date"`
	TempleName         string  `json:"temple_name"`
	TempleNameTelugu   string  `json:"temple_name_telugu"`
	TempleAddress      string  `json:"temple_address"`
	PANNumber          string  `json:"pan_number"`
	RegistrationNumber string  `json:"registration_number"`
	Section            string  `json:"section"`
	FinancialYear      string  `json:"financial_year"`
	IsAnonymous        bool    `json:"is_anonymous"`
}

// TypeStats aggregates paid donations of one type.
type TypeStats struct {
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

// Stats is the staff dashboard aggregate per donation type.
type Stats struct {
	EHundi       TypeStats `json:"e_hundi"`
	AnnaPrasadam TypeStats `json:"anna_prasadam"`
}
