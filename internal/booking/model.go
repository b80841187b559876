package booking

import "time"

// Booking statuses. Admission always creates Confirmed; the other
// values are reachable only through the staff status endpoint.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
	StatusNoShow    = "NoShow"
)

// ValidStatuses is the closed set accepted by the staff status endpoint.
var ValidStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusNoShow:    true,
}

// Booking is an admitted seva reservation. Devotee, seva and slot
// display data are snapshotted at admission time so the record stays
// self-contained even if the catalog changes later.
type Booking struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	BookingNumber   string    `gorm:"size:32;uniqueIndex" json:"booking_number"`
	DevoteeID       string    `gorm:"size:36;index" json:"devotee_id"`
	DevoteeName     string    `gorm:"size:255" json:"devotee_name"`
	DevoteeMobile   string    `gorm:"size:20;index" json:"devotee_mobile"`
	SevaID          string    `gorm:"size:36;index" json:"seva_id"`
	SevaNameEnglish string    `gorm:"size:255" json:"seva_name_english"`
	SevaNameTelugu  string    `gorm:"size:255" json:"seva_name_telugu"`
	SlotID          string    `gorm:"size:36;index" json:"slot_id"`
	SlotStartTime   string    `gorm:"size:10" json:"slot_start_time"`
	SlotEndTime     string    `gorm:"size:10" json:"slot_end_time"`
	BookingDateTime time.Time `gorm:"autoCreateTime" json:"booking_date_time"`
	ForDate         string    `gorm:"size:10;index" json:"for_date"`
	Status          string    `gorm:"size:20;default:Confirmed;index" json:"status"`
	PaymentStatus   string    `gorm:"size:20;default:Paid" json:"payment_status"`
	NumberOfPersons int       `json:"number_of_persons"`
	Gotram          string    `gorm:"size:255" json:"gotram"`
	IsParoksha      bool      `json:"is_paroksha"`
	Nakshatra       string    `gorm:"size:100" json:"nakshatra"`
	Rashi           string    `gorm:"size:100" json:"rashi"`
	Amount          float64   `json:"amount"`
	NoteToDevotee   string    `gorm:"type:text" json:"note_to_devotee"`
}

func (Booking) TableName() string {
	return "bookings"
}

// SlotAvailability is a schedule slot annotated with its remaining
// online capacity for a specific date.
type SlotAvailability struct {
	SlotID         string `json:"id"`
	SevaID         string `json:"seva_id"`
	ProfileID      string `json:"profile_id"`
	Date           *string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	MaxBookings    int    `json:"max_bookings"`
	OnlineQuota    int    `json:"online_quota"`
	CounterQuota   int    `json:"counter_quota"`
	BookedCount    int64  `json:"booked_count"`
	RemainingSlots int64  `json:"remaining_slots"`
}

// AdminFilter narrows the staff booking listing.
type AdminFilter struct {
	ForDate string
	SevaID  string
	Status  string
}
