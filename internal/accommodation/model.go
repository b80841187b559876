package accommodation

import "time"

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
	StatusNoShow    = "NoShow"
)

var ValidStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusNoShow:    true,
}

// Accommodation is a bookable guest-house room category.
type Accommodation struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	NameTelugu  string    `gorm:"size:255" json:"name_telugu"`
	Description string    `gorm:"type:text" json:"description"`
	RoomType    string    `gorm:"size:50" json:"room_type"` // AC, Non-AC, Cottage, Guest House, Dormitory
	Capacity    int       `gorm:"default:2" json:"capacity"`
	PricePerDay float64   `gorm:"type:decimal(10,2)" json:"price_per_day"`
	Amenities   string    `gorm:"type:text" json:"amenities"`
	TotalRooms  int       `gorm:"default:10" json:"total_rooms"`
	ActiveFlag  bool      `gorm:"default:true" json:"active_flag"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Accommodation) TableName() string {
	return "accommodations"
}

// AccommodationBooking is an admitted stay over a date range. Like
// seva bookings, devotee and room display data are snapshotted at
// admission time.
type AccommodationBooking struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	BookingNumber     string    `gorm:"size:32;uniqueIndex" json:"booking_number"`
	DevoteeID         string    `gorm:"size:36;index" json:"devotee_id"`
	DevoteeName       string    `gorm:"size:255" json:"devotee_name"`
	DevoteeMobile     string    `gorm:"size:20" json:"devotee_mobile"`
	AccommodationID   string    `gorm:"size:36;index" json:"accommodation_id"`
	AccommodationName string    `gorm:"size:255" json:"accommodation_name"`
	RoomType          string    `gorm:"size:50" json:"room_type"`
	CheckInDate       string    `gorm:"size:10;index" json:"check_in_date"`
	CheckOutDate      string    `gorm:"size:10" json:"check_out_date"`
	NumDays           int       `json:"num_days"`
	NumRooms          int       `json:"num_rooms"`
	NumGuests         int       `json:"num_guests"`
	SpecialRequests   string    `gorm:"type:text" json:"special_requests"`
	Amount            float64   `json:"amount"`
	PaymentStatus     string    `gorm:"size:20;default:Paid" json:"payment_status"`
	Status            string    `gorm:"size:20;default:Confirmed;index" json:"status"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AccommodationBooking) TableName() string {
	return "accommodation_bookings"
}
