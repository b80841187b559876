package seva

import (
	"time"
)

// ======================
// 🔹 Seva Core Model
// ======================

// Seva is a bookable ritual offering. Bookings snapshot its display data
// and price at admission time, so a Seva may be deleted without touching
// existing bookings.
type Seva struct {
	ID                  string    `gorm:"primaryKey;size:36" json:"id"`
	NameEnglish         string    `gorm:"size:255;not null" json:"name_english"`
	NameTelugu          string    `gorm:"size:255;not null" json:"name_telugu"`
	Description         string    `gorm:"type:text" json:"description"`
	BasePrice           float64   `gorm:"type:decimal(10,2);default:0" json:"base_price"`
	DurationMinutes     int       `gorm:"default:30" json:"duration_minutes"`
	IsOnlineBookable    bool      `gorm:"default:true" json:"is_online_bookable"`
	IsParokshaAvailable bool      `gorm:"default:false" json:"is_paroksha_available"`
	MaxPerSlotDefault   int       `gorm:"default:20" json:"max_per_slot_default"`
	MaxPersonsPerTicket int       `gorm:"default:4" json:"max_persons_per_ticket"`
	SpecialInstructions string    `gorm:"type:text" json:"special_instructions"`
	ActiveFlag          bool      `gorm:"default:true" json:"active_flag"`
	CreatedAt           time.Time `json:"created_at"`
}

func (Seva) TableName() string {
	return "sevas"
}

// ListFilter narrows the public seva listing.
type ListFilter struct {
	ActiveOnly bool
	Paroksha   *bool
}
