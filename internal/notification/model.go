package notification

import "time"

// InAppNotification is a per-devotee message produced by the event
// consumer (booking confirmations, donation receipts and the like).
type InAppNotification struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	DevoteeID string    `gorm:"size:36;index" json:"devotee_id"`
	Title     string    `gorm:"size:255" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	Category  string    `gorm:"size:50" json:"category"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (InAppNotification) TableName() string {
	return "in_app_notifications"
}
