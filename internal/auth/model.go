package auth

import (
	"time"
)

// Devotee is a public account identified by mobile number.
type Devotee struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Mobile       string    `gorm:"size:20;not null;uniqueIndex" json:"mobile"`
	Email        string    `gorm:"size:255" json:"email"`
	Gotram       string    `gorm:"size:255" json:"gotram"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	LastLoginAt  time.Time `json:"last_login_at"`
}

func (Devotee) TableName() string {
	return "devotees"
}

// StaffUser is an internal account (EO, Clerk, Cashier, Priest).
type StaffUser struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Mobile       string    `gorm:"size:20" json:"mobile"`
	Role         string    `gorm:"size:20;not null" json:"role"`
	Username     string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	ActiveFlag   bool      `gorm:"default:true" json:"active_flag"`
	CreatedAt    time.Time `json:"created_at"`
}

func (StaffUser) TableName() string {
	return "user_accounts"
}
