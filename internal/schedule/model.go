package schedule

// DayProfile is a named scheduling template ("Normal Day", "Pournami")
// distinguishing ordinary days from special/festival days.
type DayProfile struct {
	ID               string `gorm:"primaryKey;size:36" json:"id"`
	Name             string `gorm:"size:255;not null" json:"name"`
	Description      string `gorm:"type:text" json:"description"`
	IsSpecialDayFlag bool   `gorm:"default:false" json:"is_special_day_flag"`
}

func (DayProfile) TableName() string {
	return "day_profiles"
}

// ScheduleSlot is a time window of a seva with a capacity split between
// online and counter quotas. A nil Date means the slot recurs on every
// date matching its profile. Times are wall clock, no timezone stored.
//
// online_quota + counter_quota <= max_bookings is a data-entry convention
// and is deliberately not validated.
type ScheduleSlot struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	SevaID       string  `gorm:"size:36;not null;index" json:"seva_id"`
	ProfileID    string  `gorm:"size:36;not null;index" json:"profile_id"`
	Date         *string `gorm:"size:10" json:"date"` // YYYY-MM-DD, null = recurring
	StartTime    string  `gorm:"size:10;not null" json:"start_time"` // HH:mm
	EndTime      string  `gorm:"size:10;not null" json:"end_time"`   // HH:mm
	MaxBookings  int     `gorm:"default:20" json:"max_bookings"`
	OnlineQuota  int     `gorm:"default:10" json:"online_quota"`
	CounterQuota int     `gorm:"default:10" json:"counter_quota"`
}

func (ScheduleSlot) TableName() string {
	return "schedule_slots"
}
