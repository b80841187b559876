package content

import "time"

// News is a bilingual announcement shown on the public site.
type News struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	TitleTelugu   string    `gorm:"size:255" json:"title_telugu"`
	Content       string    `gorm:"type:text" json:"content"`
	ContentTelugu string    `gorm:"type:text" json:"content_telugu"`
	IsImportant   bool      `json:"is_important"`
	ActiveFlag    bool      `gorm:"default:true" json:"active_flag"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (News) TableName() string {
	return "news"
}

// GalleryItem is a photo or video entry. MediaType is IMAGE or VIDEO;
// video entries carry the embed URL in MediaURL with a thumbnail in
// ImageURL.
type GalleryItem struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	ImageURL   string    `gorm:"size:512" json:"image_url"`
	MediaURL   string    `gorm:"size:512" json:"media_url"`
	Category   string    `gorm:"size:50;default:Temple" json:"category"`
	MediaType  string    `gorm:"size:10;default:IMAGE" json:"media_type"`
	ActiveFlag bool      `gorm:"default:true" json:"active_flag"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (GalleryItem) TableName() string {
	return "gallery"
}

// Volunteer is a public volunteering application, reviewed by staff.
type Volunteer struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Mobile       string    `gorm:"size:20;not null;uniqueIndex" json:"mobile"`
	Email        string    `gorm:"size:255" json:"email"`
	City         string    `gorm:"size:100" json:"city"`
	Skills       string    `gorm:"type:text" json:"skills"`
	Availability string    `gorm:"size:255" json:"availability"`
	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"size:20;default:Pending" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Volunteer) TableName() string {
	return "volunteers"
}

type NewsletterSubscriber struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	SubscribedAt time.Time `gorm:"autoCreateTime" json:"subscribed_at"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}

type ContactMessage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Mobile    string    `gorm:"size:20" json:"mobile"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	Status    string    `gorm:"size:20;default:New" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

type LiveStream struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	StreamURL    string `gorm:"size:512" json:"stream_url"`
	Platform     string `gorm:"size:50" json:"platform"`
	IsLive       bool   `json:"is_live"`
	ScheduleInfo string `gorm:"size:255" json:"schedule_info"`
}

func (LiveStream) TableName() string {
	return "live_streams"
}
