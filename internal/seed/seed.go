package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/internal/accommodation"
	"github.com/cheruvugattu/temple-booking-backend/internal/auth"
	"github.com/cheruvugattu/temple-booking-backend/internal/content"
	"github.com/cheruvugattu/temple-booking-backend/internal/schedule"
	"github.com/cheruvugattu/temple-booking-backend/internal/seva"
)

// Summary reports how many rows each table received.
type Summary struct {
	Sevas          int `json:"sevas"`
	Profiles       int `json:"profiles"`
	Slots          int `json:"slots"`
	Accommodations int `json:"accommodations"`
	News           int `json:"news"`
	Gallery        int `json:"gallery"`
}

// Run loads demo data: an admin account, the seva catalog, day profiles
// with recurring slots, accommodations, news, gallery and live streams.
// Idempotent: if the admin user already exists nothing is written and
// (nil, false, nil) is returned.
func Run(ctx context.Context, db *gorm.DB) (*Summary, bool, error) {
	var existing auth.StaffUser
	err := db.WithContext(ctx).Where("username = ?", "admin").Take(&existing).Error
	if err == nil {
		return nil, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	summary := &Summary{}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := auth.StaffUser{
			ID:           uuid.NewString(),
			Name:         "Temple EO",
			Mobile:       "9000000001",
			Role:         "EO",
			Username:     "admin",
			PasswordHash: string(hash),
			ActiveFlag:   true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		sevas := demoSevas()
		if err := tx.Create(&sevas).Error; err != nil {
			return err
		}
		summary.Sevas = len(sevas)

		profiles := demoProfiles()
		if err := tx.Create(&profiles).Error; err != nil {
			return err
		}
		summary.Profiles = len(profiles)

		// Recurring slots for ordinary days only; festival profiles get
		// dated slots entered by staff closer to the event.
		slots := demoSlots(sevas, profiles[0].ID, profiles[1].ID)
		if err := tx.Create(&slots).Error; err != nil {
			return err
		}
		summary.Slots = len(slots)

		accs := demoAccommodations()
		if err := tx.Create(&accs).Error; err != nil {
			return err
		}
		summary.Accommodations = len(accs)

		news := demoNews()
		if err := tx.Create(&news).Error; err != nil {
			return err
		}
		summary.News = len(news)

		gallery := demoGallery()
		if err := tx.Create(&gallery).Error; err != nil {
			return err
		}
		summary.Gallery = len(gallery)

		streams := demoLiveStreams()
		return tx.Create(&streams).Error
	})
	if err != nil {
		return nil, false, fmt.Errorf("seed: %w", err)
	}

	log.Printf("✅ Seeded demo data: %d sevas, %d profiles, %d slots, %d accommodations",
		summary.Sevas, summary.Profiles, summary.Slots, summary.Accommodations)
	return summary, true, nil
}

func demoSevas() []seva.Seva {
	return []seva.Seva{
		{
			ID:                  uuid.NewString(),
			NameEnglish:         "Abhishekam",
			NameTelugu:          "అభిషేకం",
			Description:         "Sacred bathing ritual of the deity with milk, water, honey and other holy substances",
			BasePrice:           500,
			DurationMinutes:     45,
			IsOnlineBookable:    true,
			IsParokshaAvailable: true,
			MaxPerSlotDefault:   10,
			MaxPersonsPerTicket: 4,
			SpecialInstructions: "Please arrive 30 minutes before the scheduled time. Wear traditional attire.",
			ActiveFlag:          true,
		},
		{
			ID:                  uuid.NewString(),
			NameEnglish:         "Archana",
			NameTelugu:          "అర్చన",
			Description:         "Offering of flowers and chanting of sacred names of the deity",
			BasePrice:           100,
			DurationMinutes:     20,
			IsOnlineBookable:    true,
			IsParokshaAvailable: true,
			MaxPerSlotDefault:   25,
			MaxPersonsPerTicket: 4,
			SpecialInstructions: "Bring flowers if possible. Temple also provides.",
			ActiveFlag:          true,
		},
		{
			ID:                  uuid.NewString(),
			NameEnglish:         "Kumkuma Archana",
			NameTelugu:          "కుంకుమ అర్చన",
			Description:         "Special archana performed with sacred kumkum powder",
			BasePrice:           200,
			DurationMinutes:     30,
			IsOnlineBookable:    true,
			IsParokshaAvailable: true,
			MaxPerSlotDefault:   15,
			MaxPersonsPerTicket: 4,
			SpecialInstructions: "Available on all days. Special significance on Fridays.",
			ActiveFlag:          true,
		},
		{
			ID:                  uuid.NewString(),
			NameEnglish:         "Sahasranama Archana",
			NameTelugu:          "సహస్రనామ అర్చన",
			Description:         "Chanting of 1000 names of Lord Shiva during the puja",
			BasePrice:           300,
			DurationMinutes:     60,
			IsOnlineBookable:    true,
			IsParokshaAvailable: true,
			MaxPerSlotDefault:   8,
			MaxPersonsPerTicket: 4,
			SpecialInstructions: "Full duration puja. Please be present throughout.",
			ActiveFlag:          true,
		},
		{
			ID:                  uuid.NewString(),
			NameEnglish:         "Kalyanam",
			NameTelugu:          "కల్యాణం",
			Description:         "Celestial marriage ceremony of Lord Shiva and Goddess Parvathi",
			BasePrice:           1000,
			DurationMinutes:     90,
			IsOnlineBookable:    true,
			IsParokshaAvailable: false,
			MaxPerSlotDefault:   5,
			MaxPersonsPerTicket: 4,
			SpecialInstructions: "Special occasion puja. Bring traditional items as instructed.",
			ActiveFlag:          true,
		},
		{
			ID:                  uuid.NewString(),
			NameEnglish:         "Rudra Abhishekam",
			NameTelugu:          "రుద్ర అభిషేకం",
			Description:         "Grand abhishekam with Rudra Namakam Chamakam chanting",
			BasePrice:           750,
			DurationMinutes:     75,
			IsOnlineBookable:    true,
			IsParokshaAvailable: true,
			MaxPerSlotDefault:   6,
			MaxPersonsPerTicket: 4,
			SpecialInstructions: "Most auspicious on Mondays and Pradosham days.",
			ActiveFlag:          true,
		},
	}
}

func demoProfiles() []schedule.DayProfile {
	return []schedule.DayProfile{
		{ID: uuid.NewString(), Name: "Normal Day", Description: "Regular weekday schedule", IsSpecialDayFlag: false},
		{ID: uuid.NewString(), Name: "Weekend", Description: "Saturday and Sunday schedule with extended hours", IsSpecialDayFlag: false},
		{ID: uuid.NewString(), Name: "Pournami", Description: "Full moon day - special puja timings", IsSpecialDayFlag: true},
		{ID: uuid.NewString(), Name: "Amavasya", Description: "New moon day", IsSpecialDayFlag: true},
		{ID: uuid.NewString(), Name: "Maha Shivaratri", Description: "Annual grand festival of Lord Shiva", IsSpecialDayFlag: true},
	}
}

var slotWindows = [][2]string{
	{"06:00", "07:00"},
	{"08:00", "09:00"},
	{"10:00", "11:00"},
	{"16:00", "17:00"},
	{"18:00", "19:00"},
}

func demoSlots(sevas []seva.Seva, normalID, weekendID string) []schedule.ScheduleSlot {
	var slots []schedule.ScheduleSlot
	for _, sv := range sevas {
		for _, profileID := range []string{normalID, weekendID} {
			for _, w := range slotWindows {
				slots = append(slots, schedule.ScheduleSlot{
					ID:           uuid.NewString(),
					SevaID:       sv.ID,
					ProfileID:    profileID,
					StartTime:    w[0],
					EndTime:      w[1],
					MaxBookings:  sv.MaxPerSlotDefault,
					OnlineQuota:  sv.MaxPerSlotDefault/2 + 2,
					CounterQuota: sv.MaxPerSlotDefault / 2,
				})
			}
		}
	}
	return slots
}

func demoAccommodations() []accommodation.Accommodation {
	return []accommodation.Accommodation{
		{
			ID:          uuid.NewString(),
			Name:        "Siva Nilayam - AC Room",
			NameTelugu:  "శివ నిలయం - ఏసీ రూమ్",
			Description: "Comfortable AC rooms with attached bathroom, hot water, and basic amenities",
			RoomType:    "AC",
			Capacity:    3,
			PricePerDay: 800,
			Amenities:   "AC, Attached Bathroom, Hot Water, TV, Bed Linen",
			TotalRooms:  10,
			ActiveFlag:  true,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Parvathi Sadanam - Non-AC Room",
			NameTelugu:  "పార్వతి సదనం - నాన్ ఏసీ రూమ్",
			Description: "Clean non-AC rooms with fan and attached bathroom",
			RoomType:    "Non-AC",
			Capacity:    3,
			PricePerDay: 400,
			Amenities:   "Fan, Attached Bathroom, Hot Water, Bed Linen",
			TotalRooms:  15,
			ActiveFlag:  true,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Nandi Cottage",
			NameTelugu:  "నంది కాటేజ్",
			Description: "Spacious cottage suitable for families with separate living area",
			RoomType:    "Cottage",
			Capacity:    6,
			PricePerDay: 1500,
			Amenities:   "AC, Kitchen, Living Room, 2 Bedrooms, Hot Water, TV",
			TotalRooms:  5,
			ActiveFlag:  true,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Pilgrim Dormitory",
			NameTelugu:  "యాత్రికుల డార్మిటరీ",
			Description: "Affordable dormitory beds for individual pilgrims",
			RoomType:    "Dormitory",
			Capacity:    1,
			PricePerDay: 100,
			Amenities:   "Fan, Common Bathroom, Locker",
			TotalRooms:  50,
			ActiveFlag:  true,
		},
	}
}

func demoNews() []content.News {
	return []content.News{
		{
			ID:            uuid.NewString(),
			Title:         "Maha Shivaratri Brahmotsavams 2026",
			TitleTelugu:   "మహా శివరాత్రి బ్రహ్మోత్సవాలు 2026",
			Content:       "Maha Shivaratri Brahmotsavams will be celebrated from February 20 to March 2, 2026. Special sevas and darshan timings will be announced soon. Devotees are requested to book accommodations in advance.",
			ContentTelugu: "మహా శివరాత్రి బ్రహ్మోత్సవాలు ఫిబ్రవరి 20 నుండి మార్చి 2, 2026 వరకు జరుపబడతాయి. ప్రత్యేక సేవలు మరియు దర్శన సమయాలు త్వరలో ప్రకటించబడతాయి.",
			IsImportant:   true,
			ActiveFlag:    true,
		},
		{
			ID:            uuid.NewString(),
			Title:         "Online Seva Booking Now Available",
			TitleTelugu:   "ఆన్‌లైన్ సేవ బుకింగ్ ఇప్పుడు అందుబాటులో ఉంది",
			Content:       "Devotees can now book sevas online through our website. All major sevas including Abhishekam, Archana, and Rudra Abhishekam are available for online booking.",
			ContentTelugu: "భక్తులు ఇప్పుడు మా వెబ్‌సైట్ ద్వారా ఆన్‌లైన్‌లో సేవలను బుక్ చేసుకోవచ్చు.",
			ActiveFlag:    true,
		},
		{
			ID:            uuid.NewString(),
			Title:         "Paroksha Seva for Devotees Worldwide",
			TitleTelugu:   "ప్రపంచవ్యాప్తంగా భక్తులకు పరోక్ష సేవ",
			Content:       "Devotees who cannot visit the temple can now book Paroksha Seva. The priest will perform the seva on your behalf and prasadam will be sent to your address.",
			ContentTelugu: "దేవాలయాన్ని సందర్శించలేని భక్తులు ఇప్పుడు పరోక్ష సేవను బుక్ చేసుకోవచ్చు.",
			ActiveFlag:    true,
		},
	}
}

func demoGallery() []content.GalleryItem {
	images := []struct {
		title, url, category string
	}{
		{"Temple Gopuram", "https://images.unsplash.com/photo-1582560475093-6f09a3dc9739?auto=format&fit=crop&w=800&q=80", "Temple"},
		{"Sacred Shrine", "https://images.unsplash.com/photo-1606293926075-69a00dbfde81?auto=format&fit=crop&w=800&q=80", "Temple"},
		{"Festival Celebrations", "https://images.unsplash.com/photo-1716047270022-b01edb8022af?auto=format&fit=crop&w=800&q=80", "Festival"},
		{"Devotee Gathering", "https://images.unsplash.com/photo-1641666017082-02c741e2af4b?auto=format&fit=crop&w=800&q=80", "Devotees"},
		{"Temple at Dusk", "https://images.unsplash.com/photo-1690312021800-9b5991464fd2?auto=format&fit=crop&w=800&q=80", "Temple"},
		{"Sacred Rituals", "https://images.unsplash.com/photo-1567591370504-82a4d58d4349?auto=format&fit=crop&w=800&q=80", "Seva"},
	}
	videos := []struct {
		title, category string
	}{
		{"Maha Shivaratri Celebrations 2025", "Festival"},
		{"Temple Documentary - Sacred Cheruvugattu", "Documentary"},
		{"Daily Abhishekam Ritual", "Seva"},
	}

	var items []content.GalleryItem
	for _, img := range images {
		items = append(items, content.GalleryItem{
			ID:         uuid.NewString(),
			Title:      img.title,
			ImageURL:   img.url,
			Category:   img.category,
			MediaType:  "IMAGE",
			ActiveFlag: true,
		})
	}
	for _, vid := range videos {
		items = append(items, content.GalleryItem{
			ID:         uuid.NewString(),
			Title:      vid.title,
			ImageURL:   "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
			MediaURL:   "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Category:   vid.category,
			MediaType:  "VIDEO",
			ActiveFlag: true,
		})
	}
	return items
}

func demoLiveStreams() []content.LiveStream {
	return []content.LiveStream{
		{
			ID:           uuid.NewString(),
			Name:         "Temple Live Darshan",
			Description:  "24x7 live darshan from the main sanctum",
			StreamURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Platform:     "YouTube",
			IsLive:       true,
			ScheduleInfo: "24x7 Live",
		},
		{
			ID:           uuid.NewString(),
			Name:         "Temple TV Channel",
			Description:  "Devotional programs, bhajans, and temple events",
			StreamURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Platform:     "YouTube",
			IsLive:       true,
			ScheduleInfo: "6 AM - 10 PM Daily",
		},
	}
}
