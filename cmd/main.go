package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cheruvugattu/temple-booking-backend/config"
	"github.com/cheruvugattu/temple-booking-backend/database"
	"github.com/cheruvugattu/temple-booking-backend/internal/accommodation"
	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/internal/auth"
	"github.com/cheruvugattu/temple-booking-backend/internal/booking"
	"github.com/cheruvugattu/temple-booking-backend/internal/content"
	"github.com/cheruvugattu/temple-booking-backend/internal/donation"
	"github.com/cheruvugattu/temple-booking-backend/internal/notification"
	"github.com/cheruvugattu/temple-booking-backend/internal/schedule"
	"github.com/cheruvugattu/temple-booking-backend/internal/seva"
	"github.com/cheruvugattu/temple-booking-backend/routes"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

// @title           Sri Parvati Jadala Ramalingeshwara Swamy Devastanam API
// @version         1.0
// @description     Seva booking, accommodation, donation and temple content backend.
// @BasePath        /api
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Redis backs the visitor counters; keep going without it.
	if err := utils.InitRedis(cfg); err != nil {
		log.Printf("⚠️ Redis init failed, visitor counters fall back to memory: %v", err)
	}

	// Kafka carries booking/donation events to the notification consumer.
	utils.InitializeKafka(cfg)

	if err := db.AutoMigrate(
		&auth.Devotee{},
		&auth.StaffUser{},
		&seva.Seva{},
		&schedule.DayProfile{},
		&schedule.ScheduleSlot{},
		&booking.Booking{},
		&accommodation.Accommodation{},
		&accommodation.AccommodationBooking{},
		&donation.Donation{},
		&content.News{},
		&content.GalleryItem{},
		&content.Volunteer{},
		&content.NewsletterSubscriber{},
		&content.ContactMessage{},
		&content.LiveStream{},
		&notification.InAppNotification{},
		&auditlog.AuditLog{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	if cfg.CORSOrigins != "" {
		origins = strings.Split(cfg.CORSOrigins, ",")
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg, db)

	port := cfg.Port
	if port == "" {
		port = "8000"
	}
	log.Printf("ℹ️ Listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
