package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/config"
	"github.com/cheruvugattu/temple-booking-backend/internal/accommodation"
	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/internal/auth"
	"github.com/cheruvugattu/temple-booking-backend/internal/booking"
	"github.com/cheruvugattu/temple-booking-backend/internal/content"
	"github.com/cheruvugattu/temple-booking-backend/internal/donation"
	"github.com/cheruvugattu/temple-booking-backend/internal/notification"
	"github.com/cheruvugattu/temple-booking-backend/internal/reports"
	"github.com/cheruvugattu/temple-booking-backend/internal/schedule"
	"github.com/cheruvugattu/temple-booking-backend/internal/seed"
	"github.com/cheruvugattu/temple-booking-backend/internal/seva"
	"github.com/cheruvugattu/temple-booking-backend/internal/visitor"
	"github.com/cheruvugattu/temple-booking-backend/middleware"
	"github.com/cheruvugattu/temple-booking-backend/utils"

	_ "github.com/cheruvugattu/temple-booking-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup wires every module's repository, service and handler and
// registers all routes under /api.
func Setup(r *gin.Engine, cfg *config.Config, db *gorm.DB) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.RateLimiter())     // Global rate limit per IP
	api.Use(middleware.AuditMiddleware()) // Captures client IP for audit trails

	// ========================= Module wiring =========================
	auditRepo := auditlog.NewRepository(db)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	authRepo := auth.NewRepository(db)
	authSvc := auth.NewService(authRepo, cfg, auditSvc)
	authHandler := auth.NewHandler(authSvc)

	sevaRepo := seva.NewRepository(db)
	sevaSvc := seva.NewService(sevaRepo, auditSvc)
	sevaHandler := seva.NewHandler(sevaSvc)

	scheduleRepo := schedule.NewRepository(db)
	scheduleSvc := schedule.NewService(scheduleRepo, auditSvc)
	scheduleHandler := schedule.NewHandler(scheduleSvc)

	bookingRepo := booking.NewRepository(db)
	bookingSvc := booking.NewService(bookingRepo, sevaRepo, scheduleRepo, authRepo, auditSvc)
	bookingHandler := booking.NewHandler(bookingSvc)

	accRepo := accommodation.NewRepository(db)
	accSvc := accommodation.NewService(accRepo, authRepo, auditSvc)
	accHandler := accommodation.NewHandler(accSvc)

	donationRepo := donation.NewRepository(db)
	donationSvc := donation.NewService(donationRepo, auditSvc)
	donationHandler := donation.NewHandler(donationSvc)

	contentRepo := content.NewRepository(db)
	contentSvc := content.NewService(contentRepo, auditSvc)
	contentHandler := content.NewHandler(contentSvc)

	visitorSvc := visitor.NewService(utils.RedisClient)
	visitorHandler := visitor.NewHandler(visitorSvc)

	notifRepo := notification.NewRepository(db)
	notifSvc := notification.NewService(notifRepo)
	notifHandler := notification.NewHandler(notifSvc)
	notifSvc.StartConsumer(context.Background(), utils.NewEventReader(cfg))

	reportsRepo := reports.NewRepository(db)
	reportsSvc := reports.NewService(reportsRepo, reports.NewExporter(), auditSvc)
	reportsHandler := reports.NewHandler(reportsSvc)

	seedHandler := seed.NewHandler(db)

	// ========================= Public routes =========================
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/devotee/register", authHandler.RegisterDevotee)
		authGroup.POST("/devotee/login", authHandler.LoginDevotee)
		authGroup.POST("/admin/login", authHandler.LoginAdmin)
	}

	api.GET("/sevas", sevaHandler.ListSevas)
	api.GET("/sevas/:id", sevaHandler.GetSeva)
	api.GET("/day-profiles", scheduleHandler.ListProfiles)
	api.GET("/schedule-slots", scheduleHandler.ListSlots)

	api.GET("/slots/available", bookingHandler.GetAvailableSlots)
	api.GET("/bookings/lookup/ticket", bookingHandler.LookupTicket)
	api.GET("/bookings/:id", bookingHandler.GetBooking)

	api.GET("/accommodations", accHandler.ListAccommodations)
	api.GET("/accommodations/:id", accHandler.GetAccommodation)

	// Donations accept an optional token so logged-in devotees get the
	// donation attached to their account.
	api.POST("/donations", middleware.OptionalAuth(cfg), donationHandler.CreateDonation)
	api.GET("/donations/:id/receipt", donationHandler.GetReceipt)
	api.GET("/donations/:id/receipt/pdf", donationHandler.GetReceiptPDF)

	api.GET("/news", contentHandler.ListNews)
	api.GET("/news/:id", contentHandler.GetNews)
	api.GET("/gallery", contentHandler.ListGallery)
	api.GET("/live-streams", contentHandler.ListLiveStreams)
	api.POST("/volunteers", contentHandler.RegisterVolunteer)
	api.POST("/newsletter/subscribe", contentHandler.Subscribe)
	api.POST("/contact", contentHandler.SubmitContact)

	api.GET("/visitor-stats", visitorHandler.GetStats)
	api.POST("/visitor-stats/track", visitorHandler.Track)

	api.POST("/seed", seedHandler.Seed)

	// ========================= Devotee routes =========================
	devotee := api.Group("/")
	devotee.Use(middleware.AuthMiddleware(cfg), middleware.RequireDevotee())
	{
		devotee.GET("/devotee/profile", authHandler.GetProfile)

		devotee.POST("/bookings", bookingHandler.CreateBooking)
		devotee.GET("/bookings/my", bookingHandler.GetMyBookings)

		devotee.POST("/accommodation-bookings", accHandler.CreateStay)
		devotee.GET("/accommodation-bookings/my", accHandler.GetMyStays)

		devotee.GET("/donations/my", donationHandler.GetMyDonations)

		devotee.GET("/notifications/my", notifHandler.GetMyNotifications)
		devotee.GET("/notifications/unread-count", notifHandler.GetUnreadCount)
		devotee.PUT("/notifications/:id/read", notifHandler.MarkRead)
	}

	// ========================= Staff routes =========================
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RequireStaff())
	{
		admin.GET("/devotees", authHandler.ListDevotees)

		admin.POST("/sevas", sevaHandler.CreateSeva)
		admin.PUT("/sevas/:id", sevaHandler.UpdateSeva)
		admin.DELETE("/sevas/:id", sevaHandler.DeleteSeva)

		admin.POST("/day-profiles", scheduleHandler.CreateProfile)
		admin.PUT("/day-profiles/:id", scheduleHandler.UpdateProfile)
		admin.DELETE("/day-profiles/:id", scheduleHandler.DeleteProfile)
		admin.POST("/schedule-slots", scheduleHandler.CreateSlot)
		admin.PUT("/schedule-slots/:id", scheduleHandler.UpdateSlot)
		admin.DELETE("/schedule-slots/:id", scheduleHandler.DeleteSlot)

		admin.GET("/bookings", bookingHandler.AdminListBookings)
		admin.PUT("/bookings/:id/status", bookingHandler.UpdateBookingStatus)

		admin.POST("/accommodations", accHandler.CreateAccommodation)
		admin.PUT("/accommodations/:id", accHandler.UpdateAccommodation)
		admin.DELETE("/accommodations/:id", accHandler.DeleteAccommodation)
		admin.GET("/accommodation-bookings", accHandler.AdminListStays)
		admin.PUT("/accommodation-bookings/:id/status", accHandler.UpdateStayStatus)

		admin.GET("/donations", donationHandler.AdminListDonations)
		admin.GET("/donation-stats", donationHandler.GetDonationStats)

		admin.POST("/news", contentHandler.CreateNews)
		admin.PUT("/news/:id", contentHandler.UpdateNews)
		admin.DELETE("/news/:id", contentHandler.DeleteNews)
		admin.POST("/gallery", contentHandler.CreateGalleryItem)
		admin.PUT("/gallery/:id", contentHandler.UpdateGalleryItem)
		admin.DELETE("/gallery/:id", contentHandler.DeleteGalleryItem)
		admin.GET("/volunteers", contentHandler.ListVolunteers)
		admin.GET("/contact-messages", contentHandler.ListContactMessages)

		admin.GET("/stats", reportsHandler.GetDashboardStats)
		admin.GET("/reports/:type", reportsHandler.ExportReport)

		admin.GET("/audit-logs", auditHandler.GetAuditLogs)
	}
}
