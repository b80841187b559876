package reports

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/cheruvugattu/temple-booking-backend/internal/accommodation"
	"github.com/cheruvugattu/temple-booking-backend/internal/auth"
	"github.com/cheruvugattu/temple-booking-backend/internal/booking"
	"github.com/cheruvugattu/temple-booking-backend/internal/donation"
	"github.com/cheruvugattu/temple-booking-backend/internal/seva"
)

type Repository interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	BookingRows(ctx context.Context, forDate string) ([]BookingReportRow, error)
	DonationRows(ctx context.Context, donationType string) ([]DonationReportRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	db := r.db.WithContext(ctx)
	stats := &DashboardStats{}
	today := time.Now().UTC().Format("2006-01-02")

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalDevotees, db.Model(&auth.Devotee{})},
		{&stats.TotalBookings, db.Model(&booking.Booking{})},
		{&stats.TodayBookings, db.Model(&booking.Booking{}).Where("for_date = ?", today)},
		{&stats.TotalSevas, db.Model(&seva.Seva{}).Where("active_flag = ?", true)},
		{&stats.ConfirmedBookings, db.Model(&booking.Booking{}).Where("status = ?", booking.StatusConfirmed)},
		{&stats.TotalDonations, db.Model(&donation.Donation{})},
		{&stats.TotalAccBookings, db.Model(&accommodation.AccommodationBooking{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Model(&booking.Booking{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_status = ?", "Paid").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&donation.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_status = ?", "Paid").
		Scan(&stats.TotalDonationAmount).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *repository) BookingRows(ctx context.Context, forDate string) ([]BookingReportRow, error) {
	query := r.db.WithContext(ctx).Model(&booking.Booking{})
	if forDate != "" {
		query = query.Where("for_date = ?", forDate)
	}

	var bookings []booking.Booking
	if err := query.Order("booking_date_time DESC").Limit(5000).Find(&bookings).Error; err != nil {
		return nil, err
	}

	rows := make([]BookingReportRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, BookingReportRow{
			BookingNumber: b.BookingNumber,
			DevoteeName:   b.DevoteeName,
			DevoteeMobile: b.DevoteeMobile,
			SevaName:      b.SevaNameEnglish,
			ForDate:       b.ForDate,
			SlotTime:      b.SlotStartTime + "-" + b.SlotEndTime,
			Persons:       b.NumberOfPersons,
			Status:        b.Status,
			Amount:        b.Amount,
		})
	}
	return rows, nil
}

func (r *repository) DonationRows(ctx context.Context, donationType string) ([]DonationReportRow, error) {
	query := r.db.WithContext(ctx).Model(&donation.Donation{})
	if donationType != "" {
		query = query.Where("donation_type = ?", donationType)
	}

	var donations []donation.Donation
	if err := query.Order("created_at DESC").Limit(5000).Find(&donations).Error; err != nil {
		return nil, err
	}

	rows := make([]DonationReportRow, 0, len(donations))
	for _, d := range donations {
		rows = append(rows, DonationReportRow{
			DonationNumber: d.DonationNumber,
			DonationType:   d.DonationType,
			DonorName:      d.DonorName,
			DonorMobile:    d.DonorMobile,
			Amount:         d.Amount,
			PaymentStatus:  d.PaymentStatus,
			Date:           d.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return rows, nil
}
