package reports

import (
	"context"

	"github.com/cheruvugattu/temple-booking-backend/internal/auditlog"
	"github.com/cheruvugattu/temple-booking-backend/utils"
)

type Service interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
	ExportReport(ctx context.Context, reportType, format, filter, staffID, ip string) ([]byte, string, string, error)
}

type service struct {
	repo     Repository
	exporter Exporter
	auditSvc auditlog.Service
}

func NewService(repo Repository, exporter Exporter, auditSvc auditlog.Service) Service {
	return &service{repo: repo, exporter: exporter, auditSvc: auditSvc}
}

func (s *service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	return s.repo.DashboardStats(ctx)
}

// ExportReport builds a downloadable report. filter narrows bookings
// to a date, donations to a type.
func (s *service) ExportReport(ctx context.Context, reportType, format, filter, staffID, ip string) ([]byte, string, string, error) {
	if format != FormatCSV && format != FormatExcel && format != FormatPDF {
		return nil, "", "", utils.InvalidRequestf("unsupported format: %s", format)
	}

	var (
		data     []byte
		filename string
		mime     string
		err      error
	)

	switch reportType {
	case ReportTypeBookings:
		var rows []BookingReportRow
		rows, err = s.repo.BookingRows(ctx, filter)
		if err == nil {
			data, filename, mime, err = s.exporter.ExportBookings(format, rows)
		}
	case ReportTypeDonations:
		var rows []DonationReportRow
		rows, err = s.repo.DonationRows(ctx, filter)
		if err == nil {
			data, filename, mime, err = s.exporter.ExportDonations(format, rows)
		}
	default:
		return nil, "", "", utils.InvalidRequestf("unsupported report type: %s", reportType)
	}
	if err != nil {
		return nil, "", "", err
	}

	_ = s.auditSvc.LogAction(ctx, &staffID, "REPORT_EXPORTED", map[string]interface{}{
		"report_type": reportType,
		"format":      format,
		"filter":      filter,
	}, ip, "success")

	return data, filename, mime, nil
}
