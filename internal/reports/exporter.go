package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Exporter renders report rows in the requested download format and
// returns the bytes, a suggested filename, and the MIME type.
type Exporter interface {
	ExportBookings(format string, rows []BookingReportRow) ([]byte, string, string, error)
	ExportDonations(format string, rows []DonationReportRow) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

func timestamp() string {
	return time.Now().Format("20060102_150405")
}

// ============================
// Bookings
// ============================

func (e *exporter) ExportBookings(format string, rows []BookingReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		data, err := e.bookingsCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("bookings_report_%s.csv", timestamp()), "text/csv", nil
	case FormatExcel:
		data, err := e.bookingsExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("bookings_report_%s.xlsx", timestamp()), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	case FormatPDF:
		data, err := e.bookingsPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("bookings_report_%s.pdf", timestamp()), "application/pdf", nil
	default:
		return nil, "", "", fmt.Errorf("unsupported format for bookings: %s", format)
	}
}

func (e *exporter) bookingsCSV(rows []BookingReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Booking Number", "Devotee", "Mobile", "Seva", "Date", "Slot", "Persons", "Status", "Amount"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			r.BookingNumber,
			r.DevoteeName,
			r.DevoteeMobile,
			r.SevaName,
			r.ForDate,
			r.SlotTime,
			strconv.Itoa(r.Persons),
			r.Status,
			fmt.Sprintf("%.2f", r.Amount),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) bookingsExcel(rows []BookingReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"Booking Number", "Devotee", "Mobile", "Seva", "Date", "Slot", "Persons", "Status", "Amount"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.BookingNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.DevoteeName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.DevoteeMobile)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.SevaName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.ForDate)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.SlotTime)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Persons)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), r.Status)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), r.Amount)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) bookingsPDF(rows []BookingReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Seva Bookings Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 9)
	headers := []string{"Booking Number", "Devotee", "Seva", "Date", "Slot", "Persons", "Status", "Amount"}
	widths := []float64{45, 40, 45, 25, 28, 18, 25, 25}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 6, r.BookingNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.DevoteeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.SevaName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.ForDate, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, r.SlotTime, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, strconv.Itoa(r.Persons), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 6, r.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[7], 6, fmt.Sprintf("%.2f", r.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ============================
// Donations
// ============================

func (e *exporter) ExportDonations(format string, rows []DonationReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		data, err := e.donationsCSV(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("donations_report_%s.csv", timestamp()), "text/csv", nil
	case FormatExcel:
		data, err := e.donationsExcel(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("donations_report_%s.xlsx", timestamp()), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	case FormatPDF:
		data, err := e.donationsPDF(rows)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("donations_report_%s.pdf", timestamp()), "application/pdf", nil
	default:
		return nil, "", "", fmt.Errorf("unsupported format for donations: %s", format)
	}
}

func (e *exporter) donationsCSV(rows []DonationReportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Donation Number", "Type", "Donor", "Mobile", "Amount", "Payment Status", "Date"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			r.DonationNumber,
			r.DonationType,
			r.DonorName,
			r.DonorMobile,
			fmt.Sprintf("%.2f", r.Amount),
			r.PaymentStatus,
			r.Date,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) donationsExcel(rows []DonationReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Donations"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"Donation Number", "Type", "Donor", "Mobile", "Amount", "Payment Status", "Date"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range rows {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.DonationNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.DonationType)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.DonorName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.DonorMobile)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.PaymentStatus)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.Date)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) donationsPDF(rows []DonationReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Donations Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 9)
	headers := []string{"Donation Number", "Type", "Donor", "Mobile", "Amount", "Status", "Date"}
	widths := []float64{45, 32, 45, 30, 28, 28, 45}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 6, r.DonationNumber, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.DonationType, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.DonorName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.DonorMobile, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.2f", r.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, r.PaymentStatus, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 6, r.Date, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
