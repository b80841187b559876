package reports

// Export formats and report types accepted by the exporter.
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"

	ReportTypeBookings  = "bookings"
	ReportTypeDonations = "donations"
)

// DashboardStats is the staff overview across all collections.
type DashboardStats struct {
	TotalDevotees       int64   `json:"total_devotees"`
	TotalBookings       int64   `json:"total_bookings"`
	TodayBookings       int64   `json:"today_bookings"`
	TotalSevas          int64   `json:"total_sevas"`
	ConfirmedBookings   int64   `json:"confirmed_bookings"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalDonations      int64   `json:"total_donations"`
	TotalDonationAmount float64 `json:"total_donation_amount"`
	TotalAccBookings    int64   `json:"total_acc_bookings"`
}

// BookingReportRow is one line of the bookings export.
type BookingReportRow struct {
	BookingNumber string
	DevoteeName   string
	DevoteeMobile string
	SevaName      string
	ForDate       string
	SlotTime      string
	Persons       int
	Status        string
	Amount        float64
}

// DonationReportRow is one line of the donations export.
type DonationReportRow struct {
	DonationNumber string
	DonationType   string
	DonorName      string
	DonorMobile    string
	Amount         float64
	PaymentStatus  string
	Date           string
}
