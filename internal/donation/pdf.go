package donation

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// renderReceiptPDF lays out the 80G receipt on a single A4 page. The
// Telugu temple name is skipped: the core fonts are Latin-1 only.
func renderReceiptPDF(r *Receipt) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, r.TempleName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, r.TempleAddress, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("PAN: %s   Regn: %s", r.PANNumber, r.RegistrationNumber), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "DONATION RECEIPT", "B", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, r.Section, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Receipt Number", r.ReceiptNumber},
		{"Donation Number", r.DonationNumber},
		{"Date", r.Date},
		{"Financial Year", r.FinancialYear},
		{"Donation Type", r.DonationType},
		{"Donor Name", r.DonorName},
		{"Mobile", r.DonorMobile},
		{"Gotram", r.DonorGotram},
		{"Amount", fmt.Sprintf("Rs. %.2f", r.Amount)},
		{"Amount in Words", r.AmountWords},
		{"Payment Status", r.PaymentStatus},
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(55, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(125, 8, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 6, "This is a computer-generated receipt and does not require a signature.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
