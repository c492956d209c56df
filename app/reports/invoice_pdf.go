package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"uvtab-emis/app/models"
)

func categoryTitle(c models.RegistrationCategory) string {
	if c == models.CategoryInformal {
		return "Worker's PAS"
	}
	return string(c)
}

// RenderInvoicePDF lays out a center invoice: board header, summary
// table, then one candidate table per registration category.
func RenderInvoicePDF(inv *models.Invoice, boardName, currency string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, boardName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, "Center Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Center: %s (%s)", inv.CenterName, inv.CenterCode), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Assessment Series: %s", inv.SeriesName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Summary table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(95, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Amount (%s)", currency), "1", 1, "R", true, 0, "")
	pdf.SetFont("Arial", "", 10)

	summary := []struct {
		label  string
		amount float64
	}{
		{"Amount paid", inv.AmountPaid},
		{"Outstanding balance", inv.Outstanding},
		{"Total bill", inv.TotalBill},
		{"Amount due", inv.AmountDue()},
	}
	for _, row := range summary {
		pdf.CellFormat(95, 7, row.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, formatAmount(row.amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Category breakdown tables
	for _, b := range inv.Breakdown {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, fmt.Sprintf("%s Candidates (%d)", categoryTitle(b.Category), b.Candidates), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(55, 6, "Reg Number", "1", 0, "L", true, 0, "")
		pdf.CellFormat(65, 6, "Name", "1", 0, "L", true, 0, "")
		pdf.CellFormat(20, 6, "Modules", "1", 0, "C", true, 0, "")
		pdf.CellFormat(25, 6, "Balance", "1", 0, "R", true, 0, "")
		pdf.CellFormat(25, 6, "Cleared", "1", 1, "R", true, 0, "")

		pdf.SetFont("Arial", "", 9)
		for _, line := range inv.Lines {
			if line.Category != b.Category {
				continue
			}
			cleared := "-"
			if line.PaymentCleared {
				cleared = formatAmount(line.AmountCleared)
			}
			pdf.CellFormat(55, 6, line.RegNumber, "1", 0, "L", false, 0, "")
			pdf.CellFormat(65, 6, line.CandidateName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(20, 6, fmt.Sprintf("%d", line.ModuleCount), "1", 0, "C", false, 0, "")
			pdf.CellFormat(25, 6, formatAmount(line.FeesBalance), "1", 0, "R", false, 0, "")
			pdf.CellFormat(25, 6, cleared, "1", 1, "R", false, 0, "")
		}

		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(140, 6, "Category total", "1", 0, "R", true, 0, "")
		pdf.CellFormat(50, 6, formatAmount(b.Amount), "1", 1, "R", true, 0, "")
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	// thousands separators for shillings amounts
	s := fmt.Sprintf("%.0f", v)
	n := len(s)
	if v < 0 {
		n--
	}
	if n <= 3 {
		return s
	}
	var out []byte
	start := len(s) - n
	out = append(out, s[:start]...)
	for i, c := range []byte(s[start:]) {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
