// Package report renders the admin purchase export.
package report

import (
	"fmt"
	"io"
	"time"

	"circula/internal/model"

	"github.com/go-pdf/fpdf"
)

type column struct {
	title string
	width float64
	align string
}

var purchaseColumns = []column{
	{"Order ID", 18, "C"},
	{"Customer Name", 30, "L"},
	{"Email", 42, "L"},
	{"Product Name", 36, "L"},
	{"Amount", 20, "R"},
	{"Date", 24, "C"},
	{"Status", 20, "C"},
}

const rowHeight = 7

// WritePurchases writes an A4 table of purchases. The column header is
// repeated on every page.
func WritePurchases(w io.Writer, purchases []*model.Purchase, generatedAt time.Time) error {
	pdf := buildPurchases(purchases, generatedAt)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render purchase report: %w", err)
	}

	return nil
}

func buildPurchases(purchases []*model.Purchase, generatedAt time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Purchase Report", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() == 1 {
			pdf.SetFont("Helvetica", "B", 18)
			pdf.CellFormat(0, 10, "Purchase Report", "", 1, "C", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
			pdf.CellFormat(0, 6, "Generated "+generatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
			pdf.Ln(4)
		}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range purchaseColumns {
			pdf.CellFormat(col.width, rowHeight, col.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 8)

	for _, p := range purchases {
		cells := []string{
			fmt.Sprintf("%d", p.OrderID),
			tr(p.CustomerName),
			tr(p.CustomerEmail),
			tr(p.ProductName),
			p.Amount.StringFixed(2),
			p.Date.Format("2006-01-02"),
			string(p.Status),
		}
		for i, col := range purchaseColumns {
			pdf.CellFormat(col.width, rowHeight, fit(pdf, cells[i], col.width), "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
		// the header func switches fonts on page breaks
		pdf.SetFont("Helvetica", "", 8)
	}

	if len(purchases) == 0 {
		pdf.CellFormat(0, rowHeight, "No purchases in the selected range.", "1", 1, "C", false, 0, "")
	}

	return pdf
}

// fit truncates s so it fits in a cell of the given width.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}

	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > limit {
		r = r[:len(r)-1]
	}

	return string(r) + "..."
}
