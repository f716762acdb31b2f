package export

import (
	"io"

	"github.com/go-pdf/fpdf"
)

// Landscape A4 keeps all eight columns readable.
var pdfColumnWidths = []float64{26, 22, 62, 28, 34, 34, 46, 20}

const (
	pdfRowHeight    = 8
	pdfBottomMargin = 28
)

// WritePDF renders the document as a paginated table. The styled column
// header repeats on every page; the footer note is pinned to the bottom of
// the last page.
func WritePDF(w io.Writer, doc *Document) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pdfBottomMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, doc.TitleLine(), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 7, doc.PeriodLine(), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	writeTableHeader(pdf)

	if len(doc.Rows) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, pdfRowHeight, NoDataMarker, "1", 1, "C", false, 0, "")
	} else {
		pdf.SetFont("Helvetica", "", 9)
		_, pageHeight := pdf.GetPageSize()
		for _, row := range doc.Rows {
			if pdf.GetY()+pdfRowHeight > pageHeight-pdfBottomMargin {
				pdf.AddPage()
				writeTableHeader(pdf)
				pdf.SetFont("Helvetica", "", 9)
			}
			for col, value := range row {
				pdf.CellFormat(pdfColumnWidths[col], pdfRowHeight, value, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	// footer pinned to the bottom of the last page
	pdf.SetY(-pdfBottomMargin + 8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 6, FooterNote, "", 0, "C", false, 0, "")

	return pdf.Output(w)
}

func writeTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(217, 217, 217)
	for col, header := range Columns {
		pdf.CellFormat(pdfColumnWidths[col], pdfRowHeight, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}
