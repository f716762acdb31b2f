package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Statements"

// WriteExcel renders the document as a styled workbook: header block, bold
// shaded column headers, auto-sized columns and an italic footer merged
// across the full width.
func WriteExcel(w io.Writer, doc *Document) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	file.SetCellValue(sheetName, "A1", doc.TitleLine())
	file.SetCellValue(sheetName, "A2", doc.PeriodLine())

	titleStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return fmt.Errorf("title style: %w", err)
	}
	file.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	// row 3 stays blank, table starts at row 4
	headerRow := 4
	for col, header := range Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, headerRow)
		file.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
		Border: []excelize.Border{
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	firstHeader, _ := excelize.CoordinatesToCellName(1, headerRow)
	lastHeader, _ := excelize.CoordinatesToCellName(len(Columns), headerRow)
	file.SetCellStyle(sheetName, firstHeader, lastHeader, headerStyle)

	nextRow := headerRow + 1
	if len(doc.Rows) == 0 {
		file.SetCellValue(sheetName, fmt.Sprintf("A%d", nextRow), NoDataMarker)
		nextRow++
	} else {
		for _, row := range doc.Rows {
			for col, value := range row {
				cell, _ := excelize.CoordinatesToCellName(col+1, nextRow)
				file.SetCellValue(sheetName, cell, value)
			}
			nextRow++
		}
	}

	autoSizeColumns(file, doc)

	// footer, one blank row below the table, merged across all columns
	footerRow := nextRow + 1
	footerStart, _ := excelize.CoordinatesToCellName(1, footerRow)
	footerEnd, _ := excelize.CoordinatesToCellName(len(Columns), footerRow)
	file.SetCellValue(sheetName, footerStart, FooterNote)
	file.MergeCell(sheetName, footerStart, footerEnd)

	footerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Italic: true}})
	if err != nil {
		return fmt.Errorf("footer style: %w", err)
	}
	file.SetCellStyle(sheetName, footerStart, footerEnd, footerStyle)

	return file.Write(w)
}

func autoSizeColumns(file *excelize.File, doc *Document) {
	for col, header := range Columns {
		width := len(header)
		for _, row := range doc.Rows {
			if col < len(row) && len(row[col]) > width {
				width = len(row[col])
			}
		}
		name, _ := excelize.ColumnNumberToName(col + 1)
		file.SetColWidth(sheetName, name, name, float64(width)+4)
	}
}
