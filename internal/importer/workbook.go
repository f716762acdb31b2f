package importer

import (
	"bytes"
	"strings"

	"github.com/extrame/xls"
	"github.com/frahmantamala/expense-tracker/internal"
	"github.com/xuri/excelize/v2"
)

// Sheet is the raw content of the first worksheet: row 1 as headers, data
// from row 2 on.
type Sheet struct {
	Headers []string
	Rows    [][]string
}

const maxXLSRows = 65536

// ReadWorkbook parses an uploaded spreadsheet byte buffer. Only the first
// worksheet is read. Structural problems (unreadable file, no worksheet, no
// header row) are the only hard failures the importer knows.
func ReadWorkbook(data []byte, filename string) (*Sheet, error) {
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".xlsx"):
		return readXLSX(data)
	case strings.HasSuffix(strings.ToLower(filename), ".xls"):
		return readXLS(data)
	default:
		return nil, internal.ErrUnsupportedUpload
	}
}

func readXLSX(data []byte) (*Sheet, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, unreadableWorkbook(err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, internal.ErrNoWorksheet
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, unreadableWorkbook(err)
	}

	return sheetFromRows(rows)
}

func readXLS(data []byte) (*Sheet, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, unreadableWorkbook(err)
	}

	rows := workbook.ReadAllCells(maxXLSRows)
	return sheetFromRows(rows)
}

func unreadableWorkbook(cause error) error {
	return internal.NewUnprocessableError("no worksheet found in the uploaded file", internal.ErrCodeNoWorksheet).WithCause(cause)
}

func sheetFromRows(rows [][]string) (*Sheet, error) {
	if len(rows) == 0 || IsEmptyRow(rows[0]) {
		return nil, internal.ErrNoHeaderRow
	}

	return &Sheet{
		Headers: rows[0],
		Rows:    rows[1:],
	}, nil
}
