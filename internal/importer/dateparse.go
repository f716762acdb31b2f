package importer

import (
	"strconv"
	"strings"
	"time"
)

// serialEpoch is the spreadsheet serial-date epoch (1899-12-30), kept for
// compatibility with Excel-style serial numbers.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// datePatterns are tried in order after a strict ISO parse fails. MM/dd/yyyy
// deliberately precedes dd/MM/yyyy: ambiguous strings like 03/04/2024 resolve
// US-style. Locale-specific, not a universal rule.
var datePatterns = []string{
	"2006-01-02",      // yyyy-MM-dd
	"01/02/2006",      // MM/dd/yyyy
	"02-01-2006",      // dd-MM-yyyy
	"02/01/2006",      // dd/MM/yyyy
	"Jan 02, 2006",    // MMM dd, yyyy
	"January 2, 2006", // MMMM d, yyyy
}

// permissivePatterns are the last-resort layouts, standing in for a generic
// date-string parse.
var permissivePatterns = []string{
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"2006/01/02",
	"Jan 2 2006",
	"2 Jan 2006",
	"January 2 2006",
}

// ParseDateCell converts an arbitrary cell value into a calendar date. It
// never fails loudly: unparseable input yields nil and the caller treats the
// field as missing.
//
// Resolution order: date value as-is, numeric as spreadsheet serial, string
// via strict ISO-8601 then the fixed pattern list then a permissive fallback.
func ParseDateCell(value interface{}) *time.Time {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return &v
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil
		}
		return v
	case float64:
		return fromSerial(v)
	case float32:
		return fromSerial(float64(v))
	case int:
		return fromSerial(float64(v))
	case int64:
		return fromSerial(float64(v))
	case string:
		return parseDateString(v)
	}

	return nil
}

func fromSerial(serial float64) *time.Time {
	if serial < 0 {
		return nil
	}
	date := serialEpoch.AddDate(0, 0, int(serial))
	return &date
}

func parseDateString(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	// Cells read from workbooks arrive as text, so a bare number is still a
	// serial date.
	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return fromSerial(serial)
	}

	if date, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return &date
	}
	if date, err := time.Parse("2006-01-02T15:04:05", trimmed); err == nil {
		return &date
	}

	for _, pattern := range datePatterns {
		if date, err := time.Parse(pattern, trimmed); err == nil {
			return &date
		}
	}

	for _, pattern := range permissivePatterns {
		if date, err := time.Parse(pattern, trimmed); err == nil {
			return &date
		}
	}

	return nil
}
