package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is one normalized row. Canonical fields are typed; anything from an
// unrecognized column lands in Extra. A nil field means the cell was missing
// or unparseable — rows are never rejected for a single bad field.
type Record struct {
	Date        *time.Time
	Amount      *float64
	Description string
	Category    string
	Subcategory string
	PaidBy      string
	Type        string
	Tags        []string
	Extra       map[string]string
}

// IsEmptyRow reports whether every cell in the row is blank. Wholly empty
// rows are dropped before record building.
func IsEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// BuildRecord combines one data row with the normalized header mapping.
func BuildRecord(headers HeaderMap, row []string) *Record {
	record := &Record{}

	for _, column := range headers.Columns {
		if column.Index >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[column.Index])
		if value == "" {
			continue
		}

		if column.IsDate {
			// Only the canonical date column feeds Record.Date; other
			// date-flagged columns keep their parsed value under their own
			// header so they cannot clobber the expense date.
			if column.Field == FieldDate {
				record.Date = ParseDateCell(value)
			} else {
				if record.Extra == nil {
					record.Extra = make(map[string]string)
				}
				if parsed := ParseDateCell(value); parsed != nil {
					record.Extra[column.Field] = parsed.Format("2006-01-02")
				} else {
					record.Extra[column.Field] = value
				}
			}
			continue
		}

		switch column.Field {
		case FieldAmount:
			record.Amount = parseAmount(value)
		case FieldDescription:
			record.Description = value
		case FieldCategory:
			record.Category = value
		case FieldSubcategory:
			record.Subcategory = value
		case FieldPaidBy:
			record.PaidBy = value
		case FieldType:
			record.Type = normalizeType(value)
		case FieldTags:
			record.Tags = SplitTags(value)
		default:
			if record.Extra == nil {
				record.Extra = make(map[string]string)
			}
			record.Extra[column.Field] = value
		}
	}

	return record
}

// SplitTags splits a comma-separated cell into trimmed tag strings.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func parseAmount(raw string) *float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &amount
}

// normalizeType folds sheet values like "Need" or "Not Sure" onto the stored
// type keys.
func normalizeType(raw string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_")
}

func (r *Record) String() string {
	return fmt.Sprintf("record{category: %q, paidBy: %q, tags: %d}", r.Category, r.PaidBy, len(r.Tags))
}
