package importer

import "strings"

// Canonical field names produced by header normalization.
const (
	FieldDate        = "date"
	FieldAmount      = "amount"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldSubcategory = "subcategory"
	FieldPaidBy      = "paidBy"
	FieldTags        = "tags"
	FieldType        = "type"
)

// Column binds a worksheet column index to a canonical field name.
type Column struct {
	Index int
	Field string
	// IsDate marks columns whose values run through the date parser
	// instead of being stored as raw text.
	IsDate bool
}

// HeaderMap is the normalized header row.
type HeaderMap struct {
	Columns []Column
}

// NormalizeHeaders lowercases the raw header row and maps each non-empty cell
// to a canonical field. "paid by" and "paidby" fold into paidBy, and any
// header containing "date" is flagged for date parsing. Unrecognized headers
// are kept verbatim so future columns survive the import as extra fields.
func NormalizeHeaders(headers []string) HeaderMap {
	var mapping HeaderMap

	for index, raw := range headers {
		header := strings.ToLower(strings.TrimSpace(raw))
		if header == "" {
			continue
		}

		column := Column{Index: index, Field: header}
		switch header {
		case "paid by", "paidby":
			column.Field = FieldPaidBy
		case "sub category":
			column.Field = FieldSubcategory
		}

		if strings.Contains(header, "date") {
			column.IsDate = true
		}

		mapping.Columns = append(mapping.Columns, column)
	}

	return mapping
}

// Empty reports whether no usable header was found.
func (m HeaderMap) Empty() bool {
	return len(m.Columns) == 0
}
