package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/frahmantamala/expense-tracker/internal/expense"
)

// Columns is the one canonical column order shared by every output format.
var Columns = []string{"Date", "Amount", "Description", "Paid By", "Category", "Sub Category", "Tags", "Type"}

// displayDateFormat renders dates as MMM dd, yyyy.
const displayDateFormat = "Jan 02, 2006"

// NoDataMarker is emitted instead of a table when the filtered set is empty.
const NoDataMarker = "No data available"

// FooterNote closes every statement.
const FooterNote = "This statement was generated automatically by Expense Tracker."

// DateRange bounds a statement. Either side may be open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Document is a fully transformed statement, ready for any writer. Building
// it once keeps spreadsheet and PDF output identical cell for cell.
type Document struct {
	FullName string
	Range    DateRange
	Rows     [][]string
}

// NewDocument applies the shared value transforms to the filtered record set.
func NewDocument(expenses []*expense.Expense, fullName string, dateRange DateRange) *Document {
	rows := make([][]string, len(expenses))
	for i, e := range expenses {
		rows[i] = []string{
			formatDate(&e.Date),
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Description,
			e.PaidBy,
			e.Category,
			e.Subcategory,
			strings.Join(e.Tags, ", "),
			expense.FormatType(e.Type),
		}
	}

	return &Document{
		FullName: fullName,
		Range:    dateRange,
		Rows:     rows,
	}
}

// TitleLine is the first line of the header block.
func (d *Document) TitleLine() string {
	name := d.FullName
	if name == "" {
		name = "Expense Statement"
	} else {
		name = "Expense Statement for " + name
	}
	return name
}

// PeriodLine states the date range boundaries.
func (d *Document) PeriodLine() string {
	from, to := d.Range.From, d.Range.To
	switch {
	case from != nil && to != nil:
		return fmt.Sprintf("Period: %s to %s", formatDate(from), formatDate(to))
	case from != nil:
		return fmt.Sprintf("Period: from %s", formatDate(from))
	case to != nil:
		return fmt.Sprintf("Period: until %s", formatDate(to))
	default:
		return "Period: all records"
	}
}

// Filename derives the download name from the range bounds, ISO formatted,
// degrading to a single date or "all" when bounds are absent.
func (d *Document) Filename(extension string) string {
	return "statements_" + d.rangeSlug() + "." + extension
}

func (d *Document) rangeSlug() string {
	from, to := d.Range.From, d.Range.To
	switch {
	case from != nil && to != nil:
		return from.Format("2006-01-02") + "_to_" + to.Format("2006-01-02")
	case from != nil:
		return from.Format("2006-01-02")
	case to != nil:
		return to.Format("2006-01-02")
	default:
		return "all"
	}
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(displayDateFormat)
}
