package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/expense-tracker/internal"
	"github.com/frahmantamala/expense-tracker/internal/expense"
	"github.com/frahmantamala/expense-tracker/internal/transport"
	"github.com/frahmantamala/expense-tracker/pkg/logger"
)

const (
	FormatExcel = "xlsx"
	FormatPDF   = "pdf"

	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType   = "application/pdf"
)

// ExpenseLister supplies the filtered record set; the expense service
// satisfies this.
type ExpenseLister interface {
	ListExpenses(userID string, filter expense.ListFilter) ([]*expense.Expense, int64, error)
}

type Handler struct {
	*transport.BaseHandler
	Expenses ExpenseLister
}

func NewHandler(expenses ExpenseLister) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Expenses:    expenses,
	}
}

// ExportStatements streams the filtered statement as a spreadsheet or PDF.
// The same listing filter as GET /expenses applies, unpaginated.
func (h *Handler) ExportStatements(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.UserID(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = FormatExcel
	}
	if format != FormatExcel && format != FormatPDF {
		h.HandleServiceError(w, internal.ErrUnsupportedFormat)
		return
	}

	filter := expense.FilterFromQuery(r)
	filter.Limit = 0
	filter.Offset = 0

	expenses, _, err := h.Expenses.ListExpenses(userID, filter)
	if err != nil {
		h.Logger.Error("ExportStatements: failed to list expenses", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusInternalServerError, "failed to load expenses for export")
		return
	}

	doc := NewDocument(expenses, r.URL.Query().Get("name"), DateRange{From: filter.From, To: filter.To})

	var buffer bytes.Buffer
	var contentType string
	switch format {
	case FormatPDF:
		contentType = pdfContentType
		err = WritePDF(&buffer, doc)
	default:
		contentType = excelContentType
		err = WriteExcel(&buffer, doc)
	}
	if err != nil {
		h.Logger.Error("ExportStatements: generation failed", "error", err, "user_id", userID, "format", format)
		h.HandleServiceError(w, internal.NewInternalError("failed to generate statement", err))
		return
	}

	h.Logger.Info("ExportStatements: statement generated",
		"user_id", userID,
		"format", format,
		"records", len(expenses))

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename(format)))
	w.WriteHeader(http.StatusOK)
	if _, err := buffer.WriteTo(w); err != nil {
		h.Logger.Error("ExportStatements: failed to stream document", "error", err)
	}
}
