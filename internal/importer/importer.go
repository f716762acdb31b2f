package importer

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/frahmantamala/expense-tracker/internal"
	"github.com/frahmantamala/expense-tracker/internal/expense"
	"golang.org/x/sync/errgroup"
)

// Submitter persists one built record. The expense service satisfies this.
type Submitter interface {
	CreateExpense(userID string, dto expense.CreateExpenseDTO) (*expense.Expense, error)
}

// Result is the aggregate outcome of a bulk import. Submissions are
// independent creates: a failed row never rolls back the ones that
// succeeded, the result just says how far it got.
type Result struct {
	Submitted    int    `json:"submitted"`
	Failed       int    `json:"failed"`
	SkippedEmpty int    `json:"skipped_empty"`
	FirstError   string `json:"first_error,omitempty"`
}

// Importer drives the bulk ingestion pipeline: read workbook, normalize
// headers, build records, submit everything.
type Importer struct {
	submitter Submitter
	logger    *slog.Logger
}

func New(submitter Submitter, logger *slog.Logger) *Importer {
	return &Importer{
		submitter: submitter,
		logger:    logger,
	}
}

// Import ingests one uploaded spreadsheet for a user. Structural problems
// (unreadable file, no worksheet, no header row) abort with an error; row
// and field level problems never do.
//
// All built records are submitted concurrently with no cap and no ordering
// guarantee, matching the dashboard's original submit-all semantics.
func (i *Importer) Import(userID string, data []byte, filename string) (*Result, error) {
	sheet, err := ReadWorkbook(data, filename)
	if err != nil {
		i.logger.Error("bulk import rejected", "error", err, "user_id", userID, "filename", filename)
		return nil, err
	}

	headers := NormalizeHeaders(sheet.Headers)
	if headers.Empty() {
		return nil, internal.ErrNoHeaderRow
	}

	result := &Result{}
	var records []*Record
	for _, row := range sheet.Rows {
		if IsEmptyRow(row) {
			result.SkippedEmpty++
			continue
		}
		records = append(records, BuildRecord(headers, row))
	}

	var submitted, failed atomic.Int64
	var once sync.Once
	var group errgroup.Group

	for _, record := range records {
		dto := record.ToCreateDTO()
		group.Go(func() error {
			if _, err := i.submitter.CreateExpense(userID, dto); err != nil {
				failed.Add(1)
				once.Do(func() {
					result.FirstError = err.Error()
				})
				return err
			}
			submitted.Add(1)
			return nil
		})
	}

	err = group.Wait()
	result.Submitted = int(submitted.Load())
	result.Failed = int(failed.Load())

	i.logger.Info("bulk import finished",
		"user_id", userID,
		"filename", filename,
		"submitted", result.Submitted,
		"failed", result.Failed,
		"skipped_empty", result.SkippedEmpty)

	if err != nil {
		i.logger.Warn("bulk import had row failures", "error", err, "user_id", userID)
	}

	return result, nil
}

// ToCreateDTO maps a normalized record onto the expense creation payload.
// Missing fields map to zero values so a bad row fails its own submission
// instead of the whole batch.
func (r *Record) ToCreateDTO() expense.CreateExpenseDTO {
	dto := expense.CreateExpenseDTO{
		Description: r.Description,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		PaidBy:      r.PaidBy,
		Type:        r.Type,
		Tags:        r.Tags,
	}
	if r.Amount != nil {
		dto.Amount = *r.Amount
	}
	if r.Date != nil {
		dto.Date = *r.Date
	}
	if dto.Type == "" {
		dto.Type = expense.TypeNotSure
	}
	return dto
}
