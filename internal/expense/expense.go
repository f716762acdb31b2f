package expense

import (
	"time"

	expenseDatamodel "github.com/frahmantamala/expense-tracker/internal/core/datamodel/expense"
)

// Expense type buckets, mirroring the dashboard's need/want/not-sure split.
const (
	TypeNeed    = "need"
	TypeWant    = "want"
	TypeNotSure = "not_sure"
)

// FormatType maps a stored expense type to its display label. Unknown
// values pass through unchanged.
func FormatType(expenseType string) string {
	switch expenseType {
	case TypeNeed:
		return "Need"
	case TypeWant:
		return "Want"
	case TypeNotSure:
		return "Not Sure"
	default:
		return expenseType
	}
}

func IsValidType(expenseType string) bool {
	switch expenseType {
	case TypeNeed, TypeWant, TypeNotSure:
		return true
	}
	return false
}

type Expense struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Description string    `json:"description,omitempty"`
	PaidBy      string    `json:"paid_by"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToDataModel(e *Expense) *expenseDatamodel.Expense {
	return &expenseDatamodel.Expense{
		ID:          e.ID,
		UserID:      e.UserID,
		Amount:      e.Amount,
		Type:        e.Type,
		Date:        e.Date,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Description: e.Description,
		PaidBy:      e.PaidBy,
		Tags:        expenseDatamodel.TagList(e.Tags),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromDataModel(e *expenseDatamodel.Expense) *Expense {
	return &Expense{
		ID:          e.ID,
		UserID:      e.UserID,
		Amount:      e.Amount,
		Type:        e.Type,
		Date:        e.Date,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Description: e.Description,
		PaidBy:      e.PaidBy,
		Tags:        []string(e.Tags),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromDataModelSlice(expenses []*expenseDatamodel.Expense) []*Expense {
	result := make([]*Expense, len(expenses))
	for i, e := range expenses {
		result[i] = FromDataModel(e)
	}
	return result
}
