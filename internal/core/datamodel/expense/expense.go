package expense

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// TagList stores expense tags as a comma-joined text column. Order is
// preserved for display; it carries no semantic meaning.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "", nil
	}
	return strings.Join(t, ","), nil
}

func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TagList", value)
	}

	if strings.TrimSpace(raw) == "" {
		*t = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make(TagList, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	*t = tags
	return nil
}

// Expense is the persistence model for the expenses table.
type Expense struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"column:user_id;not null;index"`
	Amount      float64   `json:"amount" gorm:"column:amount;not null"`
	Type        string    `json:"type" gorm:"column:expense_type;not null"`
	Date        time.Time `json:"date" gorm:"column:expense_date;type:date;not null"`
	Category    string    `json:"category" gorm:"column:category;not null"`
	Subcategory string    `json:"subcategory" gorm:"column:subcategory"`
	Description string    `json:"description" gorm:"column:description"`
	PaidBy      string    `json:"paid_by" gorm:"column:paid_by;not null"`
	Tags        TagList   `json:"tags" gorm:"column:tags;type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}
