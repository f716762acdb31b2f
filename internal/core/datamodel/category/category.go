package category

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// SubcategoryList stores the ordered subcategory names as a comma-joined
// text column.
type SubcategoryList []string

func (s SubcategoryList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "", nil
	}
	return strings.Join(s, ","), nil
}

func (s *SubcategoryList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into SubcategoryList", value)
	}

	if strings.TrimSpace(raw) == "" {
		*s = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	subs := make(SubcategoryList, 0, len(parts))
	for _, part := range parts {
		if sub := strings.TrimSpace(part); sub != "" {
			subs = append(subs, sub)
		}
	}
	*s = subs
	return nil
}

// ExpenseCategory is the persistence model for per-user categories. It is
// suggestion data for the UI; nothing enforces it against expenses.
type ExpenseCategory struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	UserID        string          `json:"user_id" gorm:"column:user_id;not null;index"`
	Name          string          `json:"name" gorm:"column:name;not null"`
	Subcategories SubcategoryList `json:"subcategories" gorm:"column:subcategories;type:text"`
	CreatedAt     time.Time       `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time       `json:"updated_at" gorm:"column:updated_at"`
}

func (ExpenseCategory) TableName() string {
	return "categories"
}
