package category

import (
	"time"

	categoryDatamodel "github.com/frahmantamala/expense-tracker/internal/core/datamodel/category"
)

// Category is a per-user selection aid: a name with an ordered subcategory
// list. Nothing enforces it against expenses.
type Category struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Subcategories []string  `json:"subcategories"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewCategory(userID, name string, subcategories []string) *Category {
	now := time.Now()
	return &Category{
		UserID:        userID,
		Name:          name,
		Subcategories: subcategories,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func ToDataModel(c *Category) *categoryDatamodel.ExpenseCategory {
	return &categoryDatamodel.ExpenseCategory{
		ID:            c.ID,
		UserID:        c.UserID,
		Name:          c.Name,
		Subcategories: categoryDatamodel.SubcategoryList(c.Subcategories),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromDataModel(c *categoryDatamodel.ExpenseCategory) *Category {
	return &Category{
		ID:            c.ID,
		UserID:        c.UserID,
		Name:          c.Name,
		Subcategories: []string(c.Subcategories),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
