package postgres

import (
	"strings"
	"time"

	expenseDatamodel "github.com/frahmantamala/expense-tracker/internal/core/datamodel/expense"
	"github.com/frahmantamala/expense-tracker/internal/expense"
	"gorm.io/gorm"
)

// ExpenseRepository implements the expense.Repository interface using GORM
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

// Create saves a new expense to the database
func (r *ExpenseRepository) Create(exp *expense.Expense) error {
	model := expense.ToDataModel(exp)
	if err := r.db.Create(model).Error; err != nil {
		return err
	}
	exp.ID = model.ID
	return nil
}

// GetByID retrieves an expense by its ID
func (r *ExpenseRepository) GetByID(id int64) (*expense.Expense, error) {
	var model expenseDatamodel.Expense
	err := r.db.Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, expense.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense.FromDataModel(&model), nil
}

// List retrieves a user's expenses matching the filter, newest date first,
// along with the total match count. Date bounds are inclusive of both ends.
func (r *ExpenseRepository) List(userID string, filter expense.ListFilter) ([]*expense.Expense, int64, error) {
	query := r.db.Model(&expenseDatamodel.Expense{}).Where("user_id = ?", userID)

	if filter.From != nil {
		query = query.Where("expense_date >= ?", dateOnly(*filter.From))
	}
	if filter.To != nil {
		// strictly-before next day keeps the upper bound inclusive
		query = query.Where("expense_date < ?", dateOnly(*filter.To).AddDate(0, 0, 1))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Type != "" {
		query = query.Where("expense_type = ?", filter.Type)
	}
	if filter.PaidBy != "" {
		query = query.Where("paid_by = ?", filter.PaidBy)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("expense_date DESC, id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var models []*expenseDatamodel.Expense
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	return expense.FromDataModelSlice(models), total, nil
}

// Update updates an existing expense
func (r *ExpenseRepository) Update(exp *expense.Expense) error {
	exp.UpdatedAt = time.Now()
	return r.db.Save(expense.ToDataModel(exp)).Error
}

// Delete removes an expense permanently.
func (r *ExpenseRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&expenseDatamodel.Expense{}).Error
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
