package expense

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/expense-tracker/internal"
)

// Cash bookkeeping markers used to derive on-hand cash: withdrawals are
// expenses filed under CashWithdrawalCategory, spending is anything paid
// with CashPaymentMethod.
const (
	CashWithdrawalCategory = "Cash Withdrawal"
	CashPaymentMethod      = "Cash"
)

// Repository interface defines the data access methods for expenses
type Repository interface {
	Create(expense *Expense) error
	GetByID(id int64) (*Expense, error)
	List(userID string, filter ListFilter) ([]*Expense, int64, error)
	Update(expense *Expense) error
	Delete(id int64) error
}

// Service handles expense business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new expense service
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateExpense validates and persists a single expense.
func (s *Service) CreateExpense(userID string, dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err, "user_id", userID)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	now := time.Now()
	expense := &Expense{
		UserID:      userID,
		Amount:      dto.Amount,
		Type:        dto.Type,
		Date:        dto.Date,
		Category:    dto.Category,
		Subcategory: dto.Subcategory,
		Description: dto.Description,
		PaidBy:      dto.PaidBy,
		Tags:        dto.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(expense); err != nil {
		s.logger.Error("failed to create expense", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("expense created",
		"expense_id", expense.ID,
		"user_id", userID,
		"amount", dto.Amount,
		"category", dto.Category)

	return expense, nil
}

// GetExpenseByID retrieves an expense by ID scoped to its owner.
func (s *Service) GetExpenseByID(id int64, userID string) (*Expense, error) {
	expense, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return nil, ErrExpenseNotFound
	}

	if expense.UserID != userID {
		s.logger.Warn("expense owned by another user", "expense_id", id, "user_id", userID)
		return nil, ErrExpenseNotFound
	}

	return expense, nil
}

// ListExpenses returns the filtered page plus the total match count.
func (s *Service) ListExpenses(userID string, filter ListFilter) ([]*Expense, int64, error) {
	expenses, total, err := s.repo.List(userID, filter)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "user_id", userID)
		return nil, 0, err
	}
	return expenses, total, nil
}

// UpdateExpense applies a partial field replacement and refreshes updated_at.
func (s *Service) UpdateExpense(id int64, userID string, dto UpdateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense update validation failed", "error", err, "expense_id", id)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	expense, err := s.GetExpenseByID(id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Amount != nil {
		expense.Amount = *dto.Amount
	}
	if dto.Type != nil {
		expense.Type = *dto.Type
	}
	if dto.Date != nil {
		expense.Date = *dto.Date
	}
	if dto.Category != nil {
		expense.Category = *dto.Category
	}
	if dto.Subcategory != nil {
		expense.Subcategory = *dto.Subcategory
	}
	if dto.Description != nil {
		expense.Description = *dto.Description
	}
	if dto.PaidBy != nil {
		expense.PaidBy = *dto.PaidBy
	}
	if dto.Tags != nil {
		expense.Tags = *dto.Tags
	}
	expense.UpdatedAt = time.Now()

	if err := s.repo.Update(expense); err != nil {
		s.logger.Error("failed to update expense", "error", err, "expense_id", id)
		return nil, err
	}

	s.logger.Info("expense updated", "expense_id", id, "user_id", userID)
	return expense, nil
}

// DeleteExpense removes an expense permanently. There is no soft delete.
func (s *Service) DeleteExpense(id int64, userID string) error {
	if _, err := s.GetExpenseByID(id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return err
	}

	s.logger.Info("expense deleted", "expense_id", id, "user_id", userID)
	return nil
}

// ComputeStats aggregates the full filtered set. On-hand cash is derived,
// never persisted: withdrawals filed under the cash category minus spending
// paid with cash.
func (s *Service) ComputeStats(userID string, filter ListFilter) (*Stats, error) {
	filter.Limit = 0
	filter.Offset = 0

	expenses, _, err := s.repo.List(userID, filter)
	if err != nil {
		s.logger.Error("failed to load expenses for stats", "error", err, "user_id", userID)
		return nil, err
	}

	stats := &Stats{
		Count:      len(expenses),
		ByCategory: make(map[string]float64),
		ByType:     make(map[string]float64),
	}

	var withdrawals, cashSpent float64
	for _, e := range expenses {
		stats.Total += e.Amount
		stats.ByCategory[e.Category] += e.Amount
		stats.ByType[e.Type] += e.Amount

		if e.Category == CashWithdrawalCategory {
			withdrawals += e.Amount
		}
		if e.PaidBy == CashPaymentMethod {
			cashSpent += e.Amount
		}
	}
	stats.OnHandCash = withdrawals - cashSpent

	stats.TopCategory = argmax(stats.ByCategory)

	byMethod := make(map[string]float64)
	for _, e := range expenses {
		byMethod[e.PaidBy] += e.Amount
	}
	stats.TopPaymentMethod = argmax(byMethod)

	if days := rangeDays(filter, expenses); days > 0 {
		stats.AverageDaily = stats.Total / float64(days)
	}

	return stats, nil
}

// argmax picks the key with the largest sum, breaking ties on the
// lexicographically smaller key so equal sums cannot flip the winner
// between requests.
func argmax(sums map[string]float64) string {
	var best string
	var bestAmount float64
	for key, amount := range sums {
		if best == "" || amount > bestAmount || (amount == bestAmount && key < best) {
			best, bestAmount = key, amount
		}
	}
	return best
}

// rangeDays is the inclusive day count of the filter bounds, falling back to
// the span of the data itself when a bound is missing.
func rangeDays(filter ListFilter, expenses []*Expense) int {
	from, to := filter.From, filter.To
	if from == nil || to == nil {
		if len(expenses) == 0 {
			return 0
		}
		min, max := expenses[0].Date, expenses[0].Date
		for _, e := range expenses[1:] {
			if e.Date.Before(min) {
				min = e.Date
			}
			if e.Date.After(max) {
				max = e.Date
			}
		}
		from, to = &min, &max
	}

	days := int(to.Sub(*from).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}
