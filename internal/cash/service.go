package cash

import (
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/expense-tracker/internal"
	cashDatamodel "github.com/frahmantamala/expense-tracker/internal/core/datamodel/cash"
)

type RepositoryAPI interface {
	Create(transaction *cashDatamodel.Transaction) error
	GetForUser(userID string) ([]*cashDatamodel.Transaction, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// AddTransaction logs a cash movement dated now.
func (s *Service) AddTransaction(userID string, amount float64, description string) (*Transaction, error) {
	if amount <= 0 {
		return nil, internal.NewValidationError("amount must be greater than 0", internal.ErrCodeInvalidAmount)
	}

	now := time.Now()
	transaction := &Transaction{
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Date:        now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	model := ToDataModel(transaction)
	if err := s.repo.Create(model); err != nil {
		s.logger.Error("failed to create cash transaction", "error", err, "user_id", userID)
		return nil, err
	}
	transaction.ID = model.ID

	s.logger.Info("cash transaction logged", "transaction_id", transaction.ID, "user_id", userID, "amount", amount)
	return transaction, nil
}

// GetTransactions returns a user's cash log, newest first.
func (s *Service) GetTransactions(userID string) ([]*Transaction, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	models, err := s.repo.GetForUser(userID)
	if err != nil {
		s.logger.Error("failed to get cash transactions", "error", err, "user_id", userID)
		return nil, err
	}

	transactions := make([]*Transaction, len(models))
	for i, model := range models {
		transactions[i] = FromDataModel(model)
	}
	return transactions, nil
}
