package postgres

import (
	"github.com/frahmantamala/expense-tracker/internal/cash"
	cashDatamodel "github.com/frahmantamala/expense-tracker/internal/core/datamodel/cash"
	"gorm.io/gorm"
)

// CashRepository implements cash.RepositoryAPI using GORM
type CashRepository struct {
	db *gorm.DB
}

func NewCashRepository(db *gorm.DB) cash.RepositoryAPI {
	return &CashRepository{db: db}
}

func (r *CashRepository) Create(model *cashDatamodel.Transaction) error {
	return r.db.Create(model).Error
}

func (r *CashRepository) GetForUser(userID string) ([]*cashDatamodel.Transaction, error) {
	var transactions []*cashDatamodel.Transaction
	err := r.db.Where("user_id = ?", userID).Order("transaction_date DESC").Find(&transactions).Error
	return transactions, err
}
