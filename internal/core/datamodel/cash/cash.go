package cash

import "time"

// Transaction is the persistence model for manually logged cash movements.
type Transaction struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"column:user_id;not null;index"`
	Amount      float64   `json:"amount" gorm:"column:amount;not null"`
	Description string    `json:"description" gorm:"column:description"`
	Date        time.Time `json:"date" gorm:"column:transaction_date;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Transaction) TableName() string {
	return "cash_transactions"
}
