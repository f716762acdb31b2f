package expense

import (
	"errors"
	"strings"
	"time"
)

// Domain errors
var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// CreateExpenseDTO represents the request payload for creating an expense
type CreateExpenseDTO struct {
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Description string    `json:"description,omitempty"`
	PaidBy      string    `json:"paid_by"`
	Tags        []string  `json:"tags,omitempty"`
}

// Validate validates the CreateExpenseDTO
func (dto CreateExpenseDTO) Validate() error {
	if dto.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}
	if !IsValidType(dto.Type) {
		return errors.New("type must be one of need, want, not_sure")
	}
	if dto.Date.IsZero() {
		return errors.New("date is required")
	}
	if strings.TrimSpace(dto.Category) == "" {
		return errors.New("category is required")
	}
	if strings.TrimSpace(dto.PaidBy) == "" {
		return errors.New("payment method is required")
	}
	return nil
}

// UpdateExpenseDTO carries a partial field replacement. Nil fields are left
// untouched; updated_at always refreshes.
type UpdateExpenseDTO struct {
	Amount      *float64   `json:"amount,omitempty"`
	Type        *string    `json:"type,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Subcategory *string    `json:"subcategory,omitempty"`
	Description *string    `json:"description,omitempty"`
	PaidBy      *string    `json:"paid_by,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
}

func (dto UpdateExpenseDTO) Validate() error {
	if dto.Amount != nil && *dto.Amount <= 0 {
		return errors.New("amount must be greater than 0")
	}
	if dto.Type != nil && !IsValidType(*dto.Type) {
		return errors.New("type must be one of need, want, not_sure")
	}
	if dto.Date != nil && dto.Date.IsZero() {
		return errors.New("date cannot be empty")
	}
	if dto.Category != nil && strings.TrimSpace(*dto.Category) == "" {
		return errors.New("category cannot be empty")
	}
	if dto.PaidBy != nil && strings.TrimSpace(*dto.PaidBy) == "" {
		return errors.New("payment method cannot be empty")
	}
	return nil
}

// ListFilter narrows a user's expenses. Date bounds are inclusive on both
// ends. Limit <= 0 disables pagination (stats and export read full sets).
type ListFilter struct {
	From     *time.Time
	To       *time.Time
	Category string
	Type     string
	PaidBy   string
	Search   string
	Limit    int
	Offset   int
}

// Stats is the aggregate block backing the dashboard cards and charts.
type Stats struct {
	Count            int                `json:"count"`
	Total            float64            `json:"total"`
	AverageDaily     float64            `json:"average_daily"`
	TopCategory      string             `json:"top_category"`
	TopPaymentMethod string             `json:"top_payment_method"`
	ByCategory       map[string]float64 `json:"by_category"`
	ByType           map[string]float64 `json:"by_type"`
	OnHandCash       float64            `json:"on_hand_cash"`
}
