package category

import (
	"log/slog"

	"github.com/frahmantamala/expense-tracker/internal"
	categoryDatamodel "github.com/frahmantamala/expense-tracker/internal/core/datamodel/category"
)

type RepositoryAPI interface {
	GetForUser(userID string) ([]*categoryDatamodel.ExpenseCategory, error)
	GetByName(userID, name string) (*categoryDatamodel.ExpenseCategory, error)
	Create(category *categoryDatamodel.ExpenseCategory) error
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

// GetCategories returns a user's categories for populating selection UI.
func (s *Service) GetCategories(userID string) ([]*Category, error) {
	models, err := s.repo.GetForUser(userID)
	if err != nil {
		s.logger.Error("failed to get categories", "error", err, "user_id", userID)
		return nil, err
	}

	categories := make([]*Category, len(models))
	for i, model := range models {
		categories[i] = FromDataModel(model)
	}

	s.logger.Info("retrieved categories", "user_id", userID, "count", len(categories))
	return categories, nil
}

// CreateCategory adds a category with its subcategory suggestions. Duplicate
// names for the same user are rejected.
func (s *Service) CreateCategory(userID string, dto CreateCategoryDTO) (*Category, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("category validation failed", "error", err, "user_id", userID)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeInvalidCategory)
	}

	if existing, err := s.repo.GetByName(userID, dto.Name); err == nil && existing != nil {
		return nil, internal.NewConflictError("category already exists", internal.ErrCodeInvalidCategory)
	}

	category := NewCategory(userID, dto.Name, dto.Subcategories)
	model := ToDataModel(category)
	if err := s.repo.Create(model); err != nil {
		s.logger.Error("failed to create category", "error", err, "user_id", userID)
		return nil, err
	}
	category.ID = model.ID

	s.logger.Info("category created", "category_id", category.ID, "user_id", userID, "name", category.Name)
	return category, nil
}
