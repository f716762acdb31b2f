package postgres

import (
	"github.com/frahmantamala/expense-tracker/internal/category"
	categoryDatamodel "github.com/frahmantamala/expense-tracker/internal/core/datamodel/category"
	"gorm.io/gorm"
)

// CategoryRepository implements category.RepositoryAPI using GORM
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetForUser(userID string) ([]*categoryDatamodel.ExpenseCategory, error) {
	var categories []*categoryDatamodel.ExpenseCategory
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetByName(userID, name string) (*categoryDatamodel.ExpenseCategory, error) {
	var model categoryDatamodel.ExpenseCategory
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &model, nil
}

func (r *CategoryRepository) Create(model *categoryDatamodel.ExpenseCategory) error {
	return r.db.Create(model).Error
}
