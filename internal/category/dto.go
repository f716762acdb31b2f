package category

import (
	"errors"
	"strings"
)

type CreateCategoryDTO struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories,omitempty"`
}

func (dto CreateCategoryDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}
