package repositories

import (
	"ledger-categorizer/internal/models"
)

// CategoryRepositoryInterface persists the category dictionary as a whole.
// Save is a full replace.
type CategoryRepositoryInterface interface {
	Load() (*models.CategoryDictionary, error)
	Save(dictionary *models.CategoryDictionary) error
	Source() string
}
