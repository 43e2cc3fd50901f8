package repositories

import (
	"fmt"
	"log/slog"

	"ledger-categorizer/internal/models"

	"gorm.io/gorm"
)

type categoryDBRepository struct {
	db *gorm.DB
}

// NewCategoryDBRepository stores the dictionary in the categories and
// category_keywords tables
func NewCategoryDBRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryDBRepository{db: db}
}

func (r *categoryDBRepository) Source() string {
	return "database:" + r.db.Dialector.Name()
}

// Load returns the stored dictionary, seeding the default one when the
// tables are empty
func (r *categoryDBRepository) Load() (*models.CategoryDictionary, error) {
	var records []models.CategoryRecord
	err := r.db.
		Preload("Keywords", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("position ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	if len(records) == 0 {
		dictionary := models.DefaultCategoryDictionary()
		if err := r.Save(dictionary); err != nil {
			return nil, fmt.Errorf("failed to initialize categories: %w", err)
		}
		slog.Info("category tables initialized", "source", r.Source())
		return dictionary, nil
	}

	dictionary := models.DictionaryFromRecords(records)
	if dictionary.EnsureUncategorized() {
		slog.Warn("category tables lacked the fallback category, added it", "source", r.Source())
	}
	return dictionary, nil
}

// Save replaces every stored category inside one transaction
func (r *categoryDBRepository) Save(dictionary *models.CategoryDictionary) error {
	records := models.RecordsFromDictionary(dictionary)

	return r.db.Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&models.CategoryKeywordRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear keywords: %w", err)
		}
		if err := all.Delete(&models.CategoryRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear categories: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to save categories: %w", err)
		}
		return nil
	})
}
