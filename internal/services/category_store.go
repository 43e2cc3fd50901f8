package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"ledger-categorizer/internal/models"
	"ledger-categorizer/internal/repositories"
)

type categoryStore struct {
	mu         sync.RWMutex
	repo       repositories.CategoryRepositoryInterface
	metrics    MetricsRecorderInterface
	dictionary *models.CategoryDictionary
}

// NewCategoryStore creates a store holding the default dictionary until Load
// is called
func NewCategoryStore(repo repositories.CategoryRepositoryInterface, metrics MetricsRecorderInterface) CategoryStoreInterface {
	return &categoryStore{
		repo:       repo,
		metrics:    metrics,
		dictionary: models.DefaultCategoryDictionary(),
	}
}

// Load replaces the in-memory dictionary with the persisted one. On any error
// the store keeps serving the default dictionary and the error is returned
// for the caller to report.
func (s *categoryStore) Load() error {
	dictionary, err := s.repo.Load()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.dictionary = models.DefaultCategoryDictionary()
		s.recordSize()
		return err
	}

	s.dictionary = dictionary
	s.recordSize()
	slog.Info("Category store loaded", "source", s.repo.Source(), "categories", dictionary.Len())
	return nil
}

// LoadCategoryStore loads the store at startup. A corrupt document is logged
// and the store continues with the default dictionary; other errors are
// returned.
func LoadCategoryStore(store CategoryStoreInterface) error {
	err := store.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, models.ErrStoreCorrupt) {
		slog.Warn("Category store is corrupt, using default categories", "error", err)
		return nil
	}
	return fmt.Errorf("failed to load categories: %w", err)
}

// Save persists the current dictionary
func (s *categoryStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.repo.Save(s.dictionary)
}

// Snapshot returns a copy of the dictionary safe to read without locking
func (s *categoryStore) Snapshot() *models.CategoryDictionary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dictionary.Clone()
}

// AddCategory appends a new category with no keywords and persists it
func (s *categoryStore) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ErrEmptyCategoryName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dictionary.Has(name) {
		return &models.DuplicateCategoryError{Name: name}
	}

	next := s.dictionary.Clone()
	next.Add(name)

	if err := s.commit(next, "add_category"); err != nil {
		return err
	}

	slog.Info("Category added", "category", name)
	return nil
}

// AddKeyword appends a keyword to an existing category. It returns false
// without persisting anything when the keyword is blank or already present
// in any letter case.
func (s *categoryStore) AddKeyword(category, keyword string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.dictionary.Keywords(category)
	if !ok {
		return false, &models.UnknownCategoryError{Name: category}
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return false, nil
	}

	for _, k := range existing {
		if strings.EqualFold(strings.TrimSpace(k), keyword) {
			return false, nil
		}
	}

	next := s.dictionary.Clone()
	next.AppendKeyword(category, keyword)

	if err := s.commit(next, "add_keyword"); err != nil {
		return false, err
	}

	slog.Info("Keyword added", "category", category, "keyword", keyword)
	return true, nil
}

// commit persists next and swaps it in. Callers hold the write lock.
func (s *categoryStore) commit(next *models.CategoryDictionary, operation string) error {
	if err := s.repo.Save(next); err != nil {
		s.metrics.IncrementCounter("category_store_mutation", map[string]string{
			"operation": operation,
			"status":    "failed",
		})
		return fmt.Errorf("%w: %w", models.ErrPersistFailed, err)
	}

	s.dictionary = next
	s.metrics.IncrementCounter("category_store_mutation", map[string]string{
		"operation": operation,
		"status":    "success",
	})
	s.recordSize()
	return nil
}

func (s *categoryStore) recordSize() {
	s.metrics.RecordGauge("store_categories", float64(s.dictionary.Len()), nil)
}
