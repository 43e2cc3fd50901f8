package services

import (
	"errors"
	"strings"

	"ledger-categorizer/internal/models"
)

var ErrTransactionNil = errors.New("transaction cannot be nil")

type categorizer struct{}

type keywordPattern struct {
	category string
	keywords []string
}

// NewCategorizer creates a new CategorizerInterface instance
func NewCategorizer() CategorizerInterface {
	return &categorizer{}
}

// compilePatterns flattens the dictionary into match order. Uncategorized,
// keyword-less categories and blank keywords never take part in matching.
func compilePatterns(dictionary *models.CategoryDictionary) []keywordPattern {
	if dictionary == nil {
		return nil
	}

	patterns := make([]keywordPattern, 0, dictionary.Len())
	for _, name := range dictionary.Names() {
		if name == models.Uncategorized {
			continue
		}

		keywords, _ := dictionary.Keywords(name)
		normalized := make([]string, 0, len(keywords))
		for _, keyword := range keywords {
			if k := normalizeForMatching(keyword); k != "" {
				normalized = append(normalized, k)
			}
		}
		if len(normalized) == 0 {
			continue
		}

		patterns = append(patterns, keywordPattern{category: name, keywords: normalized})
	}
	return patterns
}

func matchPatterns(patterns []keywordPattern, description string) string {
	reference := normalizeForMatching(description)
	if reference == "" {
		return models.Uncategorized
	}

	for _, pattern := range patterns {
		for _, keyword := range pattern.keywords {
			if strings.Contains(reference, keyword) {
				return pattern.category
			}
		}
	}
	return models.Uncategorized
}

// Categorize returns the first category in dictionary order owning a keyword
// contained in the description, or Uncategorized
func (c *categorizer) Categorize(description string, dictionary *models.CategoryDictionary) string {
	return matchPatterns(compilePatterns(dictionary), description)
}

// CategorizeAll recomputes the category of every record, discarding any
// manual overrides on them
func (c *categorizer) CategorizeAll(records []*models.Transaction, dictionary *models.CategoryDictionary) models.CategorizationStats {
	patterns := compilePatterns(dictionary)
	stats := models.CategorizationStats{}

	for _, record := range records {
		if record == nil {
			continue
		}

		record.Category = matchPatterns(patterns, record.Description)
		record.Overridden = false

		stats.Processed++
		if record.Category == models.Uncategorized {
			stats.Uncategorized++
		} else {
			stats.Matched++
		}
	}

	return stats
}

// OverrideCategory manually sets a record's category. The category must
// exist in the dictionary.
func (c *categorizer) OverrideCategory(record *models.Transaction, category string, dictionary *models.CategoryDictionary) error {
	if record == nil {
		return ErrTransactionNil
	}

	if dictionary == nil || !dictionary.Has(category) {
		return &models.UnknownCategoryError{Name: category}
	}

	record.Category = category
	record.Overridden = true

	return nil
}

// normalizeForMatching lowercases and trims both sides of a keyword match
func normalizeForMatching(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
