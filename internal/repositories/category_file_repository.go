package repositories

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"ledger-categorizer/internal/models"
)

const categoryFileIndent = "    "

type categoryFileRepository struct {
	path string
}

// NewCategoryFileRepository stores the dictionary as a pretty-printed JSON
// object at path
func NewCategoryFileRepository(path string) CategoryRepositoryInterface {
	return &categoryFileRepository{path: path}
}

func (r *categoryFileRepository) Source() string {
	return r.path
}

// Load reads the dictionary. A missing file is initialized with the default
// dictionary and persisted before returning.
func (r *categoryFileRepository) Load() (*models.CategoryDictionary, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		dictionary := models.DefaultCategoryDictionary()
		if err := r.Save(dictionary); err != nil {
			return nil, fmt.Errorf("failed to initialize category file: %w", err)
		}
		slog.Info("category file initialized", "path", r.path)
		return dictionary, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read category file: %w", err)
	}

	dictionary := models.NewCategoryDictionary()
	if err := json.Unmarshal(data, dictionary); err != nil {
		return nil, &models.StoreCorruptError{Source: r.path, Err: err}
	}

	if dictionary.EnsureUncategorized() {
		slog.Warn("category file lacked the fallback category, added it", "path", r.path)
	}

	return dictionary, nil
}

// Save writes the whole dictionary through a temp file and a rename so a
// crash never leaves a half-written document behind.
func (r *categoryFileRepository) Save(dictionary *models.CategoryDictionary) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", categoryFileIndent)
	if err := enc.Encode(dictionary); err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create category directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write categories: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync categories: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to replace category file: %w", err)
	}

	return nil
}
