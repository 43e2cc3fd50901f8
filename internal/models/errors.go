package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStoreCorrupt      = errors.New("category store is corrupt")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrEmptyCategoryName = errors.New("category name cannot be empty")
	ErrMalformedAmount   = errors.New("malformed amount")
	ErrMissingColumn     = errors.New("missing required column")
	ErrEmptyInput        = errors.New("input has no header row")
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrRowOutOfRange     = errors.New("transaction row out of range")
	ErrUnreadableInput   = errors.New("ledger input is unreadable")
	ErrPersistFailed     = errors.New("failed to persist categories")
)

// StoreCorruptError is returned when the persisted category document exists
// but is not a mapping of string to list of strings.
type StoreCorruptError struct {
	Source string
	Err    error
}

func (e *StoreCorruptError) Error() string {
	return fmt.Sprintf("category store %s is corrupt: %v", e.Source, e.Err)
}

func (e *StoreCorruptError) Unwrap() error { return e.Err }

func (e *StoreCorruptError) Is(target error) bool { return target == ErrStoreCorrupt }

type DuplicateCategoryError struct {
	Name string
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("category %q already exists", e.Name)
}

func (e *DuplicateCategoryError) Is(target error) bool { return target == ErrDuplicateCategory }

type UnknownCategoryError struct {
	Name string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("category %q does not exist", e.Name)
}

func (e *UnknownCategoryError) Is(target error) bool { return target == ErrUnknownCategory }

// MalformedAmountError aborts an ingestion. Row is the 1-based data row with
// the header and blank rows excluded; Line is the source line when known.
type MalformedAmountError struct {
	Row   int
	Line  int
	Value string
	Err   error
}

func (e *MalformedAmountError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("row %d (line %d): malformed amount %q", e.Row, e.Line, e.Value)
	}
	return fmt.Sprintf("row %d: malformed amount %q", e.Row, e.Value)
}

func (e *MalformedAmountError) Unwrap() error { return e.Err }

func (e *MalformedAmountError) Is(target error) bool { return target == ErrMalformedAmount }

type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Columns, ", "))
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrMissingColumn }
