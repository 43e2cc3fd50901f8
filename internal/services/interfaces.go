package services

import (
	"io"
	"time"

	"ledger-categorizer/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryStoreInterface owns the in-memory category dictionary and keeps it
// in sync with its repository. Every mutation is persisted before it becomes
// visible.
type CategoryStoreInterface interface {
	Load() error
	Save() error
	Snapshot() *models.CategoryDictionary
	AddCategory(name string) error
	AddKeyword(category, keyword string) (bool, error)
}

// IngestServiceInterface turns raw tabular input into transaction records
type IngestServiceInterface interface {
	ReadTable(r io.Reader, format InputFormat) (*LedgerTable, error)
	Ingest(table *LedgerTable) ([]*models.Transaction, error)
	Columns() IngestColumns
}

// CategorizerInterface assigns categories from keyword lists
type CategorizerInterface interface {
	Categorize(description string, dictionary *models.CategoryDictionary) string
	CategorizeAll(records []*models.Transaction, dictionary *models.CategoryDictionary) models.CategorizationStats
	OverrideCategory(record *models.Transaction, category string, dictionary *models.CategoryDictionary) error
}

// AggregatorInterface computes per-category and total summaries
type AggregatorInterface interface {
	SummarizeExpenses(records []*models.Transaction) []models.CategoryAmount
	SummarizeAll(records []*models.Transaction) []models.CategorySummary
	TotalExpenses(summary []models.CategorySummary) decimal.Decimal
	FilterByCategory(records []*models.Transaction, category string) []*models.Transaction
}

// LedgerSessionInterface is the application state shared by the HTTP handlers:
// the category store plus the current working set of transactions
type LedgerSessionInterface interface {
	Categories() *models.CategoryDictionary
	AddCategory(name string) error
	AddKeyword(category, keyword string) (bool, error)
	Ingest(r io.Reader, format InputFormat) (*models.IngestResult, error)
	LoadSample(count int) (*models.IngestResult, error)
	Records(category string) []*models.Transaction
	OverrideCategory(row int, category string) (*models.Transaction, error)
	Recategorize(preserveOverrides bool) models.CategorizationStats
	Summary() *models.LedgerSummary
}

// SampleLedgerGeneratorInterface produces realistic raw ledgers for demos
type SampleLedgerGeneratorInterface interface {
	Generate(count int, columns IngestColumns) *LedgerTable
}

// MetricsRecorderInterface defines the interface for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
