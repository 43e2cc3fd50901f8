package services

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"ledger-categorizer/internal/models"
)

var ErrInvalidSampleSize = errors.New("sample size must be positive")

type ledgerSession struct {
	mu          sync.RWMutex
	store       CategoryStoreInterface
	ingester    IngestServiceInterface
	categorizer CategorizerInterface
	aggregator  AggregatorInterface
	generator   SampleLedgerGeneratorInterface
	metrics     MetricsRecorderInterface
	records     []*models.Transaction
}

// NewLedgerSession wires the core components into one shared working set
func NewLedgerSession(
	store CategoryStoreInterface,
	ingester IngestServiceInterface,
	categorizer CategorizerInterface,
	aggregator AggregatorInterface,
	generator SampleLedgerGeneratorInterface,
	metrics MetricsRecorderInterface,
) LedgerSessionInterface {
	return &ledgerSession{
		store:       store,
		ingester:    ingester,
		categorizer: categorizer,
		aggregator:  aggregator,
		generator:   generator,
		metrics:     metrics,
		records:     make([]*models.Transaction, 0),
	}
}

func (s *ledgerSession) Categories() *models.CategoryDictionary {
	return s.store.Snapshot()
}

// AddCategory adds a category. Existing records are not recategorized.
func (s *ledgerSession) AddCategory(name string) error {
	return s.store.AddCategory(name)
}

// AddKeyword adds a keyword. Existing records are not recategorized.
func (s *ledgerSession) AddKeyword(category, keyword string) (bool, error) {
	return s.store.AddKeyword(category, keyword)
}

// Ingest reads, normalizes and categorizes a new ledger. The previous record
// set is kept if any step fails.
func (s *ledgerSession) Ingest(r io.Reader, format InputFormat) (*models.IngestResult, error) {
	start := time.Now()

	table, err := s.ingester.ReadTable(r, format)
	if err != nil {
		s.recordIngestion("failed", start)
		slog.Warn("Failed to read ledger", "format", format, "error", err)
		return nil, err
	}

	return s.load(table, start)
}

// LoadSample replaces the working set with a generated ledger
func (s *ledgerSession) LoadSample(count int) (*models.IngestResult, error) {
	if count <= 0 {
		return nil, ErrInvalidSampleSize
	}

	start := time.Now()
	table := s.generator.Generate(count, s.ingester.Columns())
	return s.load(table, start)
}

func (s *ledgerSession) load(table *LedgerTable, start time.Time) (*models.IngestResult, error) {
	records, err := s.ingester.Ingest(table)
	if err != nil {
		s.recordIngestion("failed", start)
		slog.Warn("Failed to ingest ledger", "error", err)
		return nil, err
	}

	stats := s.categorizer.CategorizeAll(records, s.store.Snapshot())

	undated := 0
	for _, record := range records {
		if record.Date == nil {
			undated++
		}
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	s.recordIngestion("success", start)
	s.recordWorkingSet(stats)
	slog.Info("Ledger ingested",
		"records", len(records),
		"matched", stats.Matched,
		"uncategorized", stats.Uncategorized,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &models.IngestResult{
		Records:       len(records),
		Matched:       stats.Matched,
		Uncategorized: stats.Uncategorized,
		UndatedRows:   undated,
	}, nil
}

// Records returns copies of the current records, optionally filtered by
// category
func (s *ledgerSession) Records(category string) []*models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.aggregator.FilterByCategory(s.records, category)
	copies := make([]*models.Transaction, len(filtered))
	for i, record := range filtered {
		copies[i] = record.Clone()
	}
	return copies
}

// OverrideCategory manually assigns a category to the record at row
func (s *ledgerSession) OverrideCategory(row int, category string) (*models.Transaction, error) {
	dictionary := s.store.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	if row < 1 || row > len(s.records) {
		return nil, models.ErrRowOutOfRange
	}

	record := s.records[row-1]
	previous := record.Category
	if err := s.categorizer.OverrideCategory(record, category, dictionary); err != nil {
		return nil, err
	}

	slog.Info("Category overridden", "row", row, "from", previous, "to", category)
	return record.Clone(), nil
}

// Recategorize reruns keyword matching against the current dictionary. With
// preserveOverrides, manually assigned records keep their category.
func (s *ledgerSession) Recategorize(preserveOverrides bool) models.CategorizationStats {
	dictionary := s.store.Snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	targets := s.records
	preserved := 0
	if preserveOverrides {
		targets = make([]*models.Transaction, 0, len(s.records))
		for _, record := range s.records {
			if record.Overridden {
				preserved++
				continue
			}
			targets = append(targets, record)
		}
	}

	stats := s.categorizer.CategorizeAll(targets, dictionary)
	stats.Preserved = preserved

	mode := "full"
	if preserveOverrides {
		mode = "preserve_overrides"
	}
	s.metrics.IncrementCounter("recategorization", map[string]string{"mode": mode})
	s.recordWorkingSet(stats)

	return stats
}

// Summary aggregates the current records
func (s *ledgerSession) Summary() *models.LedgerSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	expenses := s.aggregator.SummarizeExpenses(s.records)
	all := s.aggregator.SummarizeAll(s.records)

	return &models.LedgerSummary{
		RecordCount:   len(s.records),
		HasExpenses:   len(expenses) > 0,
		Expenses:      expenses,
		Categories:    all,
		TotalExpenses: s.aggregator.TotalExpenses(all),
	}
}

func (s *ledgerSession) recordIngestion(status string, start time.Time) {
	s.metrics.IncrementCounter("ingestion", map[string]string{"status": status})
	s.metrics.RecordProcessingTime("ingestion", time.Since(start))
}

func (s *ledgerSession) recordWorkingSet(stats models.CategorizationStats) {
	s.metrics.RecordGauge("categorization", float64(stats.Matched), map[string]string{"outcome": "matched"})
	s.metrics.RecordGauge("categorization", float64(stats.Uncategorized), map[string]string{"outcome": "uncategorized"})
}
