package services

import (
	"testing"
	"time"

	"ledger-categorizer/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SampleLedgerGeneratorTestSuite struct {
	suite.Suite
	generator *sampleLedgerGenerator
	ingester  IngestServiceInterface
	now       time.Time
}

func TestSampleLedgerGeneratorSuite(t *testing.T) {
	suite.Run(t, new(SampleLedgerGeneratorTestSuite))
}

func (s *SampleLedgerGeneratorTestSuite) SetupTest() {
	s.now = time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)
	s.generator = NewSampleLedgerGenerator(42).(*sampleLedgerGenerator)
	s.generator.now = func() time.Time { return s.now }
	s.ingester = NewIngestService(DefaultIngestColumns())
}

func (s *SampleLedgerGeneratorTestSuite) TestMerchantPool_Valid() {
	categories := make(map[string]bool)
	for _, merchant := range s.generator.merchantPool {
		s.NotEmpty(merchant.Name)
		s.NotEmpty(merchant.Category)
		s.Less(merchant.MinAmount, merchant.MaxAmount, merchant.Name)
		categories[merchant.Category] = true
	}
	s.GreaterOrEqual(len(categories), 5)
}

func (s *SampleLedgerGeneratorTestSuite) TestGenerate_UsesConfiguredColumns() {
	columns := IngestColumns{Date: "When", Amount: "Value", Description: "Memo"}

	table := s.generator.Generate(3, columns)

	s.Equal([]string{"When", "Memo", "Value", "Reference"}, table.Header)
	s.Len(table.Rows, 3)
	for _, row := range table.Rows {
		s.Len(row, len(table.Header))
	}
}

func (s *SampleLedgerGeneratorTestSuite) TestGenerate_IsIngestible() {
	table := s.generator.Generate(200, s.ingester.Columns())

	records, err := s.ingester.Ingest(table)

	s.Require().NoError(err)
	s.Len(records, 200)

	start := s.now.Truncate(24*time.Hour).AddDate(0, 0, -sampleLedgerDays)
	expenses := 0
	for _, record := range records {
		s.Require().NotNil(record.Date, "row %d", record.Row)
		s.False(record.Date.Before(start))
		s.False(record.Date.After(s.now))
		s.False(record.Amount.IsZero())
		s.NotEmpty(record.Extra["Reference"])
		if record.IsExpense() {
			expenses++
		}
	}
	s.Greater(expenses, 100)
}

func (s *SampleLedgerGeneratorTestSuite) TestGenerate_SameSeedSameLedger() {
	other := NewSampleLedgerGenerator(42).(*sampleLedgerGenerator)
	other.now = s.generator.now

	s.Equal(s.generator.Generate(20, DefaultIngestColumns()), other.Generate(20, DefaultIngestColumns()))
}

func (s *SampleLedgerGeneratorTestSuite) TestGenerate_KnownMerchantsCategorize() {
	dictionary := models.DefaultCategoryDictionary()
	dictionary.Add("Groceries", "tesco", "sainsbury", "asda", "aldi", "m&s", "waitrose")
	dictionary.Add("Transport", "tfl", "uber", "trainline", "shell")

	records, err := s.ingester.Ingest(s.generator.Generate(100, s.ingester.Columns()))
	s.Require().NoError(err)

	stats := NewCategorizer().CategorizeAll(records, dictionary)
	s.Greater(stats.Matched, 0)
	s.Equal(100, stats.Matched+stats.Uncategorized)
}

func (s *SampleLedgerGeneratorTestSuite) TestFormatAmount() {
	testCases := []struct {
		input    string
		expected string
	}{
		{"0", "0.00"},
		{"-5.5", "-5.50"},
		{"999.99", "999.99"},
		{"1000", "1,000.00"},
		{"-1234.5", "-1,234.50"},
		{"1234567.891", "1,234,567.89"},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			s.Equal(tc.expected, formatAmount(decimal.RequireFromString(tc.input)))
		})
	}
}
