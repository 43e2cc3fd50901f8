package services

import (
	"errors"
	"testing"

	"ledger-categorizer/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CategorizerTestSuite struct {
	suite.Suite
	categorizer *categorizer
	dictionary  *models.CategoryDictionary
}

func TestCategorizerSuite(t *testing.T) {
	suite.Run(t, new(CategorizerTestSuite))
}

func (s *CategorizerTestSuite) SetupTest() {
	s.categorizer = NewCategorizer().(*categorizer)
	s.dictionary = models.DefaultCategoryDictionary()
	s.dictionary.Add("Groceries", "tesco", "lidl")
	s.dictionary.Add("Transport", "uber")
}

func (s *CategorizerTestSuite) newRecord(description string, amount float64) *models.Transaction {
	return models.NewTransaction(1, nil, description, decimal.NewFromFloat(amount))
}

// Keyword Matching Tests

func (s *CategorizerTestSuite) TestCategorize_KnownDescriptions() {
	testCases := []struct {
		description string
		expected    string
	}{
		{"TESCO STORE 442", "Groceries"},
		{"Lidl GB London", "Groceries"},
		{"  uber trip  ", "Transport"},
		{"UBER *EATS", "Transport"},
		{"SALARY", models.Uncategorized},
		{"", models.Uncategorized},
		{"   ", models.Uncategorized},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			s.Equal(tc.expected, s.categorizer.Categorize(tc.description, s.dictionary))
		})
	}
}

func (s *CategorizerTestSuite) TestCategorize_FirstMatchInStoreOrderWins() {
	dictionary := models.DefaultCategoryDictionary()
	dictionary.Add("Coffee", "starbucks")
	dictionary.Add("Food", "a", "b", "c", "bucks")

	s.Equal("Coffee", s.categorizer.Categorize("STARBUCKS LONDON", dictionary))

	reordered := models.DefaultCategoryDictionary()
	reordered.Add("Food", "bucks")
	reordered.Add("Coffee", "starbucks")

	s.Equal("Food", s.categorizer.Categorize("STARBUCKS LONDON", reordered))
}

func (s *CategorizerTestSuite) TestCategorize_KeywordCaseAndWhitespaceIgnored() {
	dictionary := models.DefaultCategoryDictionary()
	dictionary.Add("Bills", "  British GAS ")

	s.Equal("Bills", s.categorizer.Categorize("DD british gas services", dictionary))
}

func (s *CategorizerTestSuite) TestCategorize_UncategorizedKeywordsNeverMatch() {
	dictionary := models.NewCategoryDictionary()
	dictionary.Add(models.Uncategorized, "salary")
	dictionary.Add("Income", "salary")

	s.Equal("Income", s.categorizer.Categorize("SALARY ACME", dictionary))
}

func (s *CategorizerTestSuite) TestCategorize_BlankKeywordsNeverMatch() {
	dictionary := models.DefaultCategoryDictionary()
	dictionary.Add("Everything", "", "   ")
	dictionary.Add("Transport", "uber")

	s.Equal(models.Uncategorized, s.categorizer.Categorize("ACME LTD XYZZY", dictionary))
	s.Equal("Transport", s.categorizer.Categorize("UBER", dictionary))
}

func (s *CategorizerTestSuite) TestCategorize_NilOrEmptyDictionary() {
	s.Equal(models.Uncategorized, s.categorizer.Categorize("TESCO", nil))
	s.Equal(models.Uncategorized, s.categorizer.Categorize("TESCO", models.DefaultCategoryDictionary()))
}

// Batch Tests

func (s *CategorizerTestSuite) TestCategorizeAll_AssignsAndCounts() {
	records := []*models.Transaction{
		s.newRecord("TESCO STORE 442", -23.10),
		s.newRecord("UBER TRIP", -15.00),
		s.newRecord("SALARY", 2000.00),
	}

	stats := s.categorizer.CategorizeAll(records, s.dictionary)

	s.Equal("Groceries", records[0].Category)
	s.Equal("Transport", records[1].Category)
	s.Equal(models.Uncategorized, records[2].Category)
	s.Equal(models.CategorizationStats{Processed: 3, Matched: 2, Uncategorized: 1}, stats)
}

func (s *CategorizerTestSuite) TestCategorizeAll_IsIdempotent() {
	records := []*models.Transaction{
		s.newRecord("TESCO STORE 442", -23.10),
		s.newRecord(gofakeit.Sentence(4), -5.00),
	}

	s.categorizer.CategorizeAll(records, s.dictionary)
	first := []string{records[0].Category, records[1].Category}

	s.categorizer.CategorizeAll(records, s.dictionary)
	s.Equal(first, []string{records[0].Category, records[1].Category})
}

func (s *CategorizerTestSuite) TestCategorizeAll_ClearsOverrides() {
	record := s.newRecord("TESCO", -5)
	s.NoError(s.categorizer.OverrideCategory(record, "Transport", s.dictionary))
	s.True(record.Overridden)

	s.categorizer.CategorizeAll([]*models.Transaction{record}, s.dictionary)

	s.Equal("Groceries", record.Category)
	s.False(record.Overridden)
}

func (s *CategorizerTestSuite) TestCategorizeAll_SkipsNilRecords() {
	stats := s.categorizer.CategorizeAll([]*models.Transaction{nil, s.newRecord("UBER", -1)}, s.dictionary)
	s.Equal(1, stats.Processed)
}

// Manual Override Tests

func (s *CategorizerTestSuite) TestOverrideCategory_Success() {
	record := s.newRecord("SALARY", 2000)

	err := s.categorizer.OverrideCategory(record, "Transport", s.dictionary)

	s.NoError(err)
	s.Equal("Transport", record.Category)
	s.True(record.Overridden)
}

func (s *CategorizerTestSuite) TestOverrideCategory_UnknownCategory() {
	record := s.newRecord("SALARY", 2000)

	err := s.categorizer.OverrideCategory(record, "Income", s.dictionary)

	s.True(errors.Is(err, models.ErrUnknownCategory))
	s.Equal(models.Uncategorized, record.Category)
	s.False(record.Overridden)
}

func (s *CategorizerTestSuite) TestOverrideCategory_NilTransaction() {
	s.ErrorIs(s.categorizer.OverrideCategory(nil, "Transport", s.dictionary), ErrTransactionNil)
}
