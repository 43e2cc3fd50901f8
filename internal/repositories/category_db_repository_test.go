package repositories

import (
	"testing"

	"ledger-categorizer/internal/database"
	"ledger-categorizer/internal/models"

	"github.com/stretchr/testify/suite"
)

type CategoryDBRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
}

func (s *CategoryDBRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryDBRepository(s.db.DB)
}

func TestCategoryDBRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryDBRepositorySuite))
}

func (s *CategoryDBRepositorySuite) TestLoad_EmptyTablesSeedDefault() {
	dictionary, err := s.repo.Load()
	s.NoError(err)
	s.Equal([]string{models.Uncategorized}, dictionary.Names())

	var count int64
	s.NoError(s.db.Model(&models.CategoryRecord{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *CategoryDBRepositorySuite) TestSaveThenLoad_PreservesOrder() {
	dictionary := models.DefaultCategoryDictionary()
	dictionary.Add("Zeta", "z2", "z1")
	dictionary.Add("Alpha", "a")
	dictionary.Add("Middle")

	s.NoError(s.repo.Save(dictionary))

	loaded, err := s.repo.Load()
	s.NoError(err)
	s.Equal([]string{models.Uncategorized, "Zeta", "Alpha", "Middle"}, loaded.Names())

	kws, _ := loaded.Keywords("Zeta")
	s.Equal([]string{"z2", "z1"}, kws)
	kws, _ = loaded.Keywords("Middle")
	s.Empty(kws)
}

func (s *CategoryDBRepositorySuite) TestSave_FullReplace() {
	first := models.DefaultCategoryDictionary()
	first.Add("Old", "gone")
	s.NoError(s.repo.Save(first))

	second := models.DefaultCategoryDictionary()
	second.Add("New", "fresh")
	s.NoError(s.repo.Save(second))

	loaded, err := s.repo.Load()
	s.NoError(err)
	s.Equal([]string{models.Uncategorized, "New"}, loaded.Names())

	var keywordCount int64
	s.NoError(s.db.Model(&models.CategoryKeywordRecord{}).Count(&keywordCount).Error)
	s.Equal(int64(1), keywordCount)
}

func (s *CategoryDBRepositorySuite) TestLoad_InsertsMissingUncategorized() {
	dictionary := models.NewCategoryDictionary()
	dictionary.Add("Food", "tesco")
	s.NoError(s.repo.Save(dictionary))

	loaded, err := s.repo.Load()
	s.NoError(err)
	s.Equal([]string{models.Uncategorized, "Food"}, loaded.Names())
}

func (s *CategoryDBRepositorySuite) TestSource() {
	s.Equal("database:sqlite", s.repo.Source())
}
