package dto

import (
	"ledger-categorizer/internal/models"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest represents a request to add a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,category_name"`
}

// AddKeywordRequest represents a request to attach a keyword to a category
type AddKeywordRequest struct {
	Keyword string `json:"keyword" validate:"required,keyword"`
}

// OverrideCategoryRequest manually assigns a category to one transaction
type OverrideCategoryRequest struct {
	Category string `json:"category" validate:"required,max=64"`
}

// RecategorizeRequest reruns categorization over the current records
type RecategorizeRequest struct {
	PreserveOverrides bool `json:"preserve_overrides"`
}

// SampleLedgerRequest asks for a generated ledger of Count rows
type SampleLedgerRequest struct {
	Count int `json:"count" validate:"required,min=1,max=5000"`
}

// UploadLedgerParams carries the optional query parameters of an upload.
// Format overrides detection from the file extension.
type UploadLedgerParams struct {
	Format string `query:"format" validate:"input_format"`
}

// ListTransactionsParams filters the current records
type ListTransactionsParams struct {
	Category string `query:"category" validate:"max=64"`
}

// CategoryResponse is one category with its keywords in matching order
type CategoryResponse struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// CategoryListResponse lists categories in dictionary order
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// KeywordResponse reports whether a keyword was appended
type KeywordResponse struct {
	Category string `json:"category"`
	Keyword  string `json:"keyword"`
	Added    bool   `json:"added"`
}

// TransactionListResponse lists categorized records
type TransactionListResponse struct {
	Transactions []*models.Transaction `json:"transactions"`
	Total        int                   `json:"total"`
	Category     string                `json:"category,omitempty"`
}

// IngestResponse reports the outcome of loading a ledger
type IngestResponse struct {
	Source        string `json:"source"`
	Records       int    `json:"records"`
	Matched       int    `json:"matched"`
	Uncategorized int    `json:"uncategorized"`
	UndatedRows   int    `json:"undated_rows"`
}

// RecategorizeResponse reports the outcome of a categorization pass
type RecategorizeResponse struct {
	PreserveOverrides bool `json:"preserve_overrides"`
	models.CategorizationStats
}

// ExpenseSliceResponse is one entry of the expense distribution
type ExpenseSliceResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Share    decimal.Decimal `json:"share"`
}

// SummaryResponse is the reporting bundle for the current records
type SummaryResponse struct {
	RecordCount   int                      `json:"record_count"`
	HasExpenses   bool                     `json:"has_expenses"`
	Expenses      []ExpenseSliceResponse   `json:"expenses"`
	Categories    []models.CategorySummary `json:"categories"`
	TotalExpenses decimal.Decimal          `json:"total_expenses"`
}

// NewCategoryListResponse flattens a dictionary into its ordered response form
func NewCategoryListResponse(dictionary *models.CategoryDictionary) CategoryListResponse {
	names := dictionary.Names()
	categories := make([]CategoryResponse, 0, len(names))
	for _, name := range names {
		keywords, _ := dictionary.Keywords(name)
		categories = append(categories, CategoryResponse{Name: name, Keywords: keywords})
	}
	return CategoryListResponse{Categories: categories, Total: len(categories)}
}

// NewIngestResponse wraps an ingestion result with the name of its source
func NewIngestResponse(source string, result *models.IngestResult) IngestResponse {
	return IngestResponse{
		Source:        source,
		Records:       result.Records,
		Matched:       result.Matched,
		Uncategorized: result.Uncategorized,
		UndatedRows:   result.UndatedRows,
	}
}

// NewSummaryResponse adds each expense category's share of total expenses,
// as a percentage rounded to one place
func NewSummaryResponse(summary *models.LedgerSummary) SummaryResponse {
	hundred := decimal.NewFromInt(100)
	expenses := make([]ExpenseSliceResponse, 0, len(summary.Expenses))
	for _, expense := range summary.Expenses {
		share := decimal.Zero
		if summary.TotalExpenses.IsPositive() {
			share = expense.Amount.Mul(hundred).Div(summary.TotalExpenses).Round(1)
		}
		expenses = append(expenses, ExpenseSliceResponse{
			Category: expense.Category,
			Amount:   expense.Amount,
			Share:    share,
		})
	}

	categories := summary.Categories
	if categories == nil {
		categories = []models.CategorySummary{}
	}

	return SummaryResponse{
		RecordCount:   summary.RecordCount,
		HasExpenses:   summary.HasExpenses,
		Expenses:      expenses,
		Categories:    categories,
		TotalExpenses: summary.TotalExpenses,
	}
}
