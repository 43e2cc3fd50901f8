package models

import "github.com/shopspring/decimal"

// CategorySummary contains aggregated transaction data by category
type CategorySummary struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
}

// CategoryAmount is one slice of the expense distribution. Amount is a
// non-negative magnitude.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// LedgerSummary bundles everything a presentation layer needs to report on
// the current working set
type LedgerSummary struct {
	RecordCount   int               `json:"record_count"`
	HasExpenses   bool              `json:"has_expenses"`
	Expenses      []CategoryAmount  `json:"expenses"`
	Categories    []CategorySummary `json:"categories"`
	TotalExpenses decimal.Decimal   `json:"total_expenses"`
}
