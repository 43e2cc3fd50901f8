package services

import (
	"sort"

	"ledger-categorizer/internal/models"

	"github.com/shopspring/decimal"
)

const summaryDecimalPlaces = 2

// AllCategories is the filter value that matches every record
const AllCategories = "All"

type aggregator struct{}

// NewAggregator creates a new AggregatorInterface instance
func NewAggregator() AggregatorInterface {
	return &aggregator{}
}

type categoryTotals struct {
	count int64
	total decimal.Decimal
}

func groupByCategory(records []*models.Transaction, include func(*models.Transaction) bool) map[string]*categoryTotals {
	groups := make(map[string]*categoryTotals)
	for _, record := range records {
		if record == nil || !include(record) {
			continue
		}

		group, exists := groups[record.Category]
		if !exists {
			group = &categoryTotals{total: decimal.Zero}
			groups[record.Category] = group
		}
		group.count++
		group.total = group.total.Add(record.Amount)
	}
	return groups
}

// SummarizeExpenses totals negative amounts per category as magnitudes,
// largest first. Ties are ordered by category name.
func (a *aggregator) SummarizeExpenses(records []*models.Transaction) []models.CategoryAmount {
	groups := groupByCategory(records, (*models.Transaction).IsExpense)

	expenses := make([]models.CategoryAmount, 0, len(groups))
	for category, group := range groups {
		expenses = append(expenses, models.CategoryAmount{
			Category: category,
			Amount:   group.total.Abs(),
		})
	}

	sort.Slice(expenses, func(i, j int) bool {
		if cmp := expenses[i].Amount.Cmp(expenses[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return expenses[i].Category < expenses[j].Category
	})

	return expenses
}

// SummarizeAll returns the signed total, count and average of every category
// present in the records, ordered by category name. Totals use banker's
// rounding to two decimal places.
func (a *aggregator) SummarizeAll(records []*models.Transaction) []models.CategorySummary {
	groups := groupByCategory(records, func(*models.Transaction) bool { return true })

	summary := make([]models.CategorySummary, 0, len(groups))
	for category, group := range groups {
		summary = append(summary, models.CategorySummary{
			Category:         category,
			TransactionCount: group.count,
			TotalAmount:      group.total.RoundBank(summaryDecimalPlaces),
			AverageAmount:    group.total.Div(decimal.NewFromInt(group.count)).RoundBank(summaryDecimalPlaces),
		})
	}

	sort.Slice(summary, func(i, j int) bool {
		return summary[i].Category < summary[j].Category
	})

	return summary
}

// TotalExpenses sums the negative category totals and reports the magnitude
func (a *aggregator) TotalExpenses(summary []models.CategorySummary) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range summary {
		if entry.TotalAmount.IsNegative() {
			total = total.Add(entry.TotalAmount)
		}
	}
	return total.Abs()
}

// FilterByCategory returns the records assigned to category. An empty
// category or "All" returns every record.
func (a *aggregator) FilterByCategory(records []*models.Transaction, category string) []*models.Transaction {
	if category == "" || category == AllCategories {
		filtered := make([]*models.Transaction, 0, len(records))
		return append(filtered, records...)
	}

	filtered := make([]*models.Transaction, 0)
	for _, record := range records {
		if record != nil && record.Category == category {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
