package services

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

const (
	sampleLedgerDays   = 90
	incomeShare        = 0.08
	unknownMerchantPct = 0.10
	sampleDateLayout   = "02/01/2006"
)

// MerchantInfo describes a merchant the sample generator can draw from
type MerchantInfo struct {
	Name      string
	Category  string
	MinAmount float64
	MaxAmount float64
}

type sampleLedgerGenerator struct {
	merchantPool []MerchantInfo
	faker        *gofakeit.Faker
	now          func() time.Time
}

// NewSampleLedgerGenerator creates a generator. A zero seed produces a
// different ledger on every call.
func NewSampleLedgerGenerator(seed uint64) SampleLedgerGeneratorInterface {
	return &sampleLedgerGenerator{
		merchantPool: initializeMerchantPool(),
		faker:        gofakeit.New(int64(seed)),
		now:          time.Now,
	}
}

func initializeMerchantPool() []MerchantInfo {
	return []MerchantInfo{
		// Groceries
		{"TESCO STORES 2231", "Groceries", 4, 120},
		{"SAINSBURYS S/MKTS", "Groceries", 6, 140},
		{"ASDA SUPERSTORE", "Groceries", 8, 160},
		{"ALDI 84 LONDON", "Groceries", 5, 90},
		{"M&S SIMPLY FOOD", "Groceries", 3, 45},
		{"WAITROSE 512", "Groceries", 10, 110},

		// Eating out
		{"PRET A MANGER", "Eating Out", 3, 15},
		{"NANDOS CROYDON", "Eating Out", 12, 60},
		{"DELIVEROO.CO.UK", "Eating Out", 14, 45},
		{"COSTA COFFEE", "Eating Out", 2, 9},

		// Transport
		{"TFL TRAVEL CHARGE", "Transport", 2, 12},
		{"UBER *TRIP", "Transport", 6, 40},
		{"TRAINLINE.COM", "Transport", 12, 180},
		{"SHELL PETROL", "Transport", 30, 95},

		// Bills
		{"BRITISH GAS", "Bills", 45, 160},
		{"THAMES WATER", "Bills", 25, 60},
		{"VIRGIN MEDIA", "Bills", 30, 75},
		{"COUNCIL TAX DD", "Bills", 110, 220},

		// Entertainment
		{"NETFLIX.COM", "Entertainment", 5, 18},
		{"SPOTIFY UK", "Entertainment", 10, 17},
		{"ODEON CINEMAS", "Entertainment", 8, 35},

		// Shopping
		{"AMAZON.CO.UK", "Shopping", 5, 250},
		{"ARGOS LTD", "Shopping", 8, 300},
		{"JOHN LEWIS", "Shopping", 20, 1500},
	}
}

// Generate builds a raw ledger in the column layout the ingester expects.
// Amounts are formatted with thousands separators and dates are day-first,
// like a bank export.
func (g *sampleLedgerGenerator) Generate(count int, columns IngestColumns) *LedgerTable {
	table := &LedgerTable{
		Format: FormatCSV,
		Header: []string{columns.Date, columns.Description, columns.Amount, "Reference"},
		Rows:   make([][]string, 0, count),
	}

	end := g.now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -sampleLedgerDays)

	for i := 0; i < count; i++ {
		description, amount := g.generateEntry()
		date := g.faker.DateRange(start, end)

		table.Rows = append(table.Rows, []string{
			date.Format(sampleDateLayout),
			description,
			formatAmount(amount),
			g.faker.Numerify("REF########"),
		})
	}

	return table
}

func (g *sampleLedgerGenerator) generateEntry() (string, decimal.Decimal) {
	roll := g.faker.Float64()

	if roll < incomeShare {
		return "SALARY " + strings.ToUpper(g.faker.Company()), decimal.NewFromFloat(g.faker.Price(1800, 4200)).Round(2)
	}
	if roll < incomeShare+unknownMerchantPct {
		return strings.ToUpper(g.faker.Company()), decimal.NewFromFloat(g.faker.Price(5, 200)).Round(2).Neg()
	}

	merchant := g.merchantPool[g.faker.Number(0, len(g.merchantPool)-1)]
	return merchant.Name, decimal.NewFromFloat(g.faker.Price(merchant.MinAmount, merchant.MaxAmount)).Round(2).Neg()
}

// formatAmount renders a two-place amount with comma thousands separators
func formatAmount(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(fraction)
	return b.String()
}
