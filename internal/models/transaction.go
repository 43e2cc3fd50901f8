package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one normalized ledger row. Negative amounts are expenses,
// positive amounts are income. Row is the position in the working set; Line
// is the line of the uploaded file, 0 for generated ledgers.
type Transaction struct {
	Row         int               `json:"row"`
	Line        int               `json:"line,omitempty"`
	Date        *time.Time        `json:"date"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	Category    string            `json:"category"`
	Overridden  bool              `json:"overridden"`
	Extra       map[string]string `json:"extra,omitempty"`
}

// DateLayout is the calendar-date form of Transaction.Date in JSON
const DateLayout = "2006-01-02"

// NewTransaction creates an uncategorized transaction
func NewTransaction(row int, date *time.Time, description string, amount decimal.Decimal) *Transaction {
	return &Transaction{
		Row:         row,
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    Uncategorized,
	}
}

// IsExpense reports whether the transaction is an outflow
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// Clone returns a copy that shares nothing mutable with the receiver
func (t *Transaction) Clone() *Transaction {
	c := *t
	if t.Date != nil {
		d := *t.Date
		c.Date = &d
	}
	if t.Extra != nil {
		c.Extra = make(map[string]string, len(t.Extra))
		for k, v := range t.Extra {
			c.Extra[k] = v
		}
	}
	return &c
}

type transactionJSON struct {
	Row         int               `json:"row"`
	Line        int               `json:"line,omitempty"`
	Date        *string           `json:"date"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	Category    string            `json:"category"`
	Overridden  bool              `json:"overridden"`
	Extra       map[string]string `json:"extra,omitempty"`
}

// MarshalJSON writes the date as a calendar date, or null when unknown
func (t Transaction) MarshalJSON() ([]byte, error) {
	out := transactionJSON{
		Row:         t.Row,
		Line:        t.Line,
		Description: t.Description,
		Amount:      t.Amount,
		Category:    t.Category,
		Overridden:  t.Overridden,
		Extra:       t.Extra,
	}
	if t.Date != nil {
		formatted := t.Date.Format(DateLayout)
		out.Date = &formatted
	}
	return json.Marshal(out)
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var in transactionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*t = Transaction{
		Row:         in.Row,
		Line:        in.Line,
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
		Overridden:  in.Overridden,
		Extra:       in.Extra,
	}
	if in.Date != nil {
		parsed, err := time.Parse(DateLayout, *in.Date)
		if err != nil {
			return fmt.Errorf("transaction date: %w", err)
		}
		t.Date = &parsed
	}
	return nil
}
