package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column names a journal-entry workbook must carry in its header row
const (
	ColumnJENumber      = "JENumber"
	ColumnEffectiveDate = "EffectiveDate"
	ColumnEntryDate     = "EntryDate"
	ColumnDebit         = "Debit"
	ColumnCredit        = "Credit"
	ColumnAmount        = "Amount"
)

// RequiredColumns lists the header cells the analysis depends on, in report order
var RequiredColumns = []string{
	ColumnJENumber,
	ColumnEffectiveDate,
	ColumnEntryDate,
	ColumnDebit,
	ColumnCredit,
	ColumnAmount,
}

// JournalEntryRecord is one data row of the input table.
// Missing values are modelled explicitly: an empty JENumber, a nil date,
// or a NullDecimal with Valid set to false.
type JournalEntryRecord struct {
	JENumber      string              `json:"je_number"`
	EffectiveDate *time.Time          `json:"effective_date,omitempty"`
	EntryDate     *time.Time          `json:"entry_date,omitempty"`
	Debit         decimal.NullDecimal `json:"debit"`
	Credit        decimal.NullDecimal `json:"credit"`
	Amount        decimal.NullDecimal `json:"amount"`
}

// HasJENumber reports whether the record carries a journal-entry identifier
func (r JournalEntryRecord) HasJENumber() bool {
	return r.JENumber != ""
}
