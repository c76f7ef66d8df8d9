package domain

import "github.com/shopspring/decimal"

// Entry is one debit/credit line within a Transaction, tied to one Account.
// By convention exactly one of Debit/Credit is non-zero per line; the engine
// only enforces the aggregate balance invariant.
type Entry struct {
	EntryID        string           `json:"entryID"`       // Primary key (UUID)
	TransactionID  string           `json:"transactionID"` // FK -> Transaction
	AccountID      string           `json:"accountID"`     // FK -> Account
	Debit          decimal.Decimal  `json:"debit"`         // >= 0
	Credit         decimal.Decimal  `json:"credit"`        // >= 0
	Description    string           `json:"description"`
	LineNo         int              `json:"lineNo"` // Position within the transaction
	RunningBalance *decimal.Decimal `json:"runningBalance,omitempty"` // Account balance after posting this line
	AuditFields
}

// Delta returns the raw balance effect of this entry: debit - credit.
func (e Entry) Delta() decimal.Decimal {
	return e.Debit.Sub(e.Credit)
}
