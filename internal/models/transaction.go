package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus mirrors domain.TransactionStatus at the storage layer.
type TransactionStatus string

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

// Transaction is the persisted transaction header.
type Transaction struct {
	TransactionID     string            `db:"transaction_id"`
	TransactionNumber string            `db:"transaction_number"`
	TransactionDate   time.Time         `db:"transaction_date"`
	TransactionType   TransactionType   `db:"transaction_type"`
	Description       string            `db:"description"`
	ReferenceType     *string           `db:"reference_type"` // Nullable
	ReferenceID       *string           `db:"reference_id"`   // Nullable
	Status            TransactionStatus `db:"status"`
	IsReconciled      bool              `db:"is_reconciled"`
	ApprovedBy        *string           `db:"approved_by"`
	ApprovedAt        *time.Time        `db:"approved_at"`
	PostedAt          *time.Time        `db:"posted_at"`
	ReconciledBy      *string           `db:"reconciled_by"`
	ReconciledAt      *time.Time        `db:"reconciled_at"`
	AuditFields
}

// Entry is the persisted representation of a single transaction line.
type Entry struct {
	EntryID        string           `db:"entry_id"`
	TransactionID  string           `db:"transaction_id"`
	AccountID      string           `db:"account_id"`
	Debit          decimal.Decimal  `db:"debit"`
	Credit         decimal.Decimal  `db:"credit"`
	Description    string           `db:"description"`
	LineNo         int              `db:"line_no"`
	RunningBalance *decimal.Decimal `db:"running_balance"` // Set at posting time
	AuditFields
}
