package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the business event behind a transaction.
type TransactionType string

const (
	Sale       TransactionType = "SALE"
	Purchase   TransactionType = "PURCHASE"
	Payment    TransactionType = "PAYMENT"
	Receipt    TransactionType = "RECEIPT"
	ExpenseTxn TransactionType = "EXPENSE"
	IncomeTxn  TransactionType = "INCOME"
	Transfer   TransactionType = "TRANSFER"
	Adjustment TransactionType = "ADJUSTMENT"
	Journal    TransactionType = "JOURNAL"
)

// IsValid reports whether the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	switch t {
	case Sale, Purchase, Payment, Receipt, ExpenseTxn, IncomeTxn, Transfer, Adjustment, Journal:
		return true
	}
	return false
}

// TransactionStatus is the lifecycle state of a transaction.
//
// DRAFT/PENDING -> APPROVED -> POSTED, with REJECTED as a terminal state
// reachable from any pre-posted status. Posted transactions are immutable
// apart from the reconciliation flag.
type TransactionStatus string

const (
	StatusDraft    TransactionStatus = "DRAFT"
	StatusPending  TransactionStatus = "PENDING"
	StatusApproved TransactionStatus = "APPROVED"
	StatusRejected TransactionStatus = "REJECTED"
	StatusPosted   TransactionStatus = "POSTED"
)

// ReferenceType tags the originating document a transaction points back to.
type ReferenceType string

const (
	RefInvoice       ReferenceType = "INVOICE"
	RefPurchaseOrder ReferenceType = "PURCHASE_ORDER"
	RefPOSSale       ReferenceType = "POS_SALE"
	RefManual        ReferenceType = "MANUAL"
)

// Transaction is a balanced set of ledger entries plus lifecycle metadata.
type Transaction struct {
	TransactionID     string            `json:"transactionID"`     // Primary key (UUID)
	TransactionNumber string            `json:"transactionNumber"` // Human-readable, e.g. SAL000001; immutable once set
	TransactionDate   time.Time         `json:"transactionDate"`
	TransactionType   TransactionType   `json:"transactionType"`
	Description       string            `json:"description"`
	ReferenceType     *ReferenceType    `json:"referenceType,omitempty"` // Tagged originating document, if any
	ReferenceID       *string           `json:"referenceID,omitempty"`
	Status            TransactionStatus `json:"status"`
	IsReconciled      bool              `json:"isReconciled"`
	ApprovedBy        *string           `json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time        `json:"approvedAt,omitempty"`
	PostedAt          *time.Time        `json:"postedAt,omitempty"`
	ReconciledBy      *string           `json:"reconciledBy,omitempty"`
	ReconciledAt      *time.Time        `json:"reconciledAt,omitempty"`
	Entries           []Entry           `json:"entries,omitempty"`
	AuditFields
}

// TotalDebit sums the debit side of all entries.
func (t *Transaction) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Entries {
		total = total.Add(e.Debit)
	}
	return total
}

// TotalCredit sums the credit side of all entries.
func (t *Transaction) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, e := range t.Entries {
		total = total.Add(e.Credit)
	}
	return total
}

// IsPrePosted reports whether the transaction is still editable
// (draft or pending).
func (t *Transaction) IsPrePosted() bool {
	return t.Status == StatusDraft || t.Status == StatusPending
}
