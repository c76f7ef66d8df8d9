package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mosaicsoft/bizbooks/internal/core/domain"
)

// EntryRequest is one debit/credit line in a transaction request.
// Amounts must be non-negative; the validator enforces the aggregate
// balance invariant.
type EntryRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// ReferenceRequest tags the originating document for a transaction.
type ReferenceRequest struct {
	Type domain.ReferenceType `json:"type" binding:"required,oneof=INVOICE PURCHASE_ORDER POS_SALE MANUAL"`
	ID   string               `json:"id" binding:"required"`
}

// CreateTransactionRequest defines the data needed to create a transaction.
// Status may only be DRAFT or PENDING; everything later goes through the
// lifecycle endpoints.
type CreateTransactionRequest struct {
	TransactionNumber string                    `json:"transactionNumber"` // Optional; auto-generated when empty
	Date              time.Time                 `json:"date" binding:"required"`
	Type              domain.TransactionType    `json:"type" binding:"required,oneof=SALE PURCHASE PAYMENT RECEIPT EXPENSE INCOME TRANSFER ADJUSTMENT JOURNAL"`
	Description       string                    `json:"description" binding:"required"`
	Reference         *ReferenceRequest         `json:"reference"`
	Status            *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=DRAFT PENDING"`
	Entries           []EntryRequest            `json:"entries" binding:"required,min=2,dive"`
}

// EntryResponse defines the data returned for a transaction entry.
type EntryResponse struct {
	EntryID        string           `json:"entryID"`
	AccountID      string           `json:"accountID"`
	Debit          decimal.Decimal  `json:"debit"`
	Credit         decimal.Decimal  `json:"credit"`
	Description    string           `json:"description,omitempty"`
	LineNo         int              `json:"lineNo"`
	RunningBalance *decimal.Decimal `json:"runningBalance,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID     string                   `json:"transactionID"`
	TransactionNumber string                   `json:"transactionNumber"`
	Date              time.Time                `json:"date"`
	Type              domain.TransactionType   `json:"type"`
	Description       string                   `json:"description"`
	ReferenceType     *domain.ReferenceType    `json:"referenceType,omitempty"`
	ReferenceID       *string                  `json:"referenceID,omitempty"`
	Status            domain.TransactionStatus `json:"status"`
	IsReconciled      bool                     `json:"isReconciled"`
	TotalDebit        decimal.Decimal          `json:"totalDebit"`
	TotalCredit       decimal.Decimal          `json:"totalCredit"`
	ApprovedBy        *string                  `json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time               `json:"approvedAt,omitempty"`
	PostedAt          *time.Time               `json:"postedAt,omitempty"`
	ReconciledBy      *string                  `json:"reconciledBy,omitempty"`
	ReconciledAt      *time.Time               `json:"reconciledAt,omitempty"`
	Entries           []EntryResponse          `json:"entries,omitempty"`
	CreatedAt         time.Time                `json:"createdAt"`
	CreatedBy         string                   `json:"createdBy"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:        e.EntryID,
		AccountID:      e.AccountID,
		Debit:          e.Debit,
		Credit:         e.Credit,
		Description:    e.Description,
		LineNo:         e.LineNo,
		RunningBalance: e.RunningBalance,
	}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:     t.TransactionID,
		TransactionNumber: t.TransactionNumber,
		Date:              t.TransactionDate,
		Type:              t.TransactionType,
		Description:       t.Description,
		ReferenceType:     t.ReferenceType,
		ReferenceID:       t.ReferenceID,
		Status:            t.Status,
		IsReconciled:      t.IsReconciled,
		TotalDebit:        t.TotalDebit(),
		TotalCredit:       t.TotalCredit(),
		ApprovedBy:        t.ApprovedBy,
		ApprovedAt:        t.ApprovedAt,
		PostedAt:          t.PostedAt,
		ReconciledBy:      t.ReconciledBy,
		ReconciledAt:      t.ReconciledAt,
		CreatedAt:         t.CreatedAt,
		CreatedBy:         t.CreatedBy,
	}
	if len(t.Entries) > 0 {
		resp.Entries = make([]EntryResponse, len(t.Entries))
		for i := range t.Entries {
			resp.Entries[i] = ToEntryResponse(&t.Entries[i])
		}
	}
	return resp
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=DRAFT PENDING APPROVED REJECTED POSTED"`
	Type   string `form:"type" binding:"omitempty,oneof=SALE PURCHASE PAYMENT RECEIPT EXPENSE INCOME TRANSFER ADJUSTMENT JOURNAL"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// UnbalancedResponse is the machine-readable body returned when a
// transaction fails the balance check.
type UnbalancedResponse struct {
	Error       string          `json:"error"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Delta       decimal.Decimal `json:"delta"`
}
