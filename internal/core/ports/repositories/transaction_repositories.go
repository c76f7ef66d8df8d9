package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mosaicsoft/bizbooks/internal/core/domain"
)

// ListTransactionsFilter narrows ListTransactions results.
type ListTransactionsFilter struct {
	Status          *domain.TransactionStatus
	TransactionType *domain.TransactionType
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction header by ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindEntriesByTransactionID retrieves all entries of a transaction in
	// line order.
	FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.Entry, error)

	// ListTransactions retrieves transaction headers, newest first.
	ListTransactions(ctx context.Context, filter ListTransactionsFilter, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriter defines the lifecycle mutations on transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction header and its entries
	// atomically. No account balance is touched.
	SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.Entry) error

	// MarkApproved stamps the approval fields and moves the transaction to
	// APPROVED, guarding in SQL that it is still DRAFT or PENDING.
	MarkApproved(ctx context.Context, transactionID string, approvedBy string, now time.Time) error

	// MarkRejected moves a pre-posted transaction to REJECTED.
	MarkRejected(ctx context.Context, transactionID string, rejectedBy string, now time.Time) error

	// MarkReconciled sets the reconciliation flag on a POSTED transaction.
	MarkReconciled(ctx context.Context, transactionID string, reconciledBy string, now time.Time) error

	// PostTransaction atomically applies the per-account balance deltas,
	// stores per-entry running balances, and flips the status to POSTED.
	// Either every effect applies or none does.
	PostTransaction(ctx context.Context, transactionID string, entries []domain.Entry, deltas map[string]decimal.Decimal, postedBy string, now time.Time) error
}

// TransactionRepository combines all transaction repository capabilities.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
