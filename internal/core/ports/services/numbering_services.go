package services

import (
	"context"
	"time"

	"github.com/mosaicsoft/bizbooks/internal/core/domain"
)

// NumberingSvcFacade produces unique, monotonically increasing,
// human-legible identifiers.
type NumberingSvcFacade interface {
	// NextAccountCode returns e.g. ASS0001 for the first asset account.
	NextAccountCode(ctx context.Context, accountType domain.AccountType) (string, error)

	// NextTransactionNumber returns e.g. SAL000001 for the first sale.
	NextTransactionNumber(ctx context.Context, txnType domain.TransactionType) (string, error)

	// NextDocumentNumber returns e.g. INV-202609-0001, scoped per prefix and
	// calendar month. Used by document-producing modules outside the ledger.
	NextDocumentNumber(ctx context.Context, prefix string, at time.Time) (string, error)
}
