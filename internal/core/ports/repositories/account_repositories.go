package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mosaicsoft/bizbooks/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves an account by its human-readable code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by ID. Missing IDs
	// are simply absent from the map; callers decide whether that is an error.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of active accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// ListChartOfAccounts retrieves all active accounts ordered by
	// (account_type, code) for chart-of-accounts rendering.
	ListChartOfAccounts(ctx context.Context) ([]domain.Account, error)

	// HasEntriesForAccount reports whether any transaction entry references
	// the account.
	HasEntriesForAccount(ctx context.Context, accountID string) (bool, error)

	// SumEntryDeltasAsOf reconstructs an account balance by summing
	// debit-minus-credit over entries of POSTED transactions dated at or
	// before asOf, on top of the account's opening balance.
	SumEntryDeltasAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's mutable details. Balances
	// and account type are never updated through this path.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountPostingSupport defines the operations the posting path uses while a
// database transaction is open.
type AccountPostingSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks their rows for
	// update. Fails with ErrNotFound if any requested account is missing.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// ApplyBalanceDeltasInTx adds each delta to the matching account's
	// current balance within the given transaction.
	ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error
}

// AccountRepository combines all account repository capabilities.
type AccountRepository interface {
	AccountReader
	AccountWriter
	AccountPostingSupport
}
