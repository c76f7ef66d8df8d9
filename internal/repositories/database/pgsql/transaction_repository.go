package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mosaicsoft/bizbooks/internal/apperrors"
	"github.com/mosaicsoft/bizbooks/internal/core/domain"
	portsrepo "github.com/mosaicsoft/bizbooks/internal/core/ports/repositories"
	"github.com/mosaicsoft/bizbooks/internal/models"
	"github.com/mosaicsoft/bizbooks/internal/utils/mapping"
)

const transactionColumns = `transaction_id, transaction_number, transaction_date, transaction_type, description, reference_type, reference_id, status, is_reconciled, approved_by, approved_at, posted_at, reconciled_by, reconciled_at, created_at, created_by, last_updated_at, last_updated_by`

const entryColumns = `entry_id, transaction_id, account_id, debit, credit, description, line_no, running_balance, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountPostingSupport
}

// newPgxTransactionRepository creates a new repository for transaction data.
// The account posting support is needed because posting locks and mutates
// account rows inside the same database transaction.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountPostingSupport) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}, accountRepo: accountRepo}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// scanTransaction reads one header row in transactionColumns order.
func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.TransactionNumber,
		&m.TransactionDate,
		&m.TransactionType,
		&m.Description,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.Status,
		&m.IsReconciled,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.PostedAt,
		&m.ReconciledBy,
		&m.ReconciledAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveTransaction persists the header and its entries in one database
// transaction. Balances are not touched.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.Entry) error {
	modelTxn := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelTxn.TransactionID,
		modelTxn.TransactionNumber,
		modelTxn.TransactionDate,
		modelTxn.TransactionType,
		modelTxn.Description,
		modelTxn.ReferenceType,
		modelTxn.ReferenceID,
		modelTxn.Status,
		modelTxn.IsReconciled,
		modelTxn.ApprovedBy,
		modelTxn.ApprovedAt,
		modelTxn.PostedAt,
		modelTxn.ReconciledBy,
		modelTxn.ReconciledAt,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: transaction number %s already exists", apperrors.ErrConflict, modelTxn.TransactionNumber)
		}
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}

	entryQuery := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		modelEntry := mapping.ToModelEntry(e)
		batch.Queue(entryQuery,
			modelEntry.EntryID,
			modelEntry.TransactionID,
			modelEntry.AccountID,
			modelEntry.Debit,
			modelEntry.Credit,
			modelEntry.Description,
			modelEntry.LineNo,
			modelEntry.RunningBalance,
			modelEntry.CreatedAt,
			modelEntry.CreatedBy,
			modelEntry.LastUpdatedAt,
			modelEntry.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to save entry for transaction %s: %w", modelTxn.TransactionID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close entry batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction header by ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindEntriesByTransactionID retrieves all entries of a transaction in line
// order.
func (r *PgxTransactionRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE transaction_id = $1
		ORDER BY line_no;
	`

	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var m models.Entry
		err := rows.Scan(
			&m.EntryID,
			&m.TransactionID,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.Description,
			&m.LineNo,
			&m.RunningBalance,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	return mapping.ToDomainEntrySlice(entries), nil
}

// ListTransactions retrieves transaction headers, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter, limit int, offset int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, string(*filter.Status))
		argPos++
	}
	if filter.TransactionType != nil {
		query += fmt.Sprintf(" AND transaction_type = $%d", argPos)
		args = append(args, string(*filter.TransactionType))
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY transaction_date DESC, created_at DESC LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return txns, nil
}

// MarkApproved stamps approval and moves the transaction to APPROVED. The
// status guard lives in SQL so a concurrent lifecycle change loses cleanly.
func (r *PgxTransactionRepository) MarkApproved(ctx context.Context, transactionID string, approvedBy string, now time.Time) error {
	query := `
		UPDATE transactions
		SET status = 'APPROVED', approved_by = $2, approved_at = $3, last_updated_at = $3, last_updated_by = $2
		WHERE transaction_id = $1 AND status IN ('DRAFT', 'PENDING');
	`
	return r.guardedStatusUpdate(ctx, query, transactionID, approvedBy, now)
}

// MarkRejected moves a not-yet-posted transaction to REJECTED.
func (r *PgxTransactionRepository) MarkRejected(ctx context.Context, transactionID string, rejectedBy string, now time.Time) error {
	query := `
		UPDATE transactions
		SET status = 'REJECTED', last_updated_at = $3, last_updated_by = $2
		WHERE transaction_id = $1 AND status IN ('DRAFT', 'PENDING', 'APPROVED');
	`
	return r.guardedStatusUpdate(ctx, query, transactionID, rejectedBy, now)
}

// MarkReconciled sets the reconciliation flag on a POSTED transaction.
func (r *PgxTransactionRepository) MarkReconciled(ctx context.Context, transactionID string, reconciledBy string, now time.Time) error {
	query := `
		UPDATE transactions
		SET is_reconciled = TRUE, reconciled_by = $2, reconciled_at = $3, last_updated_at = $3, last_updated_by = $2
		WHERE transaction_id = $1 AND status = 'POSTED' AND is_reconciled = FALSE;
	`
	return r.guardedStatusUpdate(ctx, query, transactionID, reconciledBy, now)
}

// guardedStatusUpdate runs a status-guarded update and distinguishes a
// missing row from one in the wrong state.
func (r *PgxTransactionRepository) guardedStatusUpdate(ctx context.Context, query string, transactionID string, userID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx, query, transactionID, userID, now)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE transaction_id = $1);`, transactionID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check transaction %s: %w", transactionID, err)
		}
		if !exists {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return fmt.Errorf("%w: transaction %s is not in an eligible status", apperrors.ErrInvalidState, transactionID)
	}
	return nil
}

// PostTransaction applies an approved transaction to the ledger in one
// database transaction. It locks the header row and the affected account
// rows, enforces account-level posting rules, applies the balance deltas,
// stores per-entry running balances and flips the status to POSTED. A
// concurrent second post finds the status already changed and fails with
// ErrInvalidState before any mutation.
func (r *PgxTransactionRepository) PostTransaction(ctx context.Context, transactionID string, entries []domain.Entry, deltas map[string]decimal.Decimal, postedBy string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Lock the header and verify it is still APPROVED.
	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM transactions WHERE transaction_id = $1 FOR UPDATE;`, transactionID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return fmt.Errorf("failed to lock transaction %s: %w", transactionID, err)
	}
	if status != string(domain.StatusApproved) {
		return fmt.Errorf("%w: transaction %s is %s, not APPROVED", apperrors.ErrInvalidState, transactionID, status)
	}

	accountIDs := make([]string, 0, len(deltas))
	for accountID := range deltas {
		accountIDs = append(accountIDs, accountID)
	}

	accounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return err
	}

	// Enforce per-account posting rules against the locked state.
	for accountID, delta := range deltas {
		account := accounts[accountID]
		if !account.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.Code)
		}
		newBalance := account.CurrentBalance.Add(delta)
		if newBalance.IsNegative() && account.AccountType.NormalBalance() == domain.DebitNormal && !account.Settings.AllowNegativeBalance {
			return fmt.Errorf("%w: posting would drive account %s negative", apperrors.ErrValidation, account.Code)
		}
	}

	if err := r.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, deltas, postedBy, now); err != nil {
		return err
	}

	// Store running balances per entry, walking lines in order so multiple
	// entries against the same account chain correctly.
	running := make(map[string]decimal.Decimal, len(deltas))
	for accountID, account := range accounts {
		running[accountID] = account.CurrentBalance
	}
	entryQuery := `UPDATE entries SET running_balance = $2, last_updated_at = $3, last_updated_by = $4 WHERE entry_id = $1;`
	batch := &pgx.Batch{}
	for _, e := range entries {
		next := running[e.AccountID].Add(e.Delta())
		running[e.AccountID] = next
		batch.Queue(entryQuery, e.EntryID, next, now, postedBy)
	}

	br := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to store running balance: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close running balance batch: %w", err)
	}

	statusQuery := `
		UPDATE transactions
		SET status = 'POSTED', posted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $1;
	`
	if _, err := tx.Exec(ctx, statusQuery, transactionID, now, postedBy); err != nil {
		return fmt.Errorf("failed to mark transaction %s posted: %w", transactionID, err)
	}

	return r.Commit(ctx, tx)
}
