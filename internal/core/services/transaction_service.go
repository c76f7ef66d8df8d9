package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mosaicsoft/bizbooks/internal/apperrors"
	"github.com/mosaicsoft/bizbooks/internal/core/domain"
	portsrepo "github.com/mosaicsoft/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/mosaicsoft/bizbooks/internal/core/ports/services"
	"github.com/mosaicsoft/bizbooks/internal/dto"
	"github.com/mosaicsoft/bizbooks/internal/middleware"
	"github.com/mosaicsoft/bizbooks/internal/utils/accounting"
)

// TransactionService drives transactions through their lifecycle:
// DRAFT/PENDING -> APPROVED -> POSTED, with REJECTED as the terminal
// pre-posting exit. Account balances change only at posting time.
type TransactionService struct {
	txnRepo      portsrepo.TransactionRepository
	accountSvc   portssvc.AccountSvcFacade
	numberingSvc portssvc.NumberingSvcFacade
}

func NewTransactionService(txnRepo portsrepo.TransactionRepository, accountSvc portssvc.AccountSvcFacade, numberingSvc portssvc.NumberingSvcFacade) *TransactionService {
	return &TransactionService{
		txnRepo:      txnRepo,
		accountSvc:   accountSvc,
		numberingSvc: numberingSvc,
	}
}

// CreateTransaction validates and persists a new transaction. The entries
// must balance within tolerance and reference existing active accounts.
// Balances are untouched until the transaction is posted.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, req.Type)
	}

	now := time.Now()
	transactionID := uuid.NewString()

	entries := make([]domain.Entry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = domain.Entry{
			EntryID:       uuid.NewString(),
			TransactionID: transactionID,
			AccountID:     e.AccountID,
			Debit:         e.Debit,
			Credit:        e.Credit,
			Description:   e.Description,
			LineNo:        i + 1,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}

	if err := s.validateEntriesAgainstAccounts(ctx, entries); err != nil {
		return nil, err
	}

	transactionNumber := req.TransactionNumber
	if transactionNumber == "" {
		generated, err := s.numberingSvc.NextTransactionNumber(ctx, req.Type)
		if err != nil {
			logger.Error("Failed to generate transaction number", slog.String("error", err.Error()))
			return nil, err
		}
		transactionNumber = generated
	}

	status := domain.StatusDraft
	if req.Status != nil {
		if *req.Status != domain.StatusDraft && *req.Status != domain.StatusPending {
			return nil, fmt.Errorf("%w: transactions can only be created as DRAFT or PENDING", apperrors.ErrValidation)
		}
		status = *req.Status
	}

	txn := domain.Transaction{
		TransactionID:     transactionID,
		TransactionNumber: transactionNumber,
		TransactionDate:   req.Date,
		TransactionType:   req.Type,
		Description:       req.Description,
		Status:            status,
		Entries:           entries,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.Reference != nil {
		refType := req.Reference.Type
		refID := req.Reference.ID
		txn.ReferenceType = &refType
		txn.ReferenceID = &refID
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn, entries); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to save transaction in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", transactionID),
		slog.String("transaction_number", transactionNumber),
		slog.String("status", string(status)),
	)
	return &txn, nil
}

// validateEntriesAgainstAccounts runs the structural and balance checks and
// verifies every referenced account exists and is active.
func (s *TransactionService) validateEntriesAgainstAccounts(ctx context.Context, entries []domain.Entry) error {
	if err := accounting.ValidateEntries(entries); err != nil {
		return err
	}
	if err := accounting.CheckBalanced(entries); err != nil {
		return err
	}

	accountIDs := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.AccountID]; ok {
			continue
		}
		seen[e.AccountID] = struct{}{}
		accountIDs = append(accountIDs, e.AccountID)
	}

	accounts, err := s.accountSvc.GetAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return err
	}
	for _, id := range accountIDs {
		account, ok := accounts[id]
		if !ok {
			return fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, id)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.Code)
		}
	}
	return nil
}

// GetTransactionByID retrieves a transaction with its entries.
func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction by ID in repository", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	entries, err := s.txnRepo.FindEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		logger.Error("Failed to find entries for transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to load transaction entries: %w", err)
	}
	txn.Entries = entries

	return txn, nil
}

// ListTransactions retrieves transaction headers, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter, limit int, offset int) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txns, err := s.txnRepo.ListTransactions(ctx, filter, limit, offset)
	if err != nil {
		logger.Error("Failed to list transactions from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// ApproveTransaction moves a DRAFT or PENDING transaction to APPROVED.
func (s *TransactionService) ApproveTransaction(ctx context.Context, transactionID string, actorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != domain.StatusDraft && txn.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: cannot approve transaction in status %s", apperrors.ErrInvalidState, txn.Status)
	}

	now := time.Now()
	if err := s.txnRepo.MarkApproved(ctx, transactionID, actorUserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			logger.Error("Failed to mark transaction approved", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	logger.Info("Transaction approved", slog.String("transaction_id", transactionID))
	return s.GetTransactionByID(ctx, transactionID)
}

// RejectTransaction moves a pre-posted transaction to REJECTED. REJECTED is
// terminal; a posted transaction can never be rejected.
func (s *TransactionService) RejectTransaction(ctx context.Context, transactionID string, actorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status == domain.StatusPosted || txn.Status == domain.StatusRejected {
		return nil, fmt.Errorf("%w: cannot reject transaction in status %s", apperrors.ErrInvalidState, txn.Status)
	}

	now := time.Now()
	if err := s.txnRepo.MarkRejected(ctx, transactionID, actorUserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			logger.Error("Failed to mark transaction rejected", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	logger.Info("Transaction rejected", slog.String("transaction_id", transactionID))
	return s.GetTransactionByID(ctx, transactionID)
}

// PostTransaction applies an APPROVED transaction to account balances. The
// entries are re-validated so a transaction that balanced at creation cannot
// post if accounts were deactivated in between. The repository applies the
// deltas, running balances and status flip atomically.
func (s *TransactionService) PostTransaction(ctx context.Context, transactionID string, actorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != domain.StatusApproved {
		return nil, fmt.Errorf("%w: cannot post transaction in status %s", apperrors.ErrInvalidState, txn.Status)
	}

	if err := s.validateEntriesAgainstAccounts(ctx, txn.Entries); err != nil {
		return nil, err
	}

	deltas := accounting.BalanceDeltas(txn.Entries)

	now := time.Now()
	if err := s.txnRepo.PostTransaction(ctx, transactionID, txn.Entries, deltas, actorUserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to post transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	logger.Info("Transaction posted",
		slog.String("transaction_id", transactionID),
		slog.String("transaction_number", txn.TransactionNumber),
	)
	return s.GetTransactionByID(ctx, transactionID)
}

// ReconcileTransaction flags a POSTED transaction as reconciled. Reconciling
// an already reconciled transaction is a no-op.
func (s *TransactionService) ReconcileTransaction(ctx context.Context, transactionID string, actorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Status != domain.StatusPosted {
		return nil, fmt.Errorf("%w: only posted transactions can be reconciled, status is %s", apperrors.ErrInvalidState, txn.Status)
	}
	if txn.IsReconciled {
		return s.GetTransactionByID(ctx, transactionID)
	}

	now := time.Now()
	if err := s.txnRepo.MarkReconciled(ctx, transactionID, actorUserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			logger.Error("Failed to mark transaction reconciled", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	logger.Info("Transaction reconciled", slog.String("transaction_id", transactionID))
	return s.GetTransactionByID(ctx, transactionID)
}
