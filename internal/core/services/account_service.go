package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mosaicsoft/bizbooks/internal/apperrors"
	"github.com/mosaicsoft/bizbooks/internal/core/domain"
	portsrepo "github.com/mosaicsoft/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/mosaicsoft/bizbooks/internal/core/ports/services"
	"github.com/mosaicsoft/bizbooks/internal/dto"
	"github.com/mosaicsoft/bizbooks/internal/middleware"
)

// AccountService manages the chart of accounts.
type AccountService struct {
	accountRepo  portsrepo.AccountRepository
	numberingSvc portssvc.NumberingSvcFacade
}

func NewAccountService(repo portsrepo.AccountRepository, numberingSvc portssvc.NumberingSvcFacade) *AccountService {
	return &AccountService{accountRepo: repo, numberingSvc: numberingSvc}
}

// CreateAccount creates a new account. When no code is supplied one is
// generated from the account type sequence.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, req.AccountType)
	}

	code := req.Code
	if code == "" {
		generated, err := s.numberingSvc.NextAccountCode(ctx, req.AccountType)
		if err != nil {
			logger.Error("Failed to generate account code", slog.String("error", err.Error()))
			return nil, err
		}
		code = generated
	}

	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, *req.ParentAccountID)
			}
			return nil, err
		}
		if parent.AccountType != req.AccountType {
			return nil, fmt.Errorf("%w: parent account type %s does not match %s", apperrors.ErrValidation, parent.AccountType, req.AccountType)
		}
		parentID = parent.AccountID
	}

	openingBalance := decimal.Zero
	if req.OpeningBalance != nil {
		openingBalance = *req.OpeningBalance
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            code,
		Name:            req.Name,
		AccountType:     req.AccountType,
		Category:        req.Category,
		ParentAccountID: parentID,
		Description:     req.Description,
		OpeningBalance:  openingBalance,
		CurrentBalance:  openingBalance,
		IsActive:        true,
		IsSystemAccount: req.IsSystemAccount,
		Settings: domain.AccountSettings{
			AllowNegativeBalance: req.AllowNegativeBalance,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		}
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves a single account.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountByCode retrieves a single account by its human-readable code.
// Originating systems hold codes, not surrogate IDs.
func (s *AccountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by code in repository", slog.String("error", err.Error()), slog.String("code", code))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsByIDs retrieves multiple accounts keyed by ID.
func (s *AccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		logger.Error("Failed to find accounts by IDs in repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves a paginated list of active accounts.
func (s *AccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()), slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// GetChartOfAccounts returns all active accounts ordered by type then code,
// with parent details resolved for display.
func (s *AccountService) GetChartOfAccounts(ctx context.Context) ([]dto.ChartAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	accounts, err := s.accountRepo.ListChartOfAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list chart of accounts from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list chart of accounts: %w", err)
	}

	byID := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		byID[acc.AccountID] = acc
	}

	chart := make([]dto.ChartAccount, 0, len(accounts))
	for i := range accounts {
		acc := &accounts[i]
		row := dto.ChartAccount{
			AccountID:      acc.AccountID,
			Code:           acc.Code,
			Name:           acc.Name,
			AccountType:    acc.AccountType,
			Category:       acc.Category,
			CurrentBalance: acc.CurrentBalance,
			DisplayBalance: acc.DisplayBalance(),
		}
		if acc.ParentAccountID != "" {
			if parent, ok := byID[acc.ParentAccountID]; ok {
				row.ParentCode = parent.Code
				row.ParentName = parent.Name
			}
		}
		chart = append(chart, row)
	}

	return chart, nil
}

// GetBalanceAsOf reconstructs the account balance at a point in time from the
// opening balance plus posted entry deltas dated at or before asOf.
func (s *AccountService) GetBalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	sum, err := s.accountRepo.SumEntryDeltasAsOf(ctx, accountID, asOf)
	if err != nil {
		logger.Error("Failed to sum entry deltas", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return decimal.Zero, fmt.Errorf("failed to compute balance as of %s: %w", asOf.Format(time.RFC3339), err)
	}

	return account.OpeningBalance.Add(sum), nil
}

// UpdateAccount updates mutable account details. Changing the parent is
// checked against the ancestor chain to keep the hierarchy acyclic.
func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Category != nil {
		account.Category = *req.Category
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	if req.ParentAccountID != nil {
		newParentID := *req.ParentAccountID
		if newParentID == accountID {
			return nil, fmt.Errorf("%w: account cannot be its own parent", apperrors.ErrValidation)
		}
		if newParentID != "" {
			parent, err := s.accountRepo.FindAccountByID(ctx, newParentID)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, newParentID)
				}
				return nil, err
			}
			if parent.AccountType != account.AccountType {
				return nil, fmt.Errorf("%w: parent account type %s does not match %s", apperrors.ErrValidation, parent.AccountType, account.AccountType)
			}
			if err := s.ensureNotDescendant(ctx, accountID, parent); err != nil {
				return nil, err
			}
		}
		account.ParentAccountID = newParentID
	}

	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return account, nil
}

// ensureNotDescendant walks the ancestor chain of candidate and fails if it
// passes through accountID, which would create a cycle.
func (s *AccountService) ensureNotDescendant(ctx context.Context, accountID string, candidate *domain.Account) error {
	current := candidate
	for current.ParentAccountID != "" {
		if current.ParentAccountID == accountID {
			return fmt.Errorf("%w: parent %s is a descendant of account %s", apperrors.ErrValidation, candidate.AccountID, accountID)
		}
		next, err := s.accountRepo.FindAccountByID(ctx, current.ParentAccountID)
		if err != nil {
			return fmt.Errorf("failed to walk account hierarchy: %w", err)
		}
		current = next
	}
	return nil
}

// DeactivateAccount marks an account as inactive. System accounts and
// accounts referenced by ledger entries are protected.
func (s *AccountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.IsSystemAccount {
		return fmt.Errorf("%w: system account %s cannot be deactivated", apperrors.ErrConflict, account.Code)
	}

	referenced, err := s.accountRepo.HasEntriesForAccount(ctx, accountID)
	if err != nil {
		logger.Error("Failed to check entries for account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return fmt.Errorf("failed to check account usage: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: account %s has ledger entries and cannot be deactivated", apperrors.ErrConflict, account.Code)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	return nil
}
