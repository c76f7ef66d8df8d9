package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mosaicsoft/bizbooks/internal/core/domain"
	"github.com/mosaicsoft/bizbooks/internal/dto"
)

// AccountSvcFacade is the account registry surface consumed by handlers and
// by the transaction lifecycle engine.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
	GetChartOfAccounts(ctx context.Context) ([]dto.ChartAccount, error)
	GetBalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string, userID string) error
}
