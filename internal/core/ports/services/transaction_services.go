package services

import (
	"context"

	"github.com/mosaicsoft/bizbooks/internal/core/domain"
	portsrepo "github.com/mosaicsoft/bizbooks/internal/core/ports/repositories"
	"github.com/mosaicsoft/bizbooks/internal/dto"
)

// TransactionSvcFacade is the transaction lifecycle engine surface.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter, limit int, offset int) ([]domain.Transaction, error)
	ApproveTransaction(ctx context.Context, transactionID string, actorUserID string) (*domain.Transaction, error)
	RejectTransaction(ctx context.Context, transactionID string, actorUserID string) (*domain.Transaction, error)
	PostTransaction(ctx context.Context, transactionID string, actorUserID string) (*domain.Transaction, error)
	ReconcileTransaction(ctx context.Context, transactionID string, actorUserID string) (*domain.Transaction, error)
}
