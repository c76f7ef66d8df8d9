package services

import (
	portsrepo "github.com/mosaicsoft/bizbooks/internal/core/ports/repositories"
	portssvc "github.com/mosaicsoft/bizbooks/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Numbering first since account and transaction services depend on it.
	container.Numbering = NewNumberingService(repos.SequenceRepo)
	container.Account = NewAccountService(repos.AccountRepo, container.Numbering)
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Account, container.Numbering)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade     = (*AccountService)(nil)
	_ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
	_ portssvc.NumberingSvcFacade   = (*NumberingService)(nil)
)
