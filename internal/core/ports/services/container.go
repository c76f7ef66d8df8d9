package services

// ServiceContainer holds all the services exposed to the handler layer.
type ServiceContainer struct {
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Numbering   NumberingSvcFacade
}
