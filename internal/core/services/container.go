package services

import (
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
)

// NewServiceContainer wires every service against one repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, options...)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo, options...)
	container.Ledger = NewLedgerService(repos.LedgerRepo, options...)
	container.Reporting = NewReportingService(repos.LedgerRepo, options...)
	container.Reconciliation = NewReconciliationService(repos.ReconciliationRepo, repos.AccountRepo, container.Ledger, options...)

	return container
}
