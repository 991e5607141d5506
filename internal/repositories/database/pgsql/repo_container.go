package pgsql

import (
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:        newPgxAccountRepository(dbPool),
		JournalRepo:        newPgxJournalRepository(dbPool),
		LedgerRepo:         newPgxLedgerRepository(dbPool),
		ReconciliationRepo: newPgxReconciliationRepository(dbPool),
		Health:             &BaseRepository{Pool: dbPool},
	}
}
