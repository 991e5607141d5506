package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
)

// Store is an in-process ledger satisfying every repository port.
// A single RWMutex serializes writers; readers share the read lock, so each
// read observes one committed state.
type Store struct {
	// mu protects all fields below
	mu sync.RWMutex

	accounts map[string]domain.Account
	// codes maps account code to account id
	codes map[string]string

	entries []domain.JournalEntry
	// groups maps transaction group to its index in entries
	groups map[string]int
	// reversedBy maps an original transaction group to its reversal
	reversedBy map[string]string

	lastEntryNumber int64

	reconciliations []domain.Reconciliation
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts:   make(map[string]domain.Account),
		codes:      make(map[string]string),
		groups:     make(map[string]int),
		reversedBy: make(map[string]string),
	}
}

// NewRepositoryProvider wires one shared Store behind every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:        store,
		JournalRepo:        store,
		LedgerRepo:         store,
		ReconciliationRepo: store,
		Health:             store,
	}
}

// Ping always succeeds while the context is live.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

var (
	_ portsrepo.AccountRepositoryFacade  = (*Store)(nil)
	_ portsrepo.JournalRepositoryFacade  = (*Store)(nil)
	_ portsrepo.LedgerReader             = (*Store)(nil)
	_ portsrepo.ReconciliationRepository = (*Store)(nil)
	_ portsrepo.HealthChecker            = (*Store)(nil)
)

func copyEntry(e domain.JournalEntry) domain.JournalEntry {
	lines := make([]domain.JournalLine, len(e.Lines))
	copy(lines, e.Lines)
	e.Lines = lines
	if e.ReversalOf != nil {
		original := *e.ReversalOf
		e.ReversalOf = &original
	}
	return e
}
