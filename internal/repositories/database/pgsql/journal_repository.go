package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/general_ledger/internal/models"
	"github.com/SscSPs/general_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	entryColumns = `transaction_group, entry_number, entry_date, description, reference_type,
		reference_id, reversal_of, created_at, created_by`
	lineColumns = `line_id, transaction_group, line_no, account_id, description, debit_amount, credit_amount`

	reversalOfConstraint = "journal_entries_reversal_of_key"
)

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveEntry inserts the entry and its lines and applies balanceChanges in one
// transaction. Touched accounts are locked in id order so concurrent posts
// against the same accounts serialize without deadlocking.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry *domain.JournalEntry, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	accountIDs := make([]string, 0, len(balanceChanges))
	for id := range balanceChanges {
		accountIDs = append(accountIDs, id)
	}
	sort.Strings(accountIDs)

	if err := lockActiveAccounts(ctx, tx, accountIDs); err != nil {
		return err
	}

	m := mapping.ToModelJournalEntry(*entry)
	insertEntry := `
		INSERT INTO journal_entries (transaction_group, entry_date, description, reference_type,
			reference_id, reversal_of, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING entry_number;
	`
	err = tx.QueryRow(ctx, insertEntry,
		m.TransactionGroup, m.EntryDate, m.Description, m.ReferenceType,
		m.ReferenceID, m.ReversalOf, m.CreatedAt, m.CreatedBy,
	).Scan(&m.EntryNumber)
	if err != nil {
		switch {
		case uniqueViolationOn(err, reversalOfConstraint):
			return fmt.Errorf("%w: entry %s is already reversed", apperrors.ErrConflict, *entry.ReversalOf)
		case uniqueViolationOn(err, ""):
			return fmt.Errorf("%w: transaction group %s", apperrors.ErrDuplicate, entry.TransactionGroup)
		}
		return apperrors.NewAppError(500, "failed to insert journal entry "+entry.TransactionGroup, err)
	}

	batch := &pgx.Batch{}
	insertLine := `INSERT INTO journal_lines (` + lineColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	for _, l := range entry.Lines {
		ml := mapping.ToModelJournalLine(l)
		batch.Queue(insertLine, ml.LineID, ml.TransactionGroup, ml.LineNo, ml.AccountID, ml.Description, ml.DebitAmount, ml.CreditAmount)
	}
	updateBalance := `
		UPDATE accounts
		SET current_balance = current_balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	for _, id := range accountIDs {
		batch.Queue(updateBalance, id, balanceChanges[id], entry.CreatedAt, entry.CreatedBy)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to write lines for journal entry "+entry.TransactionGroup, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}
	entry.EntryNumber = m.EntryNumber
	return nil
}

// lockActiveAccounts takes row locks on accountIDs and fails unless every one
// exists and is active.
func lockActiveAccounts(ctx context.Context, tx pgx.Tx, accountIDs []string) error {
	rows, err := tx.Query(ctx, `
		SELECT account_id, is_active FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;
	`, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to lock accounts: %w", err)
	}
	active := make(map[string]bool, len(accountIDs))
	var id string
	var isActive bool
	_, err = pgx.ForEachRow(rows, []any{&id, &isActive}, func() error {
		active[id] = isActive
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to lock accounts: %w", err)
	}
	for _, id := range accountIDs {
		if !active[id] {
			return fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, id)
		}
	}
	return nil
}

// FindEntryByGroup retrieves an entry and its lines.
func (r *PgxJournalRepository) FindEntryByGroup(ctx context.Context, transactionGroup string) (*domain.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+entryColumns+` FROM journal_entries WHERE transaction_group = $1;`, transactionGroup)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entry %s: %w", transactionGroup, err)
	}
	header, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, transactionGroup)
		}
		return nil, fmt.Errorf("failed to scan journal entry %s: %w", transactionGroup, err)
	}
	lines, err := r.linesByGroup(ctx, []string{transactionGroup})
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainJournalEntry(header, lines[transactionGroup])
	return &entry, nil
}

// ListEntries returns entries passing filter in (date, entry_number) order.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	var afterDate, afterNumber, limit any
	if filter.After != nil {
		afterDate, afterNumber = filter.After.Date, filter.After.EntryNumber
	}
	if filter.Limit > 0 {
		limit = filter.Limit
	}
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE ($1::date IS NULL OR entry_date >= $1)
		  AND ($2::date IS NULL OR entry_date <= $2)
		  AND ($3::date IS NULL OR (entry_date, entry_number) > ($3::date, $4::bigint))
		ORDER BY entry_date, entry_number
		LIMIT $5;
	`
	rows, err := r.Pool.Query(ctx, query, filter.StartDate, filter.EndDate, afterDate, afterNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	headers, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to scan journal entries: %w", err)
	}

	groups := make([]string, len(headers))
	for i, h := range headers {
		groups[i] = h.TransactionGroup
	}
	lines, err := r.linesByGroup(ctx, groups)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainJournalEntry(h, lines[h.TransactionGroup])
	}
	return entries, nil
}

func (r *PgxJournalRepository) linesByGroup(ctx context.Context, groups []string) (map[string][]models.JournalLine, error) {
	byGroup := make(map[string][]models.JournalLine, len(groups))
	if len(groups) == 0 {
		return byGroup, nil
	}
	rows, err := r.Pool.Query(ctx, `
		SELECT `+lineColumns+`
		FROM journal_lines
		WHERE transaction_group = ANY($1)
		ORDER BY transaction_group, line_no;
	`, groups)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalLine])
	if err != nil {
		return nil, fmt.Errorf("failed to scan journal lines: %w", err)
	}
	for _, l := range lines {
		byGroup[l.TransactionGroup] = append(byGroup[l.TransactionGroup], l)
	}
	return byGroup, nil
}
