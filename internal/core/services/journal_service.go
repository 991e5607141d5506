package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/utils/accounting"
	"github.com/SscSPs/general_ledger/internal/utils/pagination"
	"github.com/google/uuid"
)

// journalService implements the JournalSvcFacade interface
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader, options ...ServiceOption) portssvc.JournalSvcFacade {
	return &journalService{
		BaseService: newBaseService(options),
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostEntry validates and posts a new entry. Boundary errors (dates,
// reference type, amount scale) are reported before ledger rules, which are
// checked in a fixed order: line count, accounts, line shape, balance.
func (s *journalService) PostEntry(ctx context.Context, req dto.PostEntryRequest, userID string) (*domain.JournalEntry, error) {
	entry, err := s.entryFromRequest(req, userID)
	if err != nil {
		s.rejected(ctx, err)
		return nil, err
	}
	if err := s.post(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *journalService) entryFromRequest(req dto.PostEntryRequest, userID string) (*domain.JournalEntry, error) {
	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	refType, ok := domain.ParseReferenceType(req.ReferenceType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown reference_type %q", apperrors.ErrValidation, req.ReferenceType)
	}
	if refType == domain.RefReversal {
		return nil, fmt.Errorf("%w: reversals must be posted through the reverse operation", apperrors.ErrValidation)
	}

	group := uuid.NewString()
	lines := make([]domain.JournalLine, len(req.Entries))
	for i, l := range req.Entries {
		if err := accounting.ValidateAmount(fmt.Sprintf("entries[%d].debit_amount", i), l.DebitAmount); err != nil {
			return nil, err
		}
		if err := accounting.ValidateAmount(fmt.Sprintf("entries[%d].credit_amount", i), l.CreditAmount); err != nil {
			return nil, err
		}
		lines[i] = domain.JournalLine{
			LineID:           uuid.NewString(),
			TransactionGroup: group,
			LineNo:           i + 1,
			AccountID:        strings.TrimSpace(l.AccountID),
			Description:      strings.TrimSpace(l.Description),
			DebitAmount:      l.DebitAmount,
			CreditAmount:     l.CreditAmount,
		}
	}

	return &domain.JournalEntry{
		TransactionGroup: group,
		Date:             date,
		Description:      strings.TrimSpace(req.Description),
		ReferenceType:    refType,
		ReferenceID:      strings.TrimSpace(req.ReferenceID),
		Lines:            lines,
		CreatedAt:        s.Now(),
		CreatedBy:        userID,
	}, nil
}

// post runs the ledger rules and hands the entry to the repository, which
// assigns the entry number and applies balances atomically.
func (s *journalService) post(ctx context.Context, entry *domain.JournalEntry) error {
	accounts, err := s.validate(ctx, entry)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInternal {
			s.LogError(ctx, err, "Failed to load accounts for posting")
			return err
		}
		s.rejected(ctx, err)
		return err
	}

	changes, err := accounting.BalanceChanges(entry.Lines, accounts)
	if err != nil {
		s.rejected(ctx, err)
		return err
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, changes); err != nil {
		if errors.Is(err, apperrors.ErrUnknownAccount) || errors.Is(err, apperrors.ErrConflict) {
			s.rejected(ctx, err)
			return err
		}
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("transaction_group", entry.TransactionGroup))
		return fmt.Errorf("failed to post journal entry: %w", err)
	}

	s.Metrics.EntryPosted(string(entry.ReferenceType))
	s.LogInfo(ctx, "Journal entry posted",
		slog.String("transaction_group", entry.TransactionGroup),
		slog.Int64("entry_number", entry.EntryNumber),
		slog.String("reference_type", string(entry.ReferenceType)),
		slog.Int("lines", len(entry.Lines)))
	return nil
}

// validate applies the ledger rules and returns the touched accounts.
func (s *journalService) validate(ctx context.Context, entry *domain.JournalEntry) (map[string]domain.Account, error) {
	if len(entry.Lines) < 2 {
		return nil, fmt.Errorf("%w: got %d", apperrors.ErrInsufficientLines, len(entry.Lines))
	}

	ids := entry.AccountIDs()
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		acc, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s does not exist", apperrors.ErrUnknownAccount, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: %s (%s) is disabled", apperrors.ErrUnknownAccount, acc.Code, id)
		}
	}

	if err := accounting.ValidateLines(entry.Lines); err != nil {
		return nil, err
	}
	if err := accounting.ValidateBalance(entry.Lines); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *journalService) rejected(ctx context.Context, err error) {
	kind := apperrors.KindOf(err)
	s.Metrics.EntryRejected(kind)
	s.LogDebug(ctx, "Journal entry rejected", slog.String("kind", kind), slog.String("reason", err.Error()))
}

// ReverseEntry posts the mirror image of an existing entry.
func (s *journalService) ReverseEntry(ctx context.Context, transactionGroup string, req dto.ReverseEntryRequest, userID string) (*domain.JournalEntry, error) {
	original, err := s.journalRepo.FindEntryByGroup(ctx, transactionGroup)
	if err != nil {
		return nil, err
	}
	if original.ReversalOf != nil {
		return nil, fmt.Errorf("%w: entry %s is itself a reversal", apperrors.ErrConflict, transactionGroup)
	}

	date := original.Date
	if parsed, err := dto.ParseOptionalDate("date", req.Date); err != nil {
		return nil, err
	} else if parsed != nil {
		date = *parsed
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = fmt.Sprintf("Reversal of entry #%d", original.EntryNumber)
		if original.Description != "" {
			description += ": " + original.Description
		}
	}

	group := uuid.NewString()
	lines := accounting.SwapSides(original.Lines)
	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].TransactionGroup = group
	}
	originalGroup := original.TransactionGroup
	reversal := &domain.JournalEntry{
		TransactionGroup: group,
		Date:             date,
		Description:      description,
		ReferenceType:    domain.RefReversal,
		ReferenceID:      originalGroup,
		ReversalOf:       &originalGroup,
		Lines:            lines,
		CreatedAt:        s.Now(),
		CreatedBy:        userID,
	}
	if err := s.post(ctx, reversal); err != nil {
		return nil, err
	}
	return reversal, nil
}

func (s *journalService) GetEntry(ctx context.Context, transactionGroup string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByGroup(ctx, transactionGroup)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("transaction_group", transactionGroup))
		}
		return nil, err
	}
	return entry, nil
}

func (s *journalService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, *string, error) {
	start, err := dto.ParseOptionalDate("start_date", params.StartDate)
	if err != nil {
		return nil, nil, err
	}
	end, err := dto.ParseOptionalDate("end_date", params.EndDate)
	if err != nil {
		return nil, nil, err
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, nil, fmt.Errorf("%w: start_date is after end_date", apperrors.ErrValidation)
	}

	filter := domain.EntryFilter{StartDate: start, EndDate: end}
	if params.NextToken != "" {
		cursor, err := pagination.DecodeEntryCursor(params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filter.After = &cursor
	}
	if params.Limit > 0 {
		// One extra row tells us whether another page exists.
		filter.Limit = params.Limit + 1
	}

	entries, err := s.journalRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, nil, err
	}

	var nextToken *string
	if params.Limit > 0 && len(entries) > params.Limit {
		entries = entries[:params.Limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeEntryCursor(domain.EntryCursor{Date: last.Date, EntryNumber: last.EntryNumber})
		nextToken = &token
	}
	return entries, nextToken, nil
}
