package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewLedgerService creates the running-balance projector.
func NewLedgerService(repo portsrepo.LedgerReader, options ...ServiceOption) portssvc.LedgerSvc {
	return &ledgerService{
		BaseService: newBaseService(options),
		ledgerRepo:  repo,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) GetAccountLedger(ctx context.Context, accountID string, start, end *time.Time) (*domain.AccountLedger, error) {
	if start != nil && end != nil && start.After(*end) {
		return nil, fmt.Errorf("%w: start_date is after end_date", apperrors.ErrValidation)
	}
	account, lines, err := s.loadAccountLines(ctx, accountID, end)
	if err != nil {
		return nil, err
	}
	ledger := accounting.RunningLedger(*account, lines, start, end)
	return &ledger, nil
}

func (s *ledgerService) BalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	account, lines, err := s.loadAccountLines(ctx, accountID, &asOf)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.RunningLedger(*account, lines, nil, &asOf).EndingBalance, nil
}

func (s *ledgerService) loadAccountLines(ctx context.Context, accountID string, through *time.Time) (*domain.Account, []domain.PostedLine, error) {
	account, lines, err := s.ledgerRepo.LoadAccountLines(ctx, accountID, through)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, accountID)
		}
		s.LogError(ctx, err, "Failed to load account lines", slog.String("account_id", accountID))
		return nil, nil, err
	}
	return account, lines, nil
}
