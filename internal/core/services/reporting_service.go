package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.LedgerReader, options ...ServiceOption) portssvc.ReportingService {
	return &reportingService{
		BaseService: newBaseService(options),
		ledgerRepo:  repo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) snapshot(ctx context.Context, through time.Time, report string) (domain.LedgerSnapshot, error) {
	snap, err := s.ledgerRepo.LoadSnapshot(ctx, &through)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger snapshot", slog.String("report", report))
		return domain.LedgerSnapshot{}, err
	}
	return snap, nil
}

// consistencyFailure records a broken ledger identity. It should never happen
// while postings stay atomic.
func (s *reportingService) consistencyFailure(ctx context.Context, report string, err error, keyvals ...any) {
	s.Metrics.ConsistencyError(report)
	attrs := append([]any{slog.String("report", report), slog.String("severity", "fatal")}, keyvals...)
	s.LogError(ctx, err, "Ledger consistency check failed", attrs...)
}

// TrialBalance lists nonzero balances as of asOf. An imbalance is logged and
// reported through IsBalanced rather than failing the request.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error) {
	snap, err := s.snapshot(ctx, asOf, "trial_balance")
	if err != nil {
		return nil, err
	}
	tb := accounting.BuildTrialBalance(snap, asOf)
	if !tb.IsBalanced {
		s.consistencyFailure(ctx, "trial_balance",
			fmt.Errorf("%w: trial balance debits %s differ from credits %s", apperrors.ErrConsistency,
				tb.TotalDebits.StringFixed(domain.MoneyScale), tb.TotalCredits.StringFixed(domain.MoneyScale)),
			slog.String("as_of_date", asOf.Format(domain.DateLayout)))
	}
	return &tb, nil
}

func (s *reportingService) IncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatement, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start_date is after end_date", apperrors.ErrValidation)
	}
	snap, err := s.snapshot(ctx, end, "income_statement")
	if err != nil {
		return nil, err
	}
	is := accounting.BuildIncomeStatement(snap, start, end)
	return &is, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error) {
	snap, err := s.snapshot(ctx, asOf, "balance_sheet")
	if err != nil {
		return nil, err
	}
	bs := accounting.BuildBalanceSheet(snap, asOf)
	if !bs.Assets.Total.Equal(bs.TotalLiabilitiesAndEquity) {
		err := fmt.Errorf("%w: assets %s do not equal liabilities and equity %s", apperrors.ErrConsistency,
			bs.Assets.Total.StringFixed(domain.MoneyScale), bs.TotalLiabilitiesAndEquity.StringFixed(domain.MoneyScale))
		s.consistencyFailure(ctx, "balance_sheet", err, slog.String("as_of_date", asOf.Format(domain.DateLayout)))
		return nil, err
	}
	return &bs, nil
}

func (s *reportingService) CashFlowStatement(ctx context.Context, start, end time.Time) (*domain.CashFlowStatement, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start_date is after end_date", apperrors.ErrValidation)
	}
	snap, err := s.snapshot(ctx, end, "cash_flow")
	if err != nil {
		return nil, err
	}
	cf := accounting.BuildCashFlow(snap, start, end)
	// Category totals must explain the whole movement of the cash accounts.
	if actual := accounting.CashBalance(snap, accounting.OnOrBefore(end)); !actual.Equal(cf.ClosingCash) {
		s.consistencyFailure(ctx, "cash_flow",
			fmt.Errorf("%w: cash accounts hold %s but the statement closes at %s", apperrors.ErrConsistency,
				actual.StringFixed(domain.MoneyScale), cf.ClosingCash.StringFixed(domain.MoneyScale)))
	}
	return &cf, nil
}
