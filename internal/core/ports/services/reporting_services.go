package services

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
)

// ReportingService defines the interface for financial statements
type ReportingService interface {
	// TrialBalance lists nonzero balances as of a date.
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error)

	// IncomeStatement reports Income and Expense activity within a period.
	IncomeStatement(ctx context.Context, start, end time.Time) (*domain.IncomeStatement, error)

	// BalanceSheet reports positions as of a date. A failed accounting
	// equation yields apperrors.ErrConsistency.
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error)

	// CashFlowStatement classifies cash movements within a period.
	CashFlowStatement(ctx context.Context, start, end time.Time) (*domain.CashFlowStatement, error)
}
