package services

import (
	"context"
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvc projects per-account running balances from posted lines.
type LedgerSvc interface {
	// GetAccountLedger replays the account's history through end and returns
	// the rows within [start, end]. Nil bounds are open.
	GetAccountLedger(ctx context.Context, accountID string, start, end *time.Time) (*domain.AccountLedger, error)

	// BalanceAsOf returns the account's balance including lines dated asOf.
	BalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error)
}
