package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationTolerance is the largest gap still treated as reconciled.
var ReconciliationTolerance = decimal.New(1, -MoneyScale)

// Reconciliation is one saved bank reconciliation session. Records are never
// overwritten.
type Reconciliation struct {
	ReconciliationID     string
	BankAccountID        string
	BankAccountCode      string
	BankAccountName      string
	ReconciliationDate   time.Time
	BankStatementBalance decimal.Decimal
	BookBalance          decimal.Decimal
	OutstandingDeposits  decimal.Decimal
	OutstandingChecks    decimal.Decimal
	BankFees             decimal.Decimal
	ReconciledBalance    decimal.Decimal
	IsReconciled         bool
	Notes                string
	CreatedAt            time.Time
	CreatedBy            string
}

// Compute derives ReconciledBalance and IsReconciled from the inputs.
func (r *Reconciliation) Compute() {
	r.ReconciledBalance = r.BookBalance.
		Add(r.OutstandingDeposits).
		Sub(r.OutstandingChecks).
		Sub(r.BankFees)
	r.IsReconciled = r.ReconciledBalance.Sub(r.BankStatementBalance).Abs().LessThan(ReconciliationTolerance)
}
