package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reconciliation is a row of the reconciliations table joined with the bank
// account's code and name.
type Reconciliation struct {
	ReconciliationID     string          `db:"reconciliation_id"`
	BankAccountID        string          `db:"bank_account_id"`
	BankAccountCode      string          `db:"bank_account_code"`
	BankAccountName      string          `db:"bank_account_name"`
	ReconciliationDate   time.Time       `db:"reconciliation_date"`
	BankStatementBalance decimal.Decimal `db:"bank_statement_balance"`
	BookBalance          decimal.Decimal `db:"book_balance"`
	OutstandingDeposits  decimal.Decimal `db:"outstanding_deposits"`
	OutstandingChecks    decimal.Decimal `db:"outstanding_checks"`
	BankFees             decimal.Decimal `db:"bank_fees"`
	ReconciledBalance    decimal.Decimal `db:"reconciled_balance"`
	IsReconciled         bool            `db:"is_reconciled"`
	Notes                string          `db:"notes"`
	CreatedAt            time.Time       `db:"created_at"`
	CreatedBy            string          `db:"created_by"`
}
