package dto

import (
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveReconciliationRequest defines the data needed to record a reconciliation.
// BookBalance may be omitted and is then taken from the ledger.
// ReconciledBalance and IsReconciled are accepted for client compatibility
// but ignored; the server always recomputes them.
type SaveReconciliationRequest struct {
	BankAccountID        string           `json:"bank_account_id" binding:"required"`
	ReconciliationDate   string           `json:"reconciliation_date" binding:"required,datetime=2006-01-02"`
	BankStatementBalance decimal.Decimal  `json:"bank_statement_balance" binding:"money"`
	BookBalance          *decimal.Decimal `json:"book_balance" binding:"omitempty,money"`
	OutstandingDeposits  decimal.Decimal  `json:"outstanding_deposits" binding:"money"`
	OutstandingChecks    decimal.Decimal  `json:"outstanding_checks" binding:"money"`
	BankFees             decimal.Decimal  `json:"bank_fees" binding:"money"`
	Notes                string           `json:"notes" binding:"max=1000"`
	ReconciledBalance    *decimal.Decimal `json:"reconciled_balance"`
	IsReconciled         *bool            `json:"is_reconciled"`
}

// ListReconciliationsParams filters the reconciliation history.
type ListReconciliationsParams struct {
	BankAccountID string `form:"bank_account_id"`
}

// ReconciliationResponse is one stored reconciliation.
type ReconciliationResponse struct {
	ReconciliationID     string          `json:"reconciliation_id"`
	BankAccountID        string          `json:"bank_account_id"`
	BankAccountCode      string          `json:"bank_account_code"`
	BankAccountName      string          `json:"bank_account_name"`
	ReconciliationDate   string          `json:"reconciliation_date"`
	BankStatementBalance decimal.Decimal `json:"bank_statement_balance"`
	BookBalance          decimal.Decimal `json:"book_balance"`
	OutstandingDeposits  decimal.Decimal `json:"outstanding_deposits"`
	OutstandingChecks    decimal.Decimal `json:"outstanding_checks"`
	BankFees             decimal.Decimal `json:"bank_fees"`
	ReconciledBalance    decimal.Decimal `json:"reconciled_balance"`
	IsReconciled         bool            `json:"is_reconciled"`
	Notes                string          `json:"notes"`
	CreatedAt            time.Time       `json:"created_at"`
	CreatedBy            string          `json:"created_by"`
}

// ToReconciliationResponse converts a domain.Reconciliation.
func ToReconciliationResponse(r *domain.Reconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		ReconciliationID:     r.ReconciliationID,
		BankAccountID:        r.BankAccountID,
		BankAccountCode:      r.BankAccountCode,
		BankAccountName:      r.BankAccountName,
		ReconciliationDate:   FormatDate(r.ReconciliationDate),
		BankStatementBalance: r.BankStatementBalance,
		BookBalance:          r.BookBalance,
		OutstandingDeposits:  r.OutstandingDeposits,
		OutstandingChecks:    r.OutstandingChecks,
		BankFees:             r.BankFees,
		ReconciledBalance:    r.ReconciledBalance,
		IsReconciled:         r.IsReconciled,
		Notes:                r.Notes,
		CreatedAt:            r.CreatedAt,
		CreatedBy:            r.CreatedBy,
	}
}

// ToListReconciliationResponse converts a list of reconciliations.
func ToListReconciliationResponse(recs []domain.Reconciliation) []ReconciliationResponse {
	res := make([]ReconciliationResponse, len(recs))
	for i := range recs {
		res[i] = ToReconciliationResponse(&recs[i])
	}
	return res
}
