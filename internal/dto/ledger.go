package dto

import (
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateRangeQuery carries optional inclusive date bounds.
type DateRangeQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// LedgerRowResponse is one row of the running ledger.
type LedgerRowResponse struct {
	Date             string          `json:"date"`
	EntryNumber      int64           `json:"entry_number"`
	TransactionGroup string          `json:"transaction_group"`
	ReferenceType    string          `json:"reference_type"`
	Description      string          `json:"description"`
	DebitAmount      decimal.Decimal `json:"debit_amount"`
	CreditAmount     decimal.Decimal `json:"credit_amount"`
	RunningBalance   decimal.Decimal `json:"running_balance"`
}

// AccountLedgerResponse is the running ledger of one account.
type AccountLedgerResponse struct {
	Account        AccountResponse     `json:"account"`
	StartDate      *string             `json:"start_date"`
	EndDate        *string             `json:"end_date"`
	OpeningBalance decimal.Decimal     `json:"opening_balance"`
	Entries        []LedgerRowResponse `json:"entries"`
	EndingBalance  decimal.Decimal     `json:"ending_balance"`
}

// ToAccountLedgerResponse converts a domain.AccountLedger.
func ToAccountLedgerResponse(l *domain.AccountLedger) AccountLedgerResponse {
	rows := make([]LedgerRowResponse, len(l.Rows))
	for i, r := range l.Rows {
		rows[i] = LedgerRowResponse{
			Date:             FormatDate(r.Date),
			EntryNumber:      r.EntryNumber,
			TransactionGroup: r.TransactionGroup,
			ReferenceType:    string(r.ReferenceType),
			Description:      r.Description,
			DebitAmount:      r.DebitAmount,
			CreditAmount:     r.CreditAmount,
			RunningBalance:   r.RunningBalance,
		}
	}
	return AccountLedgerResponse{
		Account:        ToAccountResponse(&l.Account),
		StartDate:      formatOptionalDate(l.StartDate),
		EndDate:        formatOptionalDate(l.EndDate),
		OpeningBalance: l.OpeningBalance,
		Entries:        rows,
		EndingBalance:  l.EndingBalance,
	}
}
