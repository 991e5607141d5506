package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table.
// CashFlowCategory is nullable in storage; an empty string means unset.
type Account struct {
	AccountID        string          `db:"account_id"`
	Code             string          `db:"code"`
	Name             string          `db:"name"`
	AccountType      string          `db:"account_type"`
	NormalBalance    string          `db:"normal_balance"`
	Description      string          `db:"description"`
	IsActive         bool            `db:"is_active"`
	IsCash           bool            `db:"is_cash"`
	CashFlowCategory *string         `db:"cash_flow_category"`
	CurrentBalance   decimal.Decimal `db:"current_balance"`
	AuditFields
}
