package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "Asset"
	Liability AccountType = "Liability"
	Equity    AccountType = "Equity"
	Income    AccountType = "Income"
	Expense   AccountType = "Expense"
)

// AccountTypes lists every type in statement order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Income, Expense}

// ParseAccountType accepts any letter case ("ASSET", "asset", "Asset").
func ParseAccountType(s string) (AccountType, bool) {
	for _, t := range AccountTypes {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, true
		}
	}
	return "", false
}

// NormalBalance returns the side on which the type carries a positive balance.
func (t AccountType) NormalBalance() NormalBalance {
	switch t {
	case Asset, Expense:
		return Debit
	default:
		return Credit
	}
}

// NormalBalance is the side (debit or credit) an account ordinarily carries.
type NormalBalance string

const (
	Debit  NormalBalance = "Debit"
	Credit NormalBalance = "Credit"
)

// ParseNormalBalance accepts any letter case.
func ParseNormalBalance(s string) (NormalBalance, bool) {
	switch {
	case strings.EqualFold(strings.TrimSpace(s), string(Debit)):
		return Debit, true
	case strings.EqualFold(strings.TrimSpace(s), string(Credit)):
		return Credit, true
	}
	return "", false
}

// CashFlowCategory tags where an account's cash movements are reported.
type CashFlowCategory string

const (
	Operating CashFlowCategory = "Operating"
	Investing CashFlowCategory = "Investing"
	Financing CashFlowCategory = "Financing"
)

// ParseCashFlowCategory accepts any letter case.
func ParseCashFlowCategory(s string) (CashFlowCategory, bool) {
	for _, c := range []CashFlowCategory{Operating, Investing, Financing} {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}

// Account represents a chart-of-accounts entry.
// CurrentBalance is signed per NormalBalance and only changes through posting.
type Account struct {
	AccountID        string
	Code             string
	Name             string
	AccountType      AccountType
	NormalBalance    NormalBalance
	Description      string
	IsActive         bool
	IsCash           bool
	CashFlowCategory CashFlowCategory
	CurrentBalance   decimal.Decimal
	AuditFields
}

// AccountFilter narrows listAccounts.
type AccountFilter struct {
	AccountType     *AccountType
	IncludeInactive bool
}

// Matches reports whether the account passes the filter.
func (f AccountFilter) Matches(a Account) bool {
	if !f.IncludeInactive && !a.IsActive {
		return false
	}
	if f.AccountType != nil && a.AccountType != *f.AccountType {
		return false
	}
	return true
}
