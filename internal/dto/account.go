package dto

import (
	"time"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// NormalBalance may be omitted and is then derived from AccountType.
type CreateAccountRequest struct {
	Code             string `json:"code" binding:"required,max=20"`
	Name             string `json:"name" binding:"required,max=120"`
	AccountType      string `json:"account_type" binding:"required"`
	NormalBalance    string `json:"normal_balance"`
	Description      string `json:"description" binding:"max=500"`
	IsCash           bool   `json:"is_cash"`
	CashFlowCategory string `json:"cash_flow_category"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID        string          `json:"account_id"`
	Code             string          `json:"code"`
	Name             string          `json:"name"`
	AccountType      string          `json:"account_type"`
	NormalBalance    string          `json:"normal_balance"`
	Description      string          `json:"description"`
	IsActive         bool            `json:"is_active"`
	IsCash           bool            `json:"is_cash"`
	CashFlowCategory string          `json:"cash_flow_category"`
	CurrentBalance   decimal.Decimal `json:"current_balance"`
	CreatedAt        time.Time       `json:"created_at"`
	CreatedBy        string          `json:"created_by"`
	LastUpdatedAt    time.Time       `json:"last_updated_at"`
	LastUpdatedBy    string          `json:"last_updated_by"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:        acc.AccountID,
		Code:             acc.Code,
		Name:             acc.Name,
		AccountType:      string(acc.AccountType),
		NormalBalance:    string(acc.NormalBalance),
		Description:      acc.Description,
		IsActive:         acc.IsActive,
		IsCash:           acc.IsCash,
		CashFlowCategory: string(acc.CashFlowCategory),
		CurrentBalance:   acc.CurrentBalance,
		CreatedAt:        acc.CreatedAt,
		CreatedBy:        acc.CreatedBy,
		LastUpdatedAt:    acc.LastUpdatedAt,
		LastUpdatedBy:    acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	AccountType     string `form:"account_type"`
	IncludeInactive bool   `form:"include_inactive"`
}

// InitializeChartParams defines query parameters for seeding the chart.
type InitializeChartParams struct {
	Force bool `form:"force"`
}

// InitializeChartResponse lists the accounts created by a seeding call.
type InitializeChartResponse struct {
	Created  int               `json:"created"`
	Accounts []AccountResponse `json:"accounts"`
}
