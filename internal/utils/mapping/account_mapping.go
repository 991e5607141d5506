package mapping

import (
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:        d.AccountID,
		Code:             d.Code,
		Name:             d.Name,
		AccountType:      string(d.AccountType),
		NormalBalance:    string(d.NormalBalance),
		Description:      d.Description,
		IsActive:         d.IsActive,
		IsCash:           d.IsCash,
		CashFlowCategory: optionalString(string(d.CashFlowCategory)),
		CurrentBalance:   d.CurrentBalance,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:        m.AccountID,
		Code:             m.Code,
		Name:             m.Name,
		AccountType:      domain.AccountType(m.AccountType),
		NormalBalance:    domain.NormalBalance(m.NormalBalance),
		Description:      m.Description,
		IsActive:         m.IsActive,
		IsCash:           m.IsCash,
		CashFlowCategory: domain.CashFlowCategory(derefString(m.CashFlowCategory)),
		CurrentBalance:   m.CurrentBalance,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
