package services

import (
	"context"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves a specific account. Unknown IDs yield apperrors.ErrUnknownAccount.
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts returns accounts sorted by code, each with its live balance.
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount validates and persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// DisableAccount soft-disables an account; history is kept.
	DisableAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error)

	// InitializeStandardChart seeds the standard chart. Without force it fails
	// with apperrors.ErrAlreadyInitialized when any account exists; with force
	// it creates only the missing codes.
	InitializeStandardChart(ctx context.Context, force bool, userID string) ([]domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
