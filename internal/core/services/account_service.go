package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBaseService(options),
		accountRepo: repo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	account, err := newAccountFromRequest(req)
	if err != nil {
		s.LogDebug(ctx, "Rejected account", slog.String("code", req.Code), slog.String("reason", err.Error()))
		return nil, err
	}
	account.AccountID = uuid.NewString()
	account.AuditFields = domain.NewAuditFields(userID, s.Now())

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %s already exists", apperrors.ErrValidation, account.Code)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("code", account.Code))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func newAccountFromRequest(req dto.CreateAccountRequest) (domain.Account, error) {
	code, name := strings.TrimSpace(req.Code), strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return domain.Account{}, fmt.Errorf("%w: code and name are required", apperrors.ErrValidation)
	}
	accountType, ok := domain.ParseAccountType(req.AccountType)
	if !ok {
		return domain.Account{}, fmt.Errorf("%w: unknown account_type %q", apperrors.ErrValidation, req.AccountType)
	}
	normal := accountType.NormalBalance()
	if strings.TrimSpace(req.NormalBalance) != "" {
		given, ok := domain.ParseNormalBalance(req.NormalBalance)
		if !ok {
			return domain.Account{}, fmt.Errorf("%w: unknown normal_balance %q", apperrors.ErrValidation, req.NormalBalance)
		}
		if given != normal {
			return domain.Account{}, fmt.Errorf("%w: normal_balance %s contradicts account_type %s", apperrors.ErrValidation, given, accountType)
		}
	}
	if req.IsCash && accountType != domain.Asset {
		return domain.Account{}, fmt.Errorf("%w: only Asset accounts can be cash accounts", apperrors.ErrValidation)
	}
	category := domain.Operating
	if strings.TrimSpace(req.CashFlowCategory) != "" {
		category, ok = domain.ParseCashFlowCategory(req.CashFlowCategory)
		if !ok {
			return domain.Account{}, fmt.Errorf("%w: unknown cash_flow_category %q", apperrors.ErrValidation, req.CashFlowCategory)
		}
	}
	return domain.Account{
		Code:             code,
		Name:             name,
		AccountType:      accountType,
		NormalBalance:    normal,
		Description:      strings.TrimSpace(req.Description),
		IsActive:         true,
		IsCash:           req.IsCash,
		CashFlowCategory: category,
		CurrentBalance:   decimal.Zero,
	}, nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, accountID)
		}
		s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) DisableAccount(ctx context.Context, accountID string, userID string) (*domain.Account, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return account, nil
	}
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to disable account", slog.String("account_id", accountID))
		return nil, err
	}
	s.LogInfo(ctx, "Account disabled", slog.String("account_id", accountID), slog.String("code", account.Code))
	return s.GetAccount(ctx, accountID)
}

func (s *accountService) InitializeStandardChart(ctx context.Context, force bool, userID string) ([]domain.Account, error) {
	existing, err := s.accountRepo.ListAccounts(ctx, domain.AccountFilter{IncludeInactive: true})
	if err != nil {
		s.LogError(ctx, err, "Failed to read chart before seeding")
		return nil, err
	}
	if len(existing) > 0 && !force {
		return nil, fmt.Errorf("%w: %d accounts exist; pass force=true to add missing standard accounts",
			apperrors.ErrAlreadyInitialized, len(existing))
	}

	taken := make(map[string]bool, len(existing))
	for _, acc := range existing {
		taken[acc.Code] = true
	}
	audit := domain.NewAuditFields(userID, s.Now())
	created := make([]domain.Account, 0)
	for _, tmpl := range domain.StandardChart() {
		if taken[tmpl.Code] {
			continue
		}
		created = append(created, domain.Account{
			AccountID:        uuid.NewString(),
			Code:             tmpl.Code,
			Name:             tmpl.Name,
			AccountType:      tmpl.AccountType,
			NormalBalance:    tmpl.AccountType.NormalBalance(),
			Description:      tmpl.Description,
			IsActive:         true,
			IsCash:           tmpl.IsCash,
			CashFlowCategory: tmpl.CashFlowCategory,
			CurrentBalance:   decimal.Zero,
			AuditFields:      audit,
		})
	}
	if len(created) == 0 {
		return created, nil
	}
	if err := s.accountRepo.SaveAccounts(ctx, created); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent seed won the race.
			return nil, fmt.Errorf("%w: %v", apperrors.ErrAlreadyInitialized, err)
		}
		s.LogError(ctx, err, "Failed to seed standard chart")
		return nil, err
	}
	s.LogInfo(ctx, "Standard chart initialized", slog.Int("created", len(created)), slog.Bool("force", force))
	return created, nil
}
