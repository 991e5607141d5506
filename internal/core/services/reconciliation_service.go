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
	"github.com/SscSPs/general_ledger/internal/utils/accounting"
	"github.com/google/uuid"
)

type reconciliationService struct {
	BaseService
	reconRepo   portsrepo.ReconciliationRepository
	accountRepo portsrepo.AccountReader
	ledger      portssvc.LedgerSvc
}

// NewReconciliationService creates the reconciliation tracker. The ledger
// service supplies the book balance when a request omits it.
func NewReconciliationService(reconRepo portsrepo.ReconciliationRepository, accountRepo portsrepo.AccountReader, ledger portssvc.LedgerSvc, options ...ServiceOption) portssvc.ReconciliationSvc {
	return &reconciliationService{
		BaseService: newBaseService(options),
		reconRepo:   reconRepo,
		accountRepo: accountRepo,
		ledger:      ledger,
	}
}

var _ portssvc.ReconciliationSvc = (*reconciliationService)(nil)

func (s *reconciliationService) SaveReconciliation(ctx context.Context, req dto.SaveReconciliationRequest, userID string) (*domain.Reconciliation, error) {
	date, err := dto.ParseDate("reconciliation_date", req.ReconciliationDate)
	if err != nil {
		return nil, err
	}
	if err := accounting.ValidateAmount("bank_statement_balance", req.BankStatementBalance); err != nil {
		return nil, err
	}
	if err := accounting.ValidateNonNegative("outstanding_deposits", req.OutstandingDeposits); err != nil {
		return nil, err
	}
	if err := accounting.ValidateNonNegative("outstanding_checks", req.OutstandingChecks); err != nil {
		return nil, err
	}
	if err := accounting.ValidateNonNegative("bank_fees", req.BankFees); err != nil {
		return nil, err
	}

	bankAccountID := strings.TrimSpace(req.BankAccountID)
	account, err := s.accountRepo.FindAccountByID(ctx, bankAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, bankAccountID)
		}
		s.LogError(ctx, err, "Failed to find bank account", slog.String("account_id", bankAccountID))
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: %s (%s) is disabled", apperrors.ErrUnknownAccount, account.Code, account.AccountID)
	}
	if account.AccountType != domain.Asset || !account.IsCash {
		return nil, fmt.Errorf("%w: account %s is not a cash or bank account", apperrors.ErrValidation, account.Code)
	}

	rec := domain.Reconciliation{
		ReconciliationID:     uuid.NewString(),
		BankAccountID:        account.AccountID,
		BankAccountCode:      account.Code,
		BankAccountName:      account.Name,
		ReconciliationDate:   date,
		BankStatementBalance: req.BankStatementBalance,
		OutstandingDeposits:  req.OutstandingDeposits,
		OutstandingChecks:    req.OutstandingChecks,
		BankFees:             req.BankFees,
		Notes:                strings.TrimSpace(req.Notes),
		CreatedAt:            s.Now(),
		CreatedBy:            userID,
	}
	if req.BookBalance != nil {
		if err := accounting.ValidateAmount("book_balance", *req.BookBalance); err != nil {
			return nil, err
		}
		rec.BookBalance = *req.BookBalance
	} else {
		rec.BookBalance, err = s.ledger.BalanceAsOf(ctx, account.AccountID, date)
		if err != nil {
			return nil, err
		}
	}
	rec.Compute()

	if err := s.reconRepo.SaveReconciliation(ctx, rec); err != nil {
		s.LogError(ctx, err, "Failed to save reconciliation", slog.String("account_id", account.AccountID))
		return nil, err
	}
	s.LogInfo(ctx, "Reconciliation saved",
		slog.String("reconciliation_id", rec.ReconciliationID),
		slog.String("account_code", account.Code),
		slog.String("reconciled_balance", rec.ReconciledBalance.StringFixed(domain.MoneyScale)),
		slog.Bool("is_reconciled", rec.IsReconciled))
	return &rec, nil
}

func (s *reconciliationService) ListReconciliations(ctx context.Context, bankAccountID *string) ([]domain.Reconciliation, error) {
	recs, err := s.reconRepo.ListReconciliations(ctx, bankAccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reconciliations")
		return nil, err
	}
	return recs, nil
}
