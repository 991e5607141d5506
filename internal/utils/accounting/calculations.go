package accounting

import (
	"fmt"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedDelta is the change a line makes to a balance kept on the given side.
// Debit-normal accounts grow with debits, credit-normal accounts with credits.
func SignedDelta(normal domain.NormalBalance, debit, credit decimal.Decimal) decimal.Decimal {
	if normal == domain.Debit {
		return debit.Sub(credit)
	}
	return credit.Sub(debit)
}

// HasMoneyScale reports whether d fits in MoneyScale fractional digits.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(domain.MoneyScale))
}

// MaxIntegerDigits is the integer precision of the NUMERIC(20,2) money columns.
const MaxIntegerDigits = 18

var maxMagnitude = decimal.New(1, MaxIntegerDigits)

// WithinMoneyRange reports whether |d| fits the stored integer digits.
func WithinMoneyRange(d decimal.Decimal) bool {
	return d.Abs().LessThan(maxMagnitude)
}

// ValidateAmount rejects amounts the ledger cannot store: too many fractional
// digits or more than MaxIntegerDigits integer digits.
func ValidateAmount(field string, d decimal.Decimal) error {
	if !HasMoneyScale(d) {
		return fmt.Errorf("%w: %s must have at most %d decimal places, got %s", apperrors.ErrValidation, field, domain.MoneyScale, d.String())
	}
	if !WithinMoneyRange(d) {
		return fmt.Errorf("%w: %s must have at most %d integer digits, got %s", apperrors.ErrValidation, field, MaxIntegerDigits, d.String())
	}
	return nil
}

// ValidateNonNegative rejects negative amounts and amounts with too many decimals.
func ValidateNonNegative(field string, d decimal.Decimal) error {
	if err := ValidateAmount(field, d); err != nil {
		return err
	}
	if d.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, field)
	}
	return nil
}

// ValidateLines checks that every line carries exactly one nonzero side and no
// negative amount.
func ValidateLines(lines []domain.JournalLine) error {
	for i, l := range lines {
		if l.DebitAmount.IsNegative() || l.CreditAmount.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", apperrors.ErrInvalidLine, i+1)
		}
		hasDebit, hasCredit := !l.DebitAmount.IsZero(), !l.CreditAmount.IsZero()
		if hasDebit == hasCredit {
			if hasDebit {
				return fmt.Errorf("%w: line %d carries both a debit and a credit", apperrors.ErrInvalidLine, i+1)
			}
			return fmt.Errorf("%w: line %d carries neither a debit nor a credit", apperrors.ErrInvalidLine, i+1)
		}
	}
	return nil
}

// ValidateBalance requires debits to equal credits exactly.
func ValidateBalance(lines []domain.JournalLine) error {
	entry := domain.JournalEntry{Lines: lines}
	debits, credits := entry.Totals()
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			apperrors.ErrUnbalancedEntry, debits.StringFixed(domain.MoneyScale), credits.StringFixed(domain.MoneyScale))
	}
	return nil
}

// BalanceChanges computes the per-account signed delta of an entry.
func BalanceChanges(lines []domain.JournalLine, accounts map[string]domain.Account) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal, len(lines))
	for _, l := range lines {
		acc, ok := accounts[l.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, l.AccountID)
		}
		changes[l.AccountID] = changes[l.AccountID].Add(SignedDelta(acc.NormalBalance, l.DebitAmount, l.CreditAmount))
	}
	return changes, nil
}

// SwapSides returns copies of lines with debit and credit exchanged.
func SwapSides(lines []domain.JournalLine) []domain.JournalLine {
	swapped := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		swapped[i] = domain.JournalLine{
			LineNo:       l.LineNo,
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.CreditAmount,
			CreditAmount: l.DebitAmount,
		}
	}
	return swapped
}
