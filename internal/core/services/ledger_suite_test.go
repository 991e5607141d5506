package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/core/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/SscSPs/general_ledger/internal/platform/metrics"
	"github.com/SscSPs/general_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(month time.Month, dd int) time.Time { return time.Date(2025, month, dd, 0, 0, 0, 0, time.UTC) }

type line struct {
	code   string
	debit  string
	credit string
}

func dr(code, amount string) line { return line{code: code, debit: amount, credit: "0"} }
func cr(code, amount string) line { return line{code: code, debit: "0", credit: amount} }

// LedgerTestSuite runs the services against the in-memory store with the
// standard chart seeded.
type LedgerTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	svc   *portssvc.ServiceContainer
	codes map[string]string
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.svc = services.NewServiceContainer(memory.NewRepositoryProvider(s.store),
		services.WithMetrics(metrics.New()),
		services.WithClock(func() time.Time { return fixedNow }),
	)
	created, err := s.svc.Account.InitializeStandardChart(s.ctx, false, domain.SystemUserID)
	s.Require().NoError(err)
	s.codes = make(map[string]string, len(created))
	for _, acc := range created {
		s.codes[acc.Code] = acc.AccountID
	}
}

func (s *LedgerTestSuite) request(date time.Time, lines ...line) dto.PostEntryRequest {
	req := dto.PostEntryRequest{Date: date.Format(domain.DateLayout), Description: "test entry"}
	for _, l := range lines {
		id, ok := s.codes[l.code]
		if !ok {
			id = l.code
		}
		req.Entries = append(req.Entries, dto.JournalLineRequest{
			AccountID:    id,
			DebitAmount:  d(l.debit),
			CreditAmount: d(l.credit),
		})
	}
	return req
}

func (s *LedgerTestSuite) post(date time.Time, lines ...line) *domain.JournalEntry {
	entry, err := s.svc.Journal.PostEntry(s.ctx, s.request(date, lines...), "clerk")
	s.Require().NoError(err)
	return entry
}

func (s *LedgerTestSuite) balances() map[string]decimal.Decimal {
	accounts, err := s.svc.Account.ListAccounts(s.ctx, domain.AccountFilter{IncludeInactive: true})
	s.Require().NoError(err)
	out := make(map[string]decimal.Decimal, len(accounts))
	for _, acc := range accounts {
		out[acc.Code] = acc.CurrentBalance
	}
	return out
}

func (s *LedgerTestSuite) balance(code string) decimal.Decimal {
	acc, err := s.svc.Account.GetAccount(s.ctx, s.codes[code])
	s.Require().NoError(err)
	return acc.CurrentBalance
}

func (s *LedgerTestSuite) assertBalancesUnchanged(before map[string]decimal.Decimal) {
	after := s.balances()
	s.Require().Len(after, len(before))
	for code, bal := range before {
		s.True(bal.Equal(after[code]), "balance of %s changed from %s to %s", code, bal, after[code])
	}
}

// --- Journal Engine ---

func (s *LedgerTestSuite) TestPostEntry_UnbalancedIsRejectedWithoutSideEffects() {
	before := s.balances()

	_, err := s.svc.Journal.PostEntry(s.ctx, s.request(day(3, 1), dr("1010", "100"), cr("4000", "99.99")), "clerk")

	s.ErrorIs(err, apperrors.ErrUnbalancedEntry)
	s.Contains(err.Error(), "debits sum is 100.00 and credits sum is 99.99")
	s.assertBalancesUnchanged(before)
}

func (s *LedgerTestSuite) TestPostEntry_UnknownAccountLeavesNoTrace() {
	before := s.balances()

	_, err := s.svc.Journal.PostEntry(s.ctx, s.request(day(3, 1), dr("1010", "50"), cr("no-such-account", "50")), "clerk")

	s.ErrorIs(err, apperrors.ErrUnknownAccount)
	s.assertBalancesUnchanged(before)
	entries, _, err := s.svc.Journal.ListEntries(s.ctx, dto.ListEntriesParams{})
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *LedgerTestSuite) TestPostEntry_SingleLineIsInsufficient() {
	_, err := s.svc.Journal.PostEntry(s.ctx, s.request(day(3, 1), dr("1010", "10")), "clerk")
	s.ErrorIs(err, apperrors.ErrInsufficientLines)
}

func (s *LedgerTestSuite) TestPostEntry_ValidationOrder() {
	// A single line naming an unknown account is reported as too few lines.
	_, err := s.svc.Journal.PostEntry(s.ctx, s.request(day(3, 1), dr("ghost", "10")), "clerk")
	s.ErrorIs(err, apperrors.ErrInsufficientLines)

	// An unknown account wins over a malformed line.
	_, err = s.svc.Journal.PostEntry(s.ctx, s.request(day(3, 1), line{code: "1010", debit: "5", credit: "5"}, cr("ghost", "5")), "clerk")
	s.ErrorIs(err, apperrors.ErrUnknownAccount)

	// A malformed line wins over an imbalance.
	_, err = s.svc.Journal.PostEntry(s.ctx, s.request(day(3, 1), dr("1010", "-5"), cr("4000", "7")), "clerk")
	s.ErrorIs(err, apperrors.ErrInvalidLine)
}

func (s *LedgerTestSuite) TestPostEntry_InvalidLines() {
	tests := []struct {
		name  string
		lines []line
	}{
		{name: "both sides", lines: []line{{code: "1010", debit: "5", credit: "5"}, cr("4000", "0")}},
		{name: "neither side", lines: []line{dr("1010", "0"), cr("4000", "0")}},
		{name: "negative", lines: []line{dr("1010", "-5"), cr("4000", "-5")}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Journal.PostEntry(s.ctx, s.request(day(3, 1), tt.lines...), "clerk")
			s.ErrorIs(err, apperrors.ErrInvalidLine)
		})
	}
}

func (s *LedgerTestSuite) TestPostEntry_BoundaryValidation() {
	req := s.request(day(3, 1), dr("1010", "10.005"), cr("4000", "10.005"))
	_, err := s.svc.Journal.PostEntry(s.ctx, req, "clerk")
	s.ErrorIs(err, apperrors.ErrValidation)

	req = s.request(day(3, 1), dr("1010", "10"), cr("4000", "10"))
	req.Date = "01/03/2025"
	_, err = s.svc.Journal.PostEntry(s.ctx, req, "clerk")
	s.ErrorIs(err, apperrors.ErrValidation)

	req = s.request(day(3, 1), dr("1010", "1000000000000000000"), cr("4000", "1000000000000000000"))
	_, err = s.svc.Journal.PostEntry(s.ctx, req, "clerk")
	s.ErrorIs(err, apperrors.ErrValidation)

	req.Date = "2025-03-01"
	req.ReferenceType = "barter"
	_, err = s.svc.Journal.PostEntry(s.ctx, req, "clerk")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerTestSuite) TestPostEntry_UpdatesBalancesAndNumbers() {
	first := s.post(day(3, 1), dr("1010", "250.50"), cr("4000", "250.50"))
	second := s.post(day(3, 2), dr("5100", "100"), cr("1010", "100"))

	s.Equal(int64(1), first.EntryNumber)
	s.Equal(int64(2), second.EntryNumber)
	s.Equal(domain.RefManual, first.ReferenceType)
	s.True(s.balance("1010").Equal(d("150.50")))
	s.True(s.balance("4000").Equal(d("250.50")))
	s.True(s.balance("5100").Equal(d("100")))

	got, err := s.svc.Journal.GetEntry(s.ctx, first.TransactionGroup)
	s.Require().NoError(err)
	s.Len(got.Lines, 2)
	s.Equal(1, got.Lines[0].LineNo)
}

func (s *LedgerTestSuite) TestPostEntry_DisabledAccountIsRejected() {
	_, err := s.svc.Account.DisableAccount(s.ctx, s.codes["5900"], "clerk")
	s.Require().NoError(err)

	_, err = s.svc.Journal.PostEntry(s.ctx, s.request(day(3, 1), dr("5900", "10"), cr("1010", "10")), "clerk")

	s.ErrorIs(err, apperrors.ErrUnknownAccount)
}

func (s *LedgerTestSuite) TestReverseEntry() {
	sale := s.post(day(3, 1), dr("1010", "80"), cr("4000", "80"))

	reversal, err := s.svc.Journal.ReverseEntry(s.ctx, sale.TransactionGroup, dto.ReverseEntryRequest{Date: "2025-03-04"}, "clerk")
	s.Require().NoError(err)
	s.Equal(domain.RefReversal, reversal.ReferenceType)
	s.Require().NotNil(reversal.ReversalOf)
	s.Equal(sale.TransactionGroup, *reversal.ReversalOf)
	s.True(reversal.Date.Equal(day(3, 4)))
	s.True(reversal.Lines[0].CreditAmount.Equal(d("80")))
	s.True(s.balance("1010").IsZero())
	s.True(s.balance("4000").IsZero())

	_, err = s.svc.Journal.ReverseEntry(s.ctx, sale.TransactionGroup, dto.ReverseEntryRequest{}, "clerk")
	s.ErrorIs(err, apperrors.ErrConflict)

	_, err = s.svc.Journal.ReverseEntry(s.ctx, reversal.TransactionGroup, dto.ReverseEntryRequest{}, "clerk")
	s.ErrorIs(err, apperrors.ErrConflict)

	_, err = s.svc.Journal.ReverseEntry(s.ctx, "missing", dto.ReverseEntryRequest{}, "clerk")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerTestSuite) TestListEntries_FiltersAndPages() {
	for dd := 1; dd <= 5; dd++ {
		s.post(day(3, dd), dr("1010", "1"), cr("4000", "1"))
	}

	ranged, _, err := s.svc.Journal.ListEntries(s.ctx, dto.ListEntriesParams{StartDate: "2025-03-02", EndDate: "2025-03-04"})
	s.Require().NoError(err)
	s.Len(ranged, 3)

	var seen []int64
	params := dto.ListEntriesParams{Limit: 2}
	for page := 0; page < 5; page++ {
		entries, next, err := s.svc.Journal.ListEntries(s.ctx, params)
		s.Require().NoError(err)
		for _, e := range entries {
			seen = append(seen, e.EntryNumber)
		}
		if next == nil {
			break
		}
		params.NextToken = *next
	}
	s.Equal([]int64{1, 2, 3, 4, 5}, seen)

	_, _, err = s.svc.Journal.ListEntries(s.ctx, dto.ListEntriesParams{NextToken: "%%%"})
	s.ErrorIs(err, apperrors.ErrValidation)
	_, _, err = s.svc.Journal.ListEntries(s.ctx, dto.ListEntriesParams{StartDate: "2025-03-05", EndDate: "2025-03-01"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

// --- Ledger Projector ---

func (s *LedgerTestSuite) TestAccountLedger_RunningBalances() {
	s.post(day(3, 1), dr("1010", "500"), cr("4000", "500"))
	s.post(day(3, 5), dr("5100", "200"), cr("1010", "200"))

	full, err := s.svc.Ledger.GetAccountLedger(s.ctx, s.codes["1010"], nil, nil)
	s.Require().NoError(err)
	s.Require().Len(full.Rows, 2)
	s.True(full.Rows[0].RunningBalance.Equal(d("500")))
	s.True(full.Rows[1].RunningBalance.Equal(d("300")))
	s.True(full.EndingBalance.Equal(d("300")))

	start := day(3, 2)
	windowed, err := s.svc.Ledger.GetAccountLedger(s.ctx, s.codes["1010"], &start, nil)
	s.Require().NoError(err)
	s.True(windowed.OpeningBalance.Equal(d("500")))
	s.Require().Len(windowed.Rows, 1)
	s.True(windowed.Rows[0].RunningBalance.Equal(d("300")))

	bal, err := s.svc.Ledger.BalanceAsOf(s.ctx, s.codes["1010"], day(3, 3))
	s.Require().NoError(err)
	s.True(bal.Equal(d("500")))

	_, err = s.svc.Ledger.GetAccountLedger(s.ctx, "missing", nil, nil)
	s.ErrorIs(err, apperrors.ErrUnknownAccount)
}

// --- Statement Builder ---

func (s *LedgerTestSuite) TestTrialBalance_AlwaysBalances() {
	s.post(day(3, 1), dr("1010", "1000"), cr("3000", "1000"))
	s.post(day(3, 2), dr("1200", "400"), cr("2000", "400"))
	s.post(day(3, 3), dr("1010", "300"), dr("1100", "200"), cr("4000", "500"))
	s.post(day(3, 4), dr("5000", "250"), cr("1200", "250"))
	s.post(day(3, 5), dr("2000", "150"), cr("1010", "150"))

	tb, err := s.svc.Reporting.TrialBalance(s.ctx, day(3, 31))
	s.Require().NoError(err)
	s.True(tb.IsBalanced)
	s.True(tb.TotalDebits.Equal(tb.TotalCredits))
	s.True(tb.TotalDebits.Equal(d("1750")))

	early, err := s.svc.Reporting.TrialBalance(s.ctx, day(3, 1))
	s.Require().NoError(err)
	s.Len(early.Rows, 2)
}

func (s *LedgerTestSuite) TestTrialBalance_ImbalanceIsLoggedAsFatal() {
	var buf bytes.Buffer
	ctx := middleware.WithLogger(s.ctx, slog.New(slog.NewJSONHandler(&buf, nil)))

	// A one-sided entry written straight to storage breaks the ledger identity.
	broken := &domain.JournalEntry{
		TransactionGroup: "broken",
		Date:             day(3, 1),
		Description:      "one-sided",
		ReferenceType:    domain.RefManual,
		Lines: []domain.JournalLine{
			{LineID: "broken-1", TransactionGroup: "broken", LineNo: 1, AccountID: s.codes["1010"], DebitAmount: d("25"), CreditAmount: decimal.Zero},
		},
		CreatedAt: fixedNow,
		CreatedBy: "clerk",
	}
	s.Require().NoError(s.store.SaveEntry(s.ctx, broken, map[string]decimal.Decimal{s.codes["1010"]: d("25")}))

	tb, err := s.svc.Reporting.TrialBalance(ctx, day(3, 31))
	s.Require().NoError(err)
	s.False(tb.IsBalanced)

	var found map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var rec map[string]any
		s.Require().NoError(json.Unmarshal(raw, &rec))
		if rec["msg"] == "Ledger consistency check failed" {
			found = rec
		}
	}
	s.Require().NotNil(found, "no consistency log line in %s", buf.String())
	s.Equal("ERROR", found["level"])
	s.Equal("fatal", found["severity"])
	s.Equal("trial_balance", found["report"])
	s.Contains(found["error"], "ledger consistency violation")
}

func (s *LedgerTestSuite) TestBalanceSheet_AccountingEquation() {
	s.post(day(3, 1), dr("1010", "600"), cr("3000", "600"))
	s.post(day(3, 2), dr("1020", "400"), cr("2500", "400"))

	bs, err := s.svc.Reporting.BalanceSheet(s.ctx, day(3, 31))
	s.Require().NoError(err)
	s.True(bs.Assets.Total.Equal(d("1000")))
	s.True(bs.Liabilities.Total.Equal(d("400")))
	s.True(bs.Equity.Total.Equal(d("600")))
	s.True(bs.Assets.Total.Equal(bs.TotalLiabilitiesAndEquity))
}

func (s *LedgerTestSuite) TestBalanceSheet_IncludesCurrentEarnings() {
	s.post(day(3, 1), dr("1010", "900"), cr("4000", "900"))
	s.post(day(3, 2), dr("5200", "300"), cr("1010", "300"))

	bs, err := s.svc.Reporting.BalanceSheet(s.ctx, day(3, 31))
	s.Require().NoError(err)
	s.Require().Len(bs.Equity.Items, 1)
	s.Equal("Current Earnings", bs.Equity.Items[0].AccountName)
	s.True(bs.Equity.Items[0].Amount.Equal(d("600")))
	s.True(bs.Assets.Total.Equal(bs.TotalLiabilitiesAndEquity))
}

func (s *LedgerTestSuite) TestIncomeStatement_RespectsRange() {
	s.post(day(2, 28), dr("1010", "70"), cr("4000", "70"))
	s.post(day(3, 10), dr("1010", "120"), cr("4000", "120"))
	s.post(day(3, 15), dr("5300", "45"), cr("1010", "45"))
	s.post(day(4, 1), dr("1010", "999"), cr("4200", "999"))

	is, err := s.svc.Reporting.IncomeStatement(s.ctx, day(3, 1), day(3, 31))
	s.Require().NoError(err)
	s.True(is.Revenue.Total.Equal(d("120")))
	s.True(is.Expenses.Total.Equal(d("45")))
	s.True(is.NetIncome.Equal(d("75")))

	_, err = s.svc.Reporting.IncomeStatement(s.ctx, day(3, 31), day(3, 1))
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerTestSuite) TestCashFlow_CategoriesExplainNetChange() {
	s.post(day(2, 1), dr("1020", "5000"), cr("3000", "5000"))
	s.post(day(3, 2), dr("1010", "800"), cr("4000", "800"))
	s.post(day(3, 3), dr("5100", "300"), cr("1010", "300"))
	s.post(day(3, 4), dr("1500", "1200"), cr("1020", "1200"))
	s.post(day(3, 5), dr("1020", "700"), cr("2500", "700"))
	s.post(day(3, 6), dr("1010", "100"), cr("1020", "100"))

	cf, err := s.svc.Reporting.CashFlowStatement(s.ctx, day(3, 1), day(3, 31))
	s.Require().NoError(err)
	s.True(cf.OperatingActivities.Total.Equal(d("500")))
	s.True(cf.InvestingActivities.Total.Equal(d("-1200")))
	s.True(cf.FinancingActivities.Total.Equal(d("700")))
	s.True(cf.NetChangeInCash.Equal(d("0")))
	s.True(cf.OpeningCash.Equal(d("5000")))
	s.True(cf.ClosingCash.Equal(d("5000")))
}

// --- Account Registry ---

func (s *LedgerTestSuite) TestInitializeStandardChart_SecondCallFails() {
	before, err := s.svc.Account.ListAccounts(s.ctx, domain.AccountFilter{IncludeInactive: true})
	s.Require().NoError(err)

	_, err = s.svc.Account.InitializeStandardChart(s.ctx, false, "clerk")
	s.ErrorIs(err, apperrors.ErrAlreadyInitialized)

	after, err := s.svc.Account.ListAccounts(s.ctx, domain.AccountFilter{IncludeInactive: true})
	s.Require().NoError(err)
	s.Equal(before, after)

	created, err := s.svc.Account.InitializeStandardChart(s.ctx, true, "clerk")
	s.Require().NoError(err)
	s.Empty(created)
}

func (s *LedgerTestSuite) TestCreateAccount_DuplicateCode() {
	_, err := s.svc.Account.CreateAccount(s.ctx, dto.CreateAccountRequest{Code: "1010", Name: "Petty Cash", AccountType: "Asset"}, "clerk")
	s.ErrorIs(err, apperrors.ErrValidation)
}

// --- Reconciliation Tracker ---

func (s *LedgerTestSuite) TestSaveReconciliation_Formula() {
	book := d("1000")
	req := dto.SaveReconciliationRequest{
		BankAccountID:        s.codes["1020"],
		ReconciliationDate:   "2025-03-31",
		BankStatementBalance: d("1015"),
		BookBalance:          &book,
		OutstandingDeposits:  d("50"),
		OutstandingChecks:    d("30"),
		BankFees:             d("5"),
	}
	rec, err := s.svc.Reconciliation.SaveReconciliation(s.ctx, req, "clerk")
	s.Require().NoError(err)
	s.True(rec.ReconciledBalance.Equal(d("1015")))
	s.True(rec.IsReconciled)
	s.Equal("1020", rec.BankAccountCode)

	req.BankStatementBalance = d("1016")
	rec, err = s.svc.Reconciliation.SaveReconciliation(s.ctx, req, "clerk")
	s.Require().NoError(err)
	s.False(rec.IsReconciled)

	history, err := s.svc.Reconciliation.ListReconciliations(s.ctx, &req.BankAccountID)
	s.Require().NoError(err)
	s.Len(history, 2)
}

func (s *LedgerTestSuite) TestSaveReconciliation_BookBalanceFromLedger() {
	s.post(day(3, 1), dr("1020", "750"), cr("3000", "750"))
	s.post(day(4, 2), dr("1020", "100"), cr("4000", "100"))

	rec, err := s.svc.Reconciliation.SaveReconciliation(s.ctx, dto.SaveReconciliationRequest{
		BankAccountID:        s.codes["1020"],
		ReconciliationDate:   "2025-03-31",
		BankStatementBalance: d("750"),
	}, "clerk")
	s.Require().NoError(err)
	s.True(rec.BookBalance.Equal(d("750")))
	s.True(rec.IsReconciled)
}

func (s *LedgerTestSuite) TestSaveReconciliation_Rejections() {
	base := dto.SaveReconciliationRequest{ReconciliationDate: "2025-03-31", BankStatementBalance: d("0")}

	req := base
	req.BankAccountID = "missing"
	_, err := s.svc.Reconciliation.SaveReconciliation(s.ctx, req, "clerk")
	s.ErrorIs(err, apperrors.ErrUnknownAccount)

	req.BankAccountID = s.codes["1100"]
	_, err = s.svc.Reconciliation.SaveReconciliation(s.ctx, req, "clerk")
	s.ErrorIs(err, apperrors.ErrValidation)

	req.BankAccountID = s.codes["1020"]
	req.BankFees = d("-1")
	_, err = s.svc.Reconciliation.SaveReconciliation(s.ctx, req, "clerk")
	s.ErrorIs(err, apperrors.ErrValidation)

	req = base
	req.BankAccountID = s.codes["1020"]
	req.BankStatementBalance = d("1000000000000000000")
	_, err = s.svc.Reconciliation.SaveReconciliation(s.ctx, req, "clerk")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Account.DisableAccount(s.ctx, s.codes["1020"], "clerk")
	s.Require().NoError(err)
	req.BankStatementBalance = d("0")
	_, err = s.svc.Reconciliation.SaveReconciliation(s.ctx, req, "clerk")
	s.ErrorIs(err, apperrors.ErrUnknownAccount)

	history, err := s.svc.Reconciliation.ListReconciliations(s.ctx, &req.BankAccountID)
	s.Require().NoError(err)
	s.Empty(history)
}
