package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/handlers"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/SscSPs/general_ledger/internal/platform/config"
	"github.com/SscSPs/general_ledger/internal/platform/metrics"
	"github.com/SscSPs/general_ledger/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountingAPITestSuite drives the full router against the in-memory store.
type AccountingAPITestSuite struct {
	suite.Suite
	router *gin.Engine
	codes  map[string]string
}

func (s *AccountingAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	repos := memory.NewRepositoryProvider(memory.NewStore())
	m := metrics.New()
	svc := services.NewServiceContainer(repos, services.WithMetrics(m))

	s.router = gin.New()
	s.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.router.Use(middleware.RequestMetrics(m))
	handlers.RegisterRoutes(s.router, &config.Config{}, svc, m, repos.Health)

	w := s.call(http.MethodPost, "/api/accounting/initialize", nil)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var accounts []dto.AccountResponse
	s.decode(s.call(http.MethodGet, "/api/accounting/chart-of-accounts", nil), &accounts)
	s.codes = make(map[string]string, len(accounts))
	for _, a := range accounts {
		s.codes[a.Code] = a.AccountID
	}
}

func (s *AccountingAPITestSuite) call(method, url string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AccountingAPITestSuite) decode(w *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *AccountingAPITestSuite) requireKind(w *httptest.ResponseRecorder, status int, kind string) {
	s.Require().Equal(status, w.Code, w.Body.String())
	var body dto.ErrorResponse
	s.decode(w, &body)
	s.Equal(kind, body.Kind)
}

func (s *AccountingAPITestSuite) entry(date string, lines ...map[string]any) map[string]any {
	return map[string]any{"date": date, "description": "api test", "entries": lines}
}

func (s *AccountingAPITestSuite) line(code string, debit, credit string) map[string]any {
	return map[string]any{"account_id": s.codes[code], "debit_amount": debit, "credit_amount": credit}
}

func (s *AccountingAPITestSuite) postCapital() dto.JournalEntryResponse {
	w := s.call(http.MethodPost, "/api/accounting/journal-entries",
		s.entry("2025-01-05", s.line("1010", "5000", "0"), s.line("3000", "0", "5000")))
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.JournalEntryResponse
	s.decode(w, &resp)
	return resp
}

func (s *AccountingAPITestSuite) TestInitializeTwiceConflicts() {
	s.requireKind(s.call(http.MethodPost, "/api/accounting/initialize", nil),
		http.StatusConflict, apperrors.KindAlreadyInitialized)

	w := s.call(http.MethodPost, "/api/accounting/initialize?force=true", nil)
	s.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.InitializeChartResponse
	s.decode(w, &resp)
	s.Zero(resp.Created)
}

func (s *AccountingAPITestSuite) TestPostEntryAndBalances() {
	posted := s.postCapital()
	s.Equal(int64(1), posted.EntryNumber)
	s.True(posted.TotalDebit.Equal(decimal.NewFromInt(5000)))
	s.Len(posted.Lines, 2)

	var cash dto.AccountResponse
	s.decode(s.call(http.MethodGet, "/api/accounting/accounts/"+s.codes["1010"], nil), &cash)
	s.True(cash.CurrentBalance.Equal(decimal.NewFromInt(5000)))

	var got dto.JournalEntryResponse
	s.decode(s.call(http.MethodGet, "/api/accounting/journal-entries/"+posted.TransactionGroup, nil), &got)
	s.Equal(posted.EntryNumber, got.EntryNumber)
}

func (s *AccountingAPITestSuite) TestPostEntryRejections() {
	url := "/api/accounting/journal-entries"

	s.requireKind(s.call(http.MethodPost, url,
		s.entry("2025-01-05", s.line("1010", "100", "0"), s.line("4000", "0", "90"))),
		http.StatusBadRequest, apperrors.KindUnbalancedEntry)

	s.requireKind(s.call(http.MethodPost, url, s.entry("2025-01-05", s.line("1010", "100", "0"))),
		http.StatusBadRequest, apperrors.KindInsufficientLines)

	s.requireKind(s.call(http.MethodPost, url,
		s.entry("2025-01-05", s.line("1010", "100", "100"), s.line("4000", "0", "0"))),
		http.StatusBadRequest, apperrors.KindInvalidLine)

	unknown := map[string]any{"account_id": "no-such-account", "debit_amount": "100", "credit_amount": "0"}
	s.requireKind(s.call(http.MethodPost, url, s.entry("2025-01-05", unknown, s.line("4000", "0", "100"))),
		http.StatusUnprocessableEntity, apperrors.KindUnknownAccount)

	s.requireKind(s.call(http.MethodPost, url,
		s.entry("2025-01-05", s.line("1010", "10.005", "0"), s.line("4000", "0", "10.005"))),
		http.StatusBadRequest, apperrors.KindValidation)

	s.requireKind(s.call(http.MethodPost, url,
		s.entry("2025-01-05", s.line("1010", "1000000000000000000", "0"), s.line("4000", "0", "1000000000000000000"))),
		http.StatusBadRequest, apperrors.KindValidation)

	s.requireKind(s.call(http.MethodPost, url, `{"date":"2025-01-05","memo":"x","entries":[]}`),
		http.StatusBadRequest, apperrors.KindValidation)

	s.requireKind(s.call(http.MethodPost, url,
		s.entry("05/01/2025", s.line("1010", "1", "0"), s.line("4000", "0", "1"))),
		http.StatusBadRequest, apperrors.KindValidation)

	var list dto.ListEntriesResponse
	s.decode(s.call(http.MethodGet, url, nil), &list)
	s.Empty(list.Entries)
}

func (s *AccountingAPITestSuite) TestReverseEntry() {
	posted := s.postCapital()
	url := "/api/accounting/journal-entries/" + posted.TransactionGroup + "/reverse"

	w := s.call(http.MethodPost, url, nil)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var reversal dto.JournalEntryResponse
	s.decode(w, &reversal)
	s.Equal("reversal", reversal.ReferenceType)
	s.Require().NotNil(reversal.ReversalOf)
	s.Equal(posted.TransactionGroup, *reversal.ReversalOf)

	s.requireKind(s.call(http.MethodPost, url, map[string]any{"date": "2025-02-01"}),
		http.StatusConflict, apperrors.KindConflict)
	s.requireKind(s.call(http.MethodPost, "/api/accounting/journal-entries/nope/reverse", nil),
		http.StatusNotFound, apperrors.KindNotFound)

	var cash dto.AccountResponse
	s.decode(s.call(http.MethodGet, "/api/accounting/accounts/"+s.codes["1010"], nil), &cash)
	s.True(cash.CurrentBalance.IsZero())
}

func (s *AccountingAPITestSuite) TestListEntriesPaging() {
	s.postCapital()
	s.postCapital()

	var page dto.ListEntriesResponse
	s.decode(s.call(http.MethodGet, "/api/accounting/journal-entries?limit=1", nil), &page)
	s.Require().Len(page.Entries, 1)
	s.Require().NotNil(page.NextToken)

	var next dto.ListEntriesResponse
	s.decode(s.call(http.MethodGet, "/api/accounting/journal-entries?limit=1&next_token="+*page.NextToken, nil), &next)
	s.Require().Len(next.Entries, 1)
	s.Greater(next.Entries[0].EntryNumber, page.Entries[0].EntryNumber)

	s.requireKind(s.call(http.MethodGet, "/api/accounting/journal-entries?next_token=garbage", nil),
		http.StatusBadRequest, apperrors.KindValidation)
}

func (s *AccountingAPITestSuite) TestGeneralLedger() {
	s.postCapital()
	w := s.call(http.MethodPost, "/api/accounting/journal-entries",
		s.entry("2025-02-10", s.line("5100", "800", "0"), s.line("1010", "0", "800")))
	s.Require().Equal(http.StatusCreated, w.Code)

	var ledger dto.AccountLedgerResponse
	s.decode(s.call(http.MethodGet,
		"/api/accounting/general-ledger/"+s.codes["1010"]+"?start_date=2025-02-01&end_date=2025-02-28", nil), &ledger)
	s.True(ledger.OpeningBalance.Equal(decimal.NewFromInt(5000)))
	s.Require().Len(ledger.Entries, 1)
	s.True(ledger.Entries[0].RunningBalance.Equal(decimal.NewFromInt(4200)))
	s.True(ledger.EndingBalance.Equal(decimal.NewFromInt(4200)))

	s.requireKind(s.call(http.MethodGet, "/api/accounting/general-ledger/no-such-account", nil),
		http.StatusNotFound, apperrors.KindUnknownAccount)
	s.requireKind(s.call(http.MethodGet,
		"/api/accounting/general-ledger/"+s.codes["1010"]+"?start_date=2025-03-01&end_date=2025-02-01", nil),
		http.StatusBadRequest, apperrors.KindValidation)
}

func (s *AccountingAPITestSuite) TestStatements() {
	s.postCapital()
	w := s.call(http.MethodPost, "/api/accounting/journal-entries",
		s.entry("2025-01-20", s.line("1010", "1200", "0"), s.line("4000", "0", "1200")))
	s.Require().Equal(http.StatusCreated, w.Code)

	var tb dto.TrialBalanceResponse
	s.decode(s.call(http.MethodGet, "/api/accounting/trial-balance?as_of_date=2025-12-31", nil), &tb)
	s.True(tb.IsBalanced)
	s.True(tb.TotalDebits.Equal(decimal.NewFromInt(6200)))
	s.Len(tb.Rows, 3)

	var is dto.IncomeStatementResponse
	s.decode(s.call(http.MethodGet, "/api/accounting/income-statement?start_date=2025-01-01&end_date=2025-01-31", nil), &is)
	s.True(is.NetIncome.Equal(decimal.NewFromInt(1200)))

	var bs dto.BalanceSheetResponse
	s.decode(s.call(http.MethodGet, "/api/accounting/balance-sheet?as_of_date=2025-01-31", nil), &bs)
	s.True(bs.Assets.Total.Equal(decimal.NewFromInt(6200)))
	s.True(bs.TotalLiabilitiesAndEquity.Equal(bs.Assets.Total))

	var cf dto.CashFlowResponse
	s.decode(s.call(http.MethodGet, "/api/accounting/cash-flow?start_date=2025-01-01&end_date=2025-01-31", nil), &cf)
	s.True(cf.OpeningCash.IsZero())
	s.True(cf.ClosingCash.Equal(decimal.NewFromInt(6200)))
	s.True(cf.NetChangeInCash.Equal(decimal.NewFromInt(6200)))

	s.requireKind(s.call(http.MethodGet, "/api/accounting/income-statement?start_date=2025-01-01", nil),
		http.StatusBadRequest, apperrors.KindValidation)
	s.requireKind(s.call(http.MethodGet, "/api/accounting/trial-balance?as_of_date=yesterday", nil),
		http.StatusBadRequest, apperrors.KindValidation)
}

func (s *AccountingAPITestSuite) TestReconciliation() {
	s.postCapital()
	url := "/api/accounting/reconciliation"

	w := s.call(http.MethodPost, url, map[string]any{
		"bank_account_id":        s.codes["1010"],
		"reconciliation_date":    "2025-01-31",
		"bank_statement_balance": "4990",
		"outstanding_deposits":   "0",
		"outstanding_checks":     "0",
		"bank_fees":              "10",
		"reconciled_balance":     "1",
		"is_reconciled":          false,
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var rec dto.ReconciliationResponse
	s.decode(w, &rec)
	s.True(rec.BookBalance.Equal(decimal.NewFromInt(5000)))
	s.True(rec.ReconciledBalance.Equal(decimal.NewFromInt(4990)))
	s.True(rec.IsReconciled)

	s.requireKind(s.call(http.MethodPost, url, map[string]any{
		"bank_account_id":        "no-such-account",
		"reconciliation_date":    "2025-01-31",
		"bank_statement_balance": "1",
	}), http.StatusUnprocessableEntity, apperrors.KindUnknownAccount)

	s.requireKind(s.call(http.MethodPost, url, map[string]any{
		"bank_account_id":        s.codes["4000"],
		"reconciliation_date":    "2025-01-31",
		"bank_statement_balance": "1",
	}), http.StatusBadRequest, apperrors.KindValidation)

	var list []dto.ReconciliationResponse
	s.decode(s.call(http.MethodGet, url+"?bank_account_id="+s.codes["1010"], nil), &list)
	s.Require().Len(list, 1)
	s.Equal(rec.ReconciliationID, list[0].ReconciliationID)
}

func (s *AccountingAPITestSuite) TestHealthAndMetrics() {
	s.Equal(http.StatusOK, s.call(http.MethodGet, "/health", nil).Code)

	s.postCapital()
	w := s.call(http.MethodGet, "/metrics", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `gl_journal_entries_posted_total{reference_type="manual"} 1`)
	s.Contains(w.Body.String(), "gl_http_requests_total")
}

func TestAccountingAPI(t *testing.T) {
	suite.Run(t, new(AccountingAPITestSuite))
}
