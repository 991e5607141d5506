package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves the financial statements.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs, now: time.Now}
}

// registerReportingRoutes registers the statement routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/trial-balance", h.getTrialBalance)
	rg.GET("/income-statement", h.getIncomeStatement)
	rg.GET("/balance-sheet", h.getBalanceSheet)
	rg.GET("/cash-flow", h.getCashFlow)
}

// asOf resolves as_of_date, defaulting to today in UTC.
func (h *reportingHandler) asOf(c *gin.Context) (time.Time, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.AsOfQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return time.Time{}, false
	}
	if q.AsOfDate == "" {
		y, m, d := h.now().UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	t, err := dto.ParseDate("as_of_date", q.AsOfDate)
	if err != nil {
		respondError(c, logger, err)
		return time.Time{}, false
	}
	return t, true
}

func (h *reportingHandler) period(c *gin.Context) (start, end time.Time, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return start, end, false
	}
	var err error
	if start, err = dto.ParseDate("start_date", q.StartDate); err != nil {
		respondError(c, logger, err)
		return start, end, false
	}
	if end, err = dto.ParseDate("end_date", q.EndDate); err != nil {
		respondError(c, logger, err)
		return start, end, false
	}
	return start, end, true
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Nonzero account balances as of a date with debit and credit totals.
// @Tags reports
// @Produce json
// @Param as_of_date query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	asOf, ok := h.asOf(c)
	if !ok {
		return
	}
	tb, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// getIncomeStatement godoc
// @Summary Income statement
// @Tags reports
// @Produce json
// @Param start_date query string true "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string true "Inclusive end (YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	start, end, ok := h.period(c)
	if !ok {
		return
	}
	is, err := h.reportingService.IncomeStatement(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err)
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(is))
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Assets, liabilities and equity as of a date. Equity includes current earnings.
// @Tags reports
// @Produce json
// @Param as_of_date query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 500 {object} dto.ErrorResponse "Accounting equation does not hold"
// @Router /balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	asOf, ok := h.asOf(c)
	if !ok {
		return
	}
	bs, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(bs))
}

// getCashFlow godoc
// @Summary Cash flow statement
// @Tags reports
// @Produce json
// @Param start_date query string true "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string true "Inclusive end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	start, end, ok := h.period(c)
	if !ok {
		return
	}
	cf, err := h.reportingService.CashFlowStatement(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowResponse(cf))
}
