package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := &ledgerHandler{ledgerService: ledgerService}
	rg.GET("/general-ledger/:account_id", h.getAccountLedger)
}

// getAccountLedger godoc
// @Summary Per-account running ledger
// @Description Lines within the range with a running balance that starts from the balance carried in before start_date.
// @Tags ledger
// @Produce  json
// @Param account_id path string true "Account ID"
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD)"
// @Success 200 {object} dto.AccountLedgerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /general-ledger/{account_id} [get]
func (h *ledgerHandler) getAccountLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q dto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}
	start, err := dto.ParseOptionalDate("start_date", q.StartDate)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	end, err := dto.ParseOptionalDate("end_date", q.EndDate)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	ledger, err := h.ledgerService.GetAccountLedger(c.Request.Context(), c.Param("account_id"), start, end)
	if err != nil {
		respondLookupError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountLedgerResponse(ledger))
}
