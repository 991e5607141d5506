package handlers

import (
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvc
}

func registerReconciliationRoutes(rg *gin.RouterGroup, rs portssvc.ReconciliationSvc) {
	h := &reconciliationHandler{reconciliationService: rs}

	rg.POST("/reconciliation", h.saveReconciliation)
	rg.GET("/reconciliation", h.listReconciliations)
}

// saveReconciliation godoc
// @Summary Save a bank reconciliation
// @Description The reconciled balance and is_reconciled flag are always recomputed. A missing book_balance is read from the ledger.
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param reconciliation body dto.SaveReconciliationRequest true "Statement figures"
// @Success 201 {object} dto.ReconciliationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "Unknown bank account"
// @Router /reconciliation [post]
func (h *reconciliationHandler) saveReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	rec, err := h.reconciliationService.SaveReconciliation(c.Request.Context(), req, middleware.ActorID(c))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToReconciliationResponse(rec))
}

// listReconciliations godoc
// @Summary List reconciliations
// @Description Newest first, optionally for one bank account.
// @Tags reconciliation
// @Produce json
// @Param bank_account_id query string false "Bank account ID"
// @Success 200 {array} dto.ReconciliationResponse
// @Router /reconciliation [get]
func (h *reconciliationHandler) listReconciliations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListReconciliationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	var bankAccountID *string
	if id := strings.TrimSpace(params.BankAccountID); id != "" {
		bankAccountID = &id
	}
	recs, err := h.reconciliationService.ListReconciliations(c.Request.Context(), bankAccountID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListReconciliationResponse(recs))
}
