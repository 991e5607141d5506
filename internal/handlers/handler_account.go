package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	rg.POST("/initialize", h.initializeChart)
	rg.GET("/chart-of-accounts", h.listAccounts)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:account_id", h.getAccount)
		accounts.POST("/:account_id/disable", h.disableAccount)
	}
}

// initializeChart godoc
// @Summary Seed the standard chart of accounts
// @Description Creates the standard accounts. Fails when any account exists unless force=true, which adds only missing codes.
// @Tags accounts
// @Produce json
// @Param force query bool false "Add missing standard accounts to a non-empty chart"
// @Success 201 {object} dto.InitializeChartResponse
// @Failure 409 {object} dto.ErrorResponse "Chart already initialized"
// @Failure 500 {object} dto.ErrorResponse
// @Router /initialize [post]
func (h *accountHandler) initializeChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.InitializeChartParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	created, err := h.accountService.InitializeStandardChart(c.Request.Context(), params.Force, middleware.ActorID(c))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Chart of accounts initialized", slog.Int("created", len(created)), slog.Bool("force", params.Force))
	c.JSON(http.StatusCreated, dto.InitializeChartResponse{
		Created:  len(created),
		Accounts: dto.ToListAccountResponse(created),
	})
}

// createAccount godoc
// @Summary Create a new account
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, middleware.ActorID(c))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts with current balances
// @Description Served at both /chart-of-accounts and /accounts. Sorted by code.
// @Tags accounts
// @Produce  json
// @Param account_type query string false "Asset, Liability, Equity, Income or Expense"
// @Param include_inactive query bool false "Include disabled accounts"
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chart-of-accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	filter := domain.AccountFilter{IncludeInactive: params.IncludeInactive}
	if strings.TrimSpace(params.AccountType) != "" {
		accountType, ok := domain.ParseAccountType(params.AccountType)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "unknown account_type " + params.AccountType,
				Kind:  apperrors.KindValidation,
			})
			return
		}
		filter.AccountType = &accountType
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// getAccount godoc
// @Summary Get one account
// @Tags accounts
// @Produce  json
// @Param   account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	account, err := h.accountService.GetAccount(c.Request.Context(), c.Param("account_id"))
	if err != nil {
		respondLookupError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// disableAccount godoc
// @Summary Soft-disable an account
// @Description Disabled accounts keep their history but reject new postings. Disabling twice is a no-op.
// @Tags accounts
// @Produce  json
// @Param   account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Router /accounts/{account_id}/disable [post]
func (h *accountHandler) disableAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	account, err := h.accountService.DisableAccount(c.Request.Context(), c.Param("account_id"), middleware.ActorID(c))
	if err != nil {
		respondLookupError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
