package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.postEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:transaction_group", h.getEntry)
		entries.POST("/:transaction_group/reverse", h.reverseEntry)
	}
}

// postEntry godoc
// @Summary Post a journal entry
// @Description Validates and atomically posts a balanced entry of two or more lines.
// @Tags journal
// @Accept  json
// @Produce  json
// @Param   entry body dto.PostEntryRequest true "Entry with its lines"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse "Validation, unbalanced or malformed lines"
// @Failure 422 {object} dto.ErrorResponse "Unknown or disabled account"
// @Failure 500 {object} dto.ErrorResponse
// @Router /journal-entries [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	entry, err := h.journalService.PostEntry(c.Request.Context(), req, middleware.ActorID(c))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Entries ordered by date then entry number, each with its lines. Pass limit to page with next_token.
// @Tags journal
// @Produce  json
// @Param start_date query string false "Inclusive start (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	entries, nextToken, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries, nextToken))
}

// getEntry godoc
// @Summary Get one journal entry
// @Tags journal
// @Produce  json
// @Param transaction_group path string true "Transaction group"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /journal-entries/{transaction_group} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entry, err := h.journalService.GetEntry(c.Request.Context(), c.Param("transaction_group"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseEntry godoc
// @Summary Reverse a journal entry
// @Description Posts a new entry with every line's sides swapped. The body is optional.
// @Tags journal
// @Accept  json
// @Produce  json
// @Param transaction_group path string true "Transaction group of the entry to reverse"
// @Param body body dto.ReverseEntryRequest false "Date and description overrides"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Failure 409 {object} dto.ErrorResponse "Already reversed, or itself a reversal"
// @Failure 422 {object} dto.ErrorResponse "An account of the entry is now disabled"
// @Router /journal-entries/{transaction_group}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReverseEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, logger, err)
		return
	}

	group := c.Param("transaction_group")
	entry, err := h.journalService.ReverseEntry(c.Request.Context(), group, req, middleware.ActorID(c))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Journal entry reversed", slog.String("reversal_of", group), slog.String("transaction_group", entry.TransactionGroup))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}
