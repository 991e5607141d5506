package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondError writes the standard error body for a service error.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	status := apperrors.StatusOf(err)
	writeError(c, logger, status, err)
}

// respondLookupError is respondError for handlers that resolve a path
// parameter: an unknown account there is a missing resource, not a bad
// reference inside a request body.
func respondLookupError(c *gin.Context, logger *slog.Logger, err error) {
	status := apperrors.StatusOf(err)
	if errors.Is(err, apperrors.ErrUnknownAccount) {
		status = http.StatusNotFound
	}
	writeError(c, logger, status, err)
}

// respondBindError reports a request that could not be decoded or bound.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request format: " + err.Error(),
		Kind:  apperrors.KindValidation,
	})
}

func writeError(c *gin.Context, logger *slog.Logger, status int, err error) {
	kind := apperrors.KindOf(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("kind", kind), slog.String("error", msg))
		if kind == apperrors.KindInternal {
			msg = "internal server error"
		}
	} else {
		logger.Warn("Request rejected", slog.String("kind", kind), slog.String("error", msg))
	}
	c.JSON(status, dto.ErrorResponse{Error: msg, Kind: kind})
}
