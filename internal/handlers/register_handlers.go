package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portsrepo "github.com/SscSPs/general_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/general_ledger/internal/core/ports/services"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/SscSPs/general_ledger/internal/platform/config"
	"github.com/SscSPs/general_ledger/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	m *metrics.Metrics,
	health portsrepo.HealthChecker,
) {
	configureBinding()

	r.GET("/health", healthHandler(health))
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	setupAccountingRoutes(r, cfg, services)
}

// setupAccountingRoutes configures the /api/accounting group and delegates to
// the per-component route registrations.
func setupAccountingRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	api := r.Group("/api/accounting")
	if cfg != nil && cfg.JWTSecret != "" {
		api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}

	registerAccountRoutes(api, services.Account)
	registerJournalRoutes(api, services.Journal)
	registerLedgerRoutes(api, services.Ledger)
	registerReportingRoutes(api, services.Reporting)
	registerReconciliationRoutes(api, services.Reconciliation)
}

// healthHandler godoc
// @Summary Liveness and storage check
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "storage unavailable"
// @Router /health [get]
func healthHandler(health portsrepo.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health == nil {
			c.String(http.StatusOK, "OK")
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := health.Ping(ctx); err != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Health check failed", slog.String("error", err.Error()))
			c.String(http.StatusServiceUnavailable, "storage unavailable")
			return
		}
		c.String(http.StatusOK, "OK")
	}
}
