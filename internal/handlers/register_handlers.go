package handlers

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/middleware"
	"github.com/SscSPs/money_ledger/internal/platform/config"
	"github.com/SscSPs/money_ledger/internal/utils"
	"github.com/SscSPs/money_ledger/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes installs templates, static assets, the session gate and
// every page route on r.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) error {
	tmpl, err := NewTemplates()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	loginLimiter, err := middleware.NewLoginLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid login rate limit: %w", err)
	}

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowHeaders:     []string{"Origin", "Content-Type", middleware.MethodOverrideHeader},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(
		middleware.Sessions(cfg),
		middleware.RequireSession(),
		middleware.PosthogMiddleware(analytics, utils.AnalyticsDistinctID(cfg.AuthUsername)),
	)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("failed to open static assets: %w", err)
	}
	r.StaticFS("/public", http.FS(static))

	registerAuthRoutes(r, services.Auth, middleware.RateLimit(loginLimiter), analytics)
	registerHomeRoutes(r, services.Reporting)
	registerRecordRoutes(r, services.Record, analytics)
	registerReportingRoutes(r, services.Reporting)
	return nil
}
