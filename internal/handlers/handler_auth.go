package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/middleware"
	"github.com/SscSPs/money_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

const invalidCredentialsMessage = "Invalid credentials"

// authHandler serves the login and logout pages.
type authHandler struct {
	authService portssvc.AuthService
	analytics   *utils.PosthogClientWrapper
}

func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthService, loginLimit gin.HandlerFunc, analytics *utils.PosthogClientWrapper) {
	h := &authHandler{authService: authService, analytics: analytics}

	r.GET(middleware.LoginPath, h.showLogin)
	r.POST(middleware.LoginPath, loginLimit, h.login)
	r.GET("/logout", h.logout)
}

func (h *authHandler) showLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Error": ""})
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{"Error": invalidCredentialsMessage})
			return
		}
		logger.Error("Authentication failed", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := middleware.MarkAuthenticated(c); err != nil {
		logger.Error("Failed to save session", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.PosthogEvent(c, h.analytics, "login", nil)
	c.Redirect(http.StatusFound, "/")
}

func (h *authHandler) logout(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to clear session", slog.String("error", err.Error()))
	}
	c.Redirect(http.StatusFound, middleware.LoginPath)
}
