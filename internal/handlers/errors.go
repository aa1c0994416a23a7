package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const databaseErrorMessage = "Database error"

// respondError writes the plain-text response for a service error.
// notFoundMsg is used for apperrors.ErrNotFound.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	logger := middleware.GetLoggerFromContext(c)
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.String(http.StatusBadRequest, apperrors.Message(err))
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Info("Record not found", slog.String("error", err.Error()))
		c.String(http.StatusNotFound, notFoundMsg)
	default:
		logger.Error("Storage failure", slog.String("error", err.Error()))
		c.String(http.StatusInternalServerError, databaseErrorMessage)
	}
}

// respondBindingError reports a form or query binding failure as 400.
func respondBindingError(c *gin.Context, err error) {
	middleware.GetLoggerFromContext(c).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.String(http.StatusBadRequest, bindingErrorMessage(err))
}

// bindingErrorMessage turns validator errors into one readable line per field.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "numeric":
			msgs = append(msgs, fmt.Sprintf("%s must be a number", fe.Field()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}
