package services

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// ReportingService defines the aggregate views over the ledger.
type ReportingService interface {
	// Summary returns all-time income, expenditure and balance.
	Summary(ctx context.Context) (*domain.Summary, error)

	// Report returns the records and totals selected by params. Without a
	// complete date range the store is not queried and the report is empty.
	Report(ctx context.Context, params domain.ReportParams) (*domain.Report, error)
}
