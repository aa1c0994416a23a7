package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	recordRepo portsrepo.RecordReader
}

// NewReportingService creates a new reporting service reading from repo.
func NewReportingService(repo portsrepo.RecordReader) portssvc.ReportingService {
	return &reportingService{recordRepo: repo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) Summary(ctx context.Context) (*domain.Summary, error) {
	records, err := s.recordRepo.ListRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load records for summary")
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}
	summary := accounting.Summarize(records)
	return &summary, nil
}

func (s *reportingService) Report(ctx context.Context, params domain.ReportParams) (*domain.Report, error) {
	report := &domain.Report{
		Params:      params,
		Records:     []domain.Record{},
		Income:      decimal.Zero,
		Expenditure: decimal.Zero,
		SumSource:   decimal.Zero,
	}
	if !params.HasRange() {
		return report, nil
	}

	rows, err := s.recordRepo.ListRecordsByDateRange(ctx, *params.From, *params.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to load records for report",
			slog.String("from", params.From.Format(domain.DateLayout)),
			slog.String("to", params.To.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	report.Income = accounting.SumByType(rows, domain.Income)
	report.Expenditure = accounting.SumByType(rows, domain.Expenditure)

	filtered, sum := accounting.FilterAndSum(rows, params.SourceType, params.SourceName)
	if filtered != nil {
		report.Records = filtered
	}
	report.SumSource = sum

	s.LogDebug(ctx, "Report built", slog.Int("in_range", len(rows)), slog.Int("shown", len(report.Records)))
	return report, nil
}
