package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
)

// recordService implements the RecordSvcFacade interface
type recordService struct {
	BaseService
	recordRepo portsrepo.RecordRepositoryFacade
}

// NewRecordService creates a new record service backed by repo.
func NewRecordService(repo portsrepo.RecordRepositoryFacade) portssvc.RecordSvcFacade {
	return &recordService{recordRepo: repo}
}

var _ portssvc.RecordSvcFacade = (*recordService)(nil)

// buildRecord keeps the text fields as submitted and validates before
// rounding, so a negative amount too small to survive rounding is still rejected.
func buildRecord(id int64, recordType domain.RecordType, req dto.RecordRequest) (domain.Record, error) {
	record := domain.Record{
		ID:          id,
		Type:        recordType,
		Source:      req.Source,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	}
	if err := record.Validate(); err != nil {
		return domain.Record{}, err
	}
	record.Amount = record.Amount.Round(domain.AmountPrecision)
	return record, nil
}

func (s *recordService) CreateRecord(ctx context.Context, recordType domain.RecordType, req dto.RecordRequest) (*domain.Record, error) {
	record, err := buildRecord(0, recordType, req)
	if err != nil {
		s.LogDebug(ctx, "Rejected record", slog.String("type", recordType.String()), slog.String("error", err.Error()))
		return nil, err
	}

	id, err := s.recordRepo.SaveRecord(ctx, record)
	if err != nil {
		s.LogError(ctx, err, "Failed to save record", slog.String("type", recordType.String()))
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	record.ID = id

	s.LogInfo(ctx, "Record created", slog.Int64("record_id", id), slog.String("type", recordType.String()))
	return &record, nil
}

func (s *recordService) UpdateRecord(ctx context.Context, id int64, recordType domain.RecordType, req dto.RecordRequest) error {
	record, err := buildRecord(id, recordType, req)
	if err != nil {
		return err
	}

	if err := s.recordRepo.UpdateRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to update record", slog.Int64("record_id", id))
		return fmt.Errorf("failed to update record: %w", err)
	}
	s.LogInfo(ctx, "Record updated", slog.Int64("record_id", id), slog.String("type", recordType.String()))
	return nil
}

func (s *recordService) DeleteRecord(ctx context.Context, id int64) error {
	if err := s.recordRepo.DeleteRecord(ctx, id); err != nil {
		s.LogError(ctx, err, "Failed to delete record", slog.Int64("record_id", id))
		return fmt.Errorf("failed to delete record: %w", err)
	}
	s.LogInfo(ctx, "Record deleted", slog.Int64("record_id", id))
	return nil
}

func (s *recordService) GetRecord(ctx context.Context, id int64, recordType domain.RecordType) (*domain.Record, error) {
	record, err := s.recordRepo.FindRecordByIDAndType(ctx, id, recordType)
	if err != nil {
		return nil, fmt.Errorf("failed to get record %d: %w", id, err)
	}
	return record, nil
}

func (s *recordService) ListRecords(ctx context.Context) ([]domain.Record, error) {
	records, err := s.recordRepo.ListRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records")
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	if records == nil {
		return []domain.Record{}, nil
	}
	return records, nil
}

func (s *recordService) ListRecordsByType(ctx context.Context, recordType domain.RecordType) ([]domain.Record, error) {
	records, err := s.recordRepo.ListRecordsByType(ctx, recordType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records by type", slog.String("type", recordType.String()))
		return nil, fmt.Errorf("failed to list %s records: %w", recordType, err)
	}
	if records == nil {
		return []domain.Record{}, nil
	}
	return records, nil
}
