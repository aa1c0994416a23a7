package services

import (
	"context"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/dto"
)

// RecordReaderSvc defines read operations for ledger records
type RecordReaderSvc interface {
	// ListRecords retrieves every record, newest first.
	ListRecords(ctx context.Context) ([]domain.Record, error)

	// ListRecordsByType retrieves the records of one type, newest first.
	ListRecordsByType(ctx context.Context, recordType domain.RecordType) ([]domain.Record, error)

	// GetRecord retrieves a record of the given type by ID.
	GetRecord(ctx context.Context, id int64, recordType domain.RecordType) (*domain.Record, error)
}

// RecordWriterSvc defines write operations for ledger records
type RecordWriterSvc interface {
	CreateRecord(ctx context.Context, recordType domain.RecordType, req dto.RecordRequest) (*domain.Record, error)
	UpdateRecord(ctx context.Context, id int64, recordType domain.RecordType, req dto.RecordRequest) error
	DeleteRecord(ctx context.Context, id int64) error
}

// RecordSvcFacade combines all record-related service interfaces
type RecordSvcFacade interface {
	RecordReaderSvc
	RecordWriterSvc
}
