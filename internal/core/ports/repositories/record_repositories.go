package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// RecordReader defines read operations for ledger records
type RecordReader interface {
	// ListRecords retrieves every record, newest first.
	ListRecords(ctx context.Context) ([]domain.Record, error)

	// ListRecordsByType retrieves the records of one type, newest first.
	ListRecordsByType(ctx context.Context, recordType domain.RecordType) ([]domain.Record, error)

	// ListRecordsByDateRange retrieves records dated between from and to,
	// both inclusive, oldest first.
	ListRecordsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Record, error)

	// FindRecordByIDAndType retrieves a record only if it has the given type.
	// Returns apperrors.ErrNotFound otherwise.
	FindRecordByIDAndType(ctx context.Context, id int64, recordType domain.RecordType) (*domain.Record, error)
}

// RecordWriter defines write operations for ledger records
type RecordWriter interface {
	// SaveRecord persists a new record and returns its assigned ID.
	SaveRecord(ctx context.Context, record domain.Record) (int64, error)

	// UpdateRecord overwrites the fields of the record matching both ID and type.
	// Matching nothing is not an error.
	UpdateRecord(ctx context.Context, record domain.Record) error

	// DeleteRecord removes a record by ID. Deleting a missing ID is not an error.
	DeleteRecord(ctx context.Context, id int64) error
}

// RecordRepositoryFacade combines all record-related repository interfaces
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
}
