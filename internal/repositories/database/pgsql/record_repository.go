package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/money_ledger/internal/models"
	"github.com/SscSPs/money_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRecordRepository struct {
	BaseRepository
}

// newPgxRecordRepository creates a new repository for ledger records.
func newPgxRecordRepository(pool *pgxpool.Pool) portsrepo.RecordRepositoryFacade {
	return &PgxRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RecordRepositoryFacade = (*PgxRecordRepository)(nil)

func (r *PgxRecordRepository) SaveRecord(ctx context.Context, record domain.Record) (int64, error) {
	m := mapping.ToModelRecord(record)
	query := `
		INSERT INTO records (type, source, description, amount, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	if err := r.Pool.QueryRow(ctx, query, m.Type, m.Source, m.Description, m.Amount, m.Date).Scan(&id); err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert record", err)
	}
	return id, nil
}

func (r *PgxRecordRepository) UpdateRecord(ctx context.Context, record domain.Record) error {
	m := mapping.ToModelRecord(record)
	query := `
		UPDATE records
		SET source = $1, description = $2, amount = $3, date = $4
		WHERE id = $5 AND type = $6;
	`
	if _, err := r.Pool.Exec(ctx, query, m.Source, m.Description, m.Amount, m.Date, m.ID, m.Type); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to update record %d", m.ID), err)
	}
	return nil
}

func (r *PgxRecordRepository) DeleteRecord(ctx context.Context, id int64) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM records WHERE id = $1;`, id); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to delete record %d", id), err)
	}
	return nil
}

func (r *PgxRecordRepository) FindRecordByIDAndType(ctx context.Context, id int64, recordType domain.RecordType) (*domain.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = $1 AND type = $2;`
	var m models.Record
	err := r.Pool.QueryRow(ctx, query, id, string(recordType)).Scan(&m.ID, &m.Type, &m.Source, &m.Description, &m.Amount, &m.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to find record %d", id), err)
	}
	rec := mapping.ToDomainRecord(m)
	return &rec, nil
}

func (r *PgxRecordRepository) ListRecords(ctx context.Context) ([]domain.Record, error) {
	rows, err := r.queryRecords(ctx, `SELECT `+recordColumns+` FROM records ORDER BY date DESC, id DESC;`)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainRecordSlice(rows), nil
}

func (r *PgxRecordRepository) ListRecordsByType(ctx context.Context, recordType domain.RecordType) ([]domain.Record, error) {
	rows, err := r.queryRecords(ctx, `SELECT `+recordColumns+` FROM records WHERE type = $1 ORDER BY date DESC, id DESC;`, string(recordType))
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainRecordSlice(rows), nil
}

func (r *PgxRecordRepository) ListRecordsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Record, error) {
	rows, err := r.queryRecords(ctx,
		`SELECT `+recordColumns+` FROM records WHERE date BETWEEN $1 AND $2 ORDER BY date ASC, id ASC;`,
		from, to)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainRecordSlice(rows), nil
}
