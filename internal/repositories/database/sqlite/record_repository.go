package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/money_ledger/internal/models"
	"github.com/SscSPs/money_ledger/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// SQLiteRecordRepository stores records in a single SQLite table. Amounts are
// kept as fixed two-place strings and dates as YYYY-MM-DD, so both compare
// and round-trip exactly.
type SQLiteRecordRepository struct {
	db *sql.DB
}

func newSQLiteRecordRepository(db *sql.DB) portsrepo.RecordRepositoryFacade {
	return &SQLiteRecordRepository{db: db}
}

var _ portsrepo.RecordRepositoryFacade = (*SQLiteRecordRepository)(nil)

const recordColumns = `id, type, source, description, amount, date`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var (
		m      models.Record
		amount string
		date   string
	)
	if err := row.Scan(&m.ID, &m.Type, &m.Source, &m.Description, &amount, &date); err != nil {
		return m, err
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return m, fmt.Errorf("record %d has malformed amount %q: %w", m.ID, amount, err)
	}
	t, err := time.ParseInLocation(domain.DateLayout, date, time.UTC)
	if err != nil {
		return m, fmt.Errorf("record %d has malformed date %q: %w", m.ID, date, err)
	}
	m.Amount = d
	m.Date = t
	return m, nil
}

func (r *SQLiteRecordRepository) queryRecords(ctx context.Context, query string, args ...any) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query records", err)
	}
	defer rows.Close()

	var out []models.Record
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan records", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to iterate records", err)
	}
	return mapping.ToDomainRecordSlice(out), nil
}

func (r *SQLiteRecordRepository) SaveRecord(ctx context.Context, record domain.Record) (int64, error) {
	m := mapping.ToModelRecord(record)
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO records (type, source, description, amount, date) VALUES (?, ?, ?, ?, ?)`,
		m.Type, m.Source, m.Description, m.Amount.StringFixed(domain.AmountPrecision), m.Date.Format(domain.DateLayout))
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert record", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to read inserted record id", err)
	}
	return id, nil
}

func (r *SQLiteRecordRepository) UpdateRecord(ctx context.Context, record domain.Record) error {
	m := mapping.ToModelRecord(record)
	_, err := r.db.ExecContext(ctx,
		`UPDATE records SET source = ?, description = ?, amount = ?, date = ? WHERE id = ? AND type = ?`,
		m.Source, m.Description, m.Amount.StringFixed(domain.AmountPrecision), m.Date.Format(domain.DateLayout), m.ID, m.Type)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to update record %d", m.ID), err)
	}
	return nil
}

func (r *SQLiteRecordRepository) DeleteRecord(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to delete record %d", id), err)
	}
	return nil
}

func (r *SQLiteRecordRepository) FindRecordByIDAndType(ctx context.Context, id int64, recordType domain.RecordType) (*domain.Record, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ? AND type = ?`, id, string(recordType))
	m, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to find record %d", id), err)
	}
	rec := mapping.ToDomainRecord(m)
	return &rec, nil
}

func (r *SQLiteRecordRepository) ListRecords(ctx context.Context) ([]domain.Record, error) {
	return r.queryRecords(ctx, `SELECT `+recordColumns+` FROM records ORDER BY date DESC, id DESC`)
}

func (r *SQLiteRecordRepository) ListRecordsByType(ctx context.Context, recordType domain.RecordType) ([]domain.Record, error) {
	return r.queryRecords(ctx, `SELECT `+recordColumns+` FROM records WHERE type = ? ORDER BY date DESC, id DESC`, string(recordType))
}

func (r *SQLiteRecordRepository) ListRecordsByDateRange(ctx context.Context, from, to time.Time) ([]domain.Record, error) {
	return r.queryRecords(ctx,
		`SELECT `+recordColumns+` FROM records WHERE date >= ? AND date <= ? ORDER BY date ASC, id ASC`,
		from.Format(domain.DateLayout), to.Format(domain.DateLayout))
}
