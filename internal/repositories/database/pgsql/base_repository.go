package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

const recordColumns = `id, type, source, description, amount, date`

// queryRecords runs a SELECT of recordColumns and collects the rows.
func (r *BaseRepository) queryRecords(ctx context.Context, query string, args ...any) ([]models.Record, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query records", err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Record, error) {
		var rec models.Record
		err := row.Scan(&rec.ID, &rec.Type, &rec.Source, &rec.Description, &rec.Amount, &rec.Date)
		return rec, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan records", err)
	}
	return records, nil
}
