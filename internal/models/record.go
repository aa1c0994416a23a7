package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a row of the records table.
type Record struct {
	ID          int64           `db:"id"`
	Type        string          `db:"type"` // "income" or "expenditure"
	Source      string          `db:"source"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"` // NUMERIC(12,2) in postgres, TEXT in sqlite
	Date        time.Time       `db:"date"`
}
