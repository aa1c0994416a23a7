package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the all-time totals shown on the home page.
type Summary struct {
	Income      decimal.Decimal `json:"income"`
	Expenditure decimal.Decimal `json:"expenditure"`
	Balance     decimal.Decimal `json:"balance"` // Income - Expenditure
}

// ReportParams selects the records of a report. From and To are inclusive and
// both must be set for the store to be queried at all.
type ReportParams struct {
	From       *time.Time
	To         *time.Time
	SourceType *RecordType
	SourceName string
}

// HasRange reports whether both bounds are present.
func (p ReportParams) HasRange() bool {
	return p.From != nil && p.To != nil
}

// Report is a date-bounded, optionally filtered view over records.
type Report struct {
	Params ReportParams
	// Records are the in-range rows after the type/source filters.
	Records []Record
	// Income and Expenditure cover every in-range row, regardless of filters.
	Income      decimal.Decimal
	Expenditure decimal.Decimal
	// SumSource is only non-zero when both SourceType and SourceName are set.
	SumSource decimal.Decimal
}
