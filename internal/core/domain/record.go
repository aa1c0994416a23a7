package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RecordType classifies a ledger entry. Only Income and Expenditure exist.
type RecordType string

const (
	Income      RecordType = "income"
	Expenditure RecordType = "expenditure"
)

// RecordTypes lists every RecordType in display order.
var RecordTypes = []RecordType{Income, Expenditure}

// DateLayout is the wire and storage format of Record.Date.
const DateLayout = "2006-01-02"

// AmountPrecision is the number of decimal places amounts are stored with.
const AmountPrecision = 2

// ParseRecordType converts user input into a RecordType, rejecting anything
// outside the enumeration.
func ParseRecordType(s string) (RecordType, error) {
	switch t := RecordType(strings.ToLower(strings.TrimSpace(s))); t {
	case Income, Expenditure:
		return t, nil
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("Unknown record type %q", s))
	}
}

// IsValid reports whether t is one of the enumerated types.
func (t RecordType) IsValid() bool {
	return t == Income || t == Expenditure
}

func (t RecordType) String() string {
	return string(t)
}

// Label is the capitalised name used in page titles and messages.
func (t RecordType) Label() string {
	switch t {
	case Income:
		return "Income"
	case Expenditure:
		return "Expenditure"
	default:
		return string(t)
	}
}

// ParseDate parses a calendar date in DateLayout. The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", s))
	}
	return d, nil
}

// Record is a single income or expenditure ledger entry.
type Record struct {
	ID          int64           `json:"id"`
	Type        RecordType      `json:"type"`
	Source      string          `json:"source"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // non-negative, AmountPrecision places
	Date        time.Time       `json:"date"`   // calendar date, no time component
}

// DateString formats the record date in DateLayout.
func (r Record) DateString() string {
	return r.Date.Format(DateLayout)
}

// Validate checks a record before it is written.
func (r Record) Validate() error {
	if !r.Type.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("Unknown record type %q", r.Type))
	}
	if strings.TrimSpace(r.Source) == "" {
		return apperrors.NewValidationError("Source is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return apperrors.NewValidationError("Description is required")
	}
	if r.Amount.IsNegative() {
		return apperrors.NewValidationError("Amount cannot be negative")
	}
	if r.Date.IsZero() {
		return apperrors.NewValidationError("Date is required")
	}
	return nil
}
