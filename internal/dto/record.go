package dto

import (
	"time"

	"github.com/SscSPs/money_ledger/internal/apperrors"
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordForm is the HTML form body of the create and update routes.
type RecordForm struct {
	Source      string `form:"source" binding:"required"`
	Description string `form:"description" binding:"required"`
	Amount      string `form:"amount" binding:"required,numeric"`
	Date        string `form:"date" binding:"required,datetime=2006-01-02"`
}

// RecordRequest is the parsed form handed to the record service.
type RecordRequest struct {
	Source      string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// ToRequest parses the amount and date of a bound form.
func (f RecordForm) ToRequest() (RecordRequest, error) {
	amount, err := decimal.NewFromString(f.Amount)
	if err != nil {
		return RecordRequest{}, apperrors.NewValidationError("Amount must be a number")
	}
	date, err := domain.ParseDate(f.Date)
	if err != nil {
		return RecordRequest{}, err
	}
	return RecordRequest{
		Source:      f.Source,
		Description: f.Description,
		Amount:      amount,
		Date:        date,
	}, nil
}
