package dto

import (
	"github.com/SscSPs/money_ledger/internal/core/domain"
)

// ReportQuery is the query string of GET /report. Every field is optional.
type ReportQuery struct {
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	SourceType string `form:"sourceType" binding:"omitempty,oneof=income expenditure"`
	SourceName string `form:"sourceName"`
}

// ToParams converts a bound query into report parameters. Empty fields stay unset.
func (q ReportQuery) ToParams() (domain.ReportParams, error) {
	var params domain.ReportParams
	if q.From != "" {
		from, err := domain.ParseDate(q.From)
		if err != nil {
			return params, err
		}
		params.From = &from
	}
	if q.To != "" {
		to, err := domain.ParseDate(q.To)
		if err != nil {
			return params, err
		}
		params.To = &to
	}
	if q.SourceType != "" {
		t, err := domain.ParseRecordType(q.SourceType)
		if err != nil {
			return params, err
		}
		params.SourceType = &t
	}
	params.SourceName = q.SourceName
	return params, nil
}
