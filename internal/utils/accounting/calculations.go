package accounting

import (
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumByType adds up the amounts of every record of the given type.
// An empty input sums to zero.
func SumByType(records []domain.Record, recordType domain.RecordType) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		if r.Type == recordType {
			sum = sum.Add(r.Amount)
		}
	}
	return sum
}

// Total adds up the amounts of every record regardless of type.
func Total(records []domain.Record) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.Amount)
	}
	return sum
}

// Summarize computes the income, expenditure and balance of a row set.
func Summarize(records []domain.Record) domain.Summary {
	income := SumByType(records, domain.Income)
	expenditure := SumByType(records, domain.Expenditure)
	return domain.Summary{
		Income:      income,
		Expenditure: expenditure,
		Balance:     income.Sub(expenditure),
	}
}

// FilterAndSum narrows records by an optional type and an optional source.
//
// The sum is only computed when both filters are given; with a single filter
// the rows are still narrowed but the sum stays zero, and with no filter the
// input is returned untouched. Report pages depend on this exact behaviour.
func FilterAndSum(records []domain.Record, typeFilter *domain.RecordType, sourceFilter string) ([]domain.Record, decimal.Decimal) {
	hasType := typeFilter != nil
	hasSource := sourceFilter != ""

	if !hasType && !hasSource {
		return records, decimal.Zero
	}

	filtered := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if hasType && r.Type != *typeFilter {
			continue
		}
		if hasSource && r.Source != sourceFilter {
			continue
		}
		filtered = append(filtered, r)
	}

	if hasType && hasSource {
		return filtered, Total(filtered)
	}
	return filtered, decimal.Zero
}
