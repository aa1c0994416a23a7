package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainRecordSlice(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ms := []models.Record{
		{ID: 1, Type: "income", Source: "Acme", Description: "salary", Amount: decimal.NewFromInt(10), Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Type: "expenditure", Source: "Grocer", Description: "food", Amount: decimal.NewFromInt(3), Date: time.Date(2024, 1, 16, 2, 0, 0, 0, loc)},
	}

	ds := ToDomainRecordSlice(ms)

	assert.Len(t, ds, 2)
	assert.Equal(t, domain.Income, ds[0].Type)
	assert.Equal(t, domain.Expenditure, ds[1].Type)
	assert.Equal(t, time.UTC, ds[1].Date.Location())
	assert.Equal(t, "2024-01-16", ds[1].DateString())
	assert.Equal(t, ms[0], ToModelRecord(ds[0]))
	assert.Empty(t, ToDomainRecordSlice(nil))
}
