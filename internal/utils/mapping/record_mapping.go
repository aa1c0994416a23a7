package mapping

import (
	"github.com/SscSPs/money_ledger/internal/core/domain"
	"github.com/SscSPs/money_ledger/internal/models"
)

// ToModelRecord converts a domain Record to a model Record
func ToModelRecord(d domain.Record) models.Record {
	return models.Record{
		ID:          d.ID,
		Type:        string(d.Type),
		Source:      d.Source,
		Description: d.Description,
		Amount:      d.Amount,
		Date:        d.Date,
	}
}

// ToDomainRecord converts a model Record to a domain Record.
// The type is trusted as stored; the schema constrains it to the enumeration.
func ToDomainRecord(m models.Record) domain.Record {
	return domain.Record{
		ID:          m.ID,
		Type:        domain.RecordType(m.Type),
		Source:      m.Source,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date.UTC(),
	}
}

// ToDomainRecordSlice converts a slice of model Records to a slice of domain Records
func ToDomainRecordSlice(ms []models.Record) []domain.Record {
	ds := make([]domain.Record, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecord(m)
	}
	return ds
}
