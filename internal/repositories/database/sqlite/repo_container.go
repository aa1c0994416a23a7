package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/money_ledger/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RecordRepo: newSQLiteRecordRepository(db),
	}
}
