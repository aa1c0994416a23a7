package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both storage backends build one of these.
type RepositoryProvider struct {
	RecordRepo RecordRepositoryFacade
}
