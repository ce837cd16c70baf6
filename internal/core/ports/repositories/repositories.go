package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// OfflineInvoiceRepo is nil when no queue database is configured.
type RepositoryProvider struct {
	LocalStorage       LocalStorageFacade
	OfflineInvoiceRepo OfflineInvoiceRepositoryFacade
}
