package services

// ServiceContainer holds all service interfaces used by the handlers.
// Offline is nil when no queue database is configured.
type ServiceContainer struct {
	Session    SessionSvcFacade
	Inventory  InventorySvcFacade
	Sales      SalesSvcFacade
	Purchases  PurchaseSvcFacade
	Accounting AccountingSvcFacade
	Reports    ReportSvcFacade
	Dashboard  DashboardSvcFacade
	Offline    OfflineQueueSvcFacade
}
