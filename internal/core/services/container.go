package services

import (
	"github.com/SscSPs/digital_khata_client/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/utils/clock"
)

// NewServiceContainer creates a new service container with all services
// initialized. The offline queue is left nil when repos has no queue store.
func NewServiceContainer(api portssvc.BackendAPI, repos repositories.RepositoryProvider, store SessionStore, nav Navigator, notifier Notifier, clk clock.Clock) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{
		Session:    NewSessionService(api, store, nav, notifier),
		Inventory:  NewInventoryService(api, notifier),
		Sales:      NewSalesService(api, notifier),
		Purchases:  NewPurchaseService(api, notifier),
		Accounting: NewAccountingService(api, notifier),
		Reports:    NewReportService(api, notifier),
		Dashboard:  NewDashboardService(api, notifier),
	}
	if repos.OfflineInvoiceRepo != nil {
		container.Offline = NewOfflineQueueService(repos.OfflineInvoiceRepo, api, clk, notifier)
	}
	return container
}
