package repositories

import (
	"context"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
)

// OfflineInvoiceReader defines read operations on the offline invoice queue.
type OfflineInvoiceReader interface {
	// ListOfflineInvoices returns every queued invoice ordered by id.
	ListOfflineInvoices(ctx context.Context) ([]domain.OfflineInvoice, error)

	// FindOfflineInvoicesByStatus returns the queued invoices with the given status.
	FindOfflineInvoicesByStatus(ctx context.Context, status domain.OfflineInvoiceStatus) ([]domain.OfflineInvoice, error)

	// FindOfflineInvoicesByCustomer returns the queued invoices of a customer.
	FindOfflineInvoicesByCustomer(ctx context.Context, customer string) ([]domain.OfflineInvoice, error)
}

// OfflineInvoiceWriter defines write operations on the offline invoice queue.
type OfflineInvoiceWriter interface {
	// SaveOfflineInvoice appends an invoice and returns its auto-incremented id.
	SaveOfflineInvoice(ctx context.Context, invoice domain.OfflineInvoice) (int64, error)

	// DeleteOfflineInvoice removes an invoice. Deleting an absent id is not an error.
	DeleteOfflineInvoice(ctx context.Context, id int64) error
}

// OfflineInvoiceRepositoryFacade combines all offline queue operations.
type OfflineInvoiceRepositoryFacade interface {
	OfflineInvoiceReader
	OfflineInvoiceWriter
}
