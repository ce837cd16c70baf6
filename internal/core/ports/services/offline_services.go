package services

import (
	"context"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/dto"
)

// OfflineQueueSvcFacade manages invoices captured while the backend was unreachable.
type OfflineQueueSvcFacade interface {
	Enqueue(ctx context.Context, req dto.EnqueueInvoiceRequest) (*domain.OfflineInvoice, error)
	List(ctx context.Context, params dto.ListOfflineInvoicesParams) ([]domain.OfflineInvoice, error)
	// Sync sends every queued invoice and removes the ones the backend accepted.
	Sync(ctx context.Context) (*dto.SyncResult, error)
}
