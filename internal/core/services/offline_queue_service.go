package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/SscSPs/digital_khata_client/internal/metrics"
	"github.com/SscSPs/digital_khata_client/internal/utils/clock"
	"github.com/google/uuid"
)

// OfflineSender is what the queue needs from the backend client.
type OfflineSender interface {
	portssvc.ConnectivityProbe
	CreateSale(ctx context.Context, req dto.SaleRequest) (*domain.Sale, error)
}

type offlineQueueService struct {
	BaseService
	repo    repositories.OfflineInvoiceRepositoryFacade
	sender  OfflineSender
	clock   clock.Clock
	syncing sync.Mutex
}

// NewOfflineQueueService creates the offline invoice queue service.
func NewOfflineQueueService(repo repositories.OfflineInvoiceRepositoryFacade, sender OfflineSender, clk clock.Clock, notifier Notifier) portssvc.OfflineQueueSvcFacade {
	if clk == nil {
		clk = clock.Real{}
	}
	return &offlineQueueService{
		BaseService: BaseService{Notifier: notifier},
		repo:        repo,
		sender:      sender,
		clock:       clk,
	}
}

var _ portssvc.OfflineQueueSvcFacade = (*offlineQueueService)(nil)

// Enqueue stores an invoice as pending. The capture time is used when no date is given.
func (s *offlineQueueService) Enqueue(ctx context.Context, req dto.EnqueueInvoiceRequest) (*domain.OfflineInvoice, error) {
	if err := dto.Validate(req); err != nil {
		return nil, s.fail(ctx, err, "Failed to save invoice offline")
	}

	date := s.clock.Now().UTC()
	if req.Date != nil {
		date = req.Date.UTC()
	}
	inv := domain.OfflineInvoice{
		ClientRef: uuid.New(),
		Customer:  req.Customer,
		Date:      date,
		Status:    domain.OfflineInvoicePending,
		Amount:    req.Amount,
		Items:     req.Items,
		Notes:     req.Notes,
	}

	id, err := s.repo.SaveOfflineInvoice(ctx, inv)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to queue invoice: %w", err), "Failed to save invoice offline", slog.String("customer", req.Customer))
	}
	inv.ID = id
	s.LogInfo(ctx, "Invoice queued offline", slog.Int64("id", id), slog.String("client_ref", inv.ClientRef.String()))
	return &inv, nil
}

// List returns the queued invoices, filtered by customer or else by status.
func (s *offlineQueueService) List(ctx context.Context, params dto.ListOfflineInvoicesParams) ([]domain.OfflineInvoice, error) {
	if err := dto.Validate(params); err != nil {
		return nil, err
	}

	var (
		invoices []domain.OfflineInvoice
		err      error
	)
	switch {
	case params.Customer != "":
		invoices, err = s.repo.FindOfflineInvoicesByCustomer(ctx, params.Customer)
	case params.Status != "":
		invoices, err = s.repo.FindOfflineInvoicesByStatus(ctx, domain.OfflineInvoiceStatus(params.Status))
	default:
		invoices, err = s.repo.ListOfflineInvoices(ctx)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list offline invoices")
		return nil, fmt.Errorf("failed to list offline invoices: %w", err)
	}
	return invoices, nil
}

// Sync sends the pending invoices to the backend. An invoice is deleted only
// after the backend accepted it, so a crash in between replays it; the
// client reference lets the backend drop the duplicate.
func (s *offlineQueueService) Sync(ctx context.Context) (*dto.SyncResult, error) {
	if !s.syncing.TryLock() {
		return &dto.SyncResult{Skipped: true}, apperrors.ErrSyncInProgress
	}
	defer s.syncing.Unlock()

	logger := s.GetLogger(ctx)
	if err := s.sender.Ping(ctx); err != nil {
		logger.Debug("Backend unreachable, skipping offline sync", slog.String("error", err.Error()))
		return &dto.SyncResult{Skipped: true}, nil
	}

	invoices, err := s.repo.FindOfflineInvoicesByStatus(ctx, domain.OfflineInvoicePending)
	if err != nil {
		s.LogError(ctx, err, "Failed to read offline queue")
		return nil, fmt.Errorf("failed to read offline queue: %w", err)
	}

	result := &dto.SyncResult{}
	if len(invoices) == 0 {
		return result, nil
	}

	for _, inv := range invoices {
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, err.Error())
			break
		}
		if _, err := s.sender.CreateSale(ctx, dto.ToSaleRequest(inv)); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("invoice %d: %v", inv.ID, err))
			s.LogError(ctx, err, "Failed to send offline invoice", slog.Int64("id", inv.ID))
			continue
		}
		result.Sent++
		if err := s.repo.DeleteOfflineInvoice(ctx, inv.ID); err != nil {
			// Left queued; the next pass resends it with the same client reference.
			s.LogError(ctx, err, "Failed to remove synced invoice from queue", slog.Int64("id", inv.ID))
		}
	}

	metrics.RecordOfflineSync(result.Sent, result.Failed)
	logger.Info("Offline sync finished", slog.Int("sent", result.Sent), slog.Int("failed", result.Failed))

	if result.Sent > 0 {
		s.succeed(fmt.Sprintf("Synced %d offline invoices", result.Sent))
	}
	if result.Failed > 0 {
		s.notifyError(fmt.Sprintf("Failed to sync %d offline invoices", result.Failed))
	}
	return result, nil
}
