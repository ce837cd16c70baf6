package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/SscSPs/digital_khata_client/internal/utils"
)

type purchaseService struct {
	BaseService
	api portssvc.PurchasesAPI
}

// NewPurchaseService creates the purchase bill service.
func NewPurchaseService(api portssvc.PurchasesAPI, notifier Notifier) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		BaseService: BaseService{Notifier: notifier},
		api:         api,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

func purchaseSearchFields(p domain.Purchase) []string {
	return []string{p.BillNumber, p.SupplierName, p.Date, string(p.Status)}
}

func (s *purchaseService) ListPurchases(ctx context.Context, query string) ([]domain.Purchase, error) {
	purchases, err := s.api.ListPurchases(ctx)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to list purchases: %w", err), "Failed to fetch purchases data")
	}
	return utils.FilterByQuery(purchases, query, purchaseSearchFields), nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, id domain.RecordID) (*domain.Purchase, error) {
	if id.IsZero() {
		return nil, s.fail(ctx, apperrors.NewValidationError("id", "Bill id is required"), "Failed to fetch bill")
	}
	purchase, err := s.api.GetPurchase(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to get bill %s: %w", id, err), "Failed to fetch bill", slog.String("bill_id", id.String()))
	}
	return purchase, nil
}

func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.PurchaseRequest) (*domain.Purchase, error) {
	if err := dto.Validate(req); err != nil {
		return nil, s.fail(ctx, err, "Failed to save bill")
	}
	purchase, err := s.api.CreatePurchase(ctx, req.ToPurchase(""))
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to create bill: %w", err), "Failed to save bill", slog.String("supplier", req.SupplierName))
	}
	s.succeed("Bill added successfully")
	return purchase, nil
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, id domain.RecordID, req dto.PurchaseRequest) (*domain.Purchase, error) {
	if id.IsZero() {
		return nil, s.fail(ctx, apperrors.NewValidationError("id", "Bill id is required"), "Failed to save bill")
	}
	if err := dto.Validate(req); err != nil {
		return nil, s.fail(ctx, err, "Failed to save bill")
	}
	purchase, err := s.api.UpdatePurchase(ctx, req.ToPurchase(id))
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to update bill %s: %w", id, err), "Failed to save bill", slog.String("bill_id", id.String()))
	}
	s.succeed("Bill updated successfully")
	return purchase, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, id domain.RecordID) error {
	if err := s.api.DeletePurchase(ctx, id); err != nil {
		return s.fail(ctx, fmt.Errorf("failed to delete bill %s: %w", id, err), "Failed to delete bill", slog.String("bill_id", id.String()))
	}
	s.succeed("Bill deleted successfully")
	return nil
}
