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

type salesService struct {
	BaseService
	api portssvc.SalesAPI
}

// NewSalesService creates the sales invoice service.
func NewSalesService(api portssvc.SalesAPI, notifier Notifier) portssvc.SalesSvcFacade {
	return &salesService{
		BaseService: BaseService{Notifier: notifier},
		api:         api,
	}
}

var _ portssvc.SalesSvcFacade = (*salesService)(nil)

func saleSearchFields(s domain.Sale) []string {
	return []string{s.InvoiceNumber, s.CustomerName, s.Date, string(s.Status)}
}

func (s *salesService) ListSales(ctx context.Context, query string) ([]domain.Sale, error) {
	sales, err := s.api.ListSales(ctx)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to list sales: %w", err), "Failed to fetch sales data")
	}
	return utils.FilterByQuery(sales, query, saleSearchFields), nil
}

func (s *salesService) GetSale(ctx context.Context, id domain.RecordID) (*domain.Sale, error) {
	if id.IsZero() {
		return nil, s.fail(ctx, apperrors.NewValidationError("id", "Invoice id is required"), "Failed to fetch invoice")
	}
	sale, err := s.api.GetSale(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to get invoice %s: %w", id, err), "Failed to fetch invoice", slog.String("invoice_id", id.String()))
	}
	return sale, nil
}

func (s *salesService) CreateSale(ctx context.Context, req dto.SaleRequest) (*domain.Sale, error) {
	if err := dto.Validate(req); err != nil {
		return nil, s.fail(ctx, err, "Failed to save invoice")
	}
	sale, err := s.api.CreateSale(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to create invoice: %w", err), "Failed to save invoice", slog.String("customer", req.CustomerName))
	}
	s.LogInfo(ctx, "Invoice created", slog.String("invoice_id", sale.ID.String()))
	s.succeed("Invoice created successfully")
	return sale, nil
}

func (s *salesService) UpdateSale(ctx context.Context, id domain.RecordID, req dto.SaleRequest) (*domain.Sale, error) {
	if id.IsZero() {
		return nil, s.fail(ctx, apperrors.NewValidationError("id", "Invoice id is required"), "Failed to save invoice")
	}
	if err := dto.Validate(req); err != nil {
		return nil, s.fail(ctx, err, "Failed to save invoice")
	}
	sale, err := s.api.UpdateSale(ctx, req.ToSale(id))
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to update invoice %s: %w", id, err), "Failed to save invoice", slog.String("invoice_id", id.String()))
	}
	s.succeed("Invoice updated successfully")
	return sale, nil
}

func (s *salesService) DeleteSale(ctx context.Context, id domain.RecordID) error {
	if err := s.api.DeleteSale(ctx, id); err != nil {
		return s.fail(ctx, fmt.Errorf("failed to delete invoice %s: %w", id, err), "Failed to delete invoice", slog.String("invoice_id", id.String()))
	}
	s.succeed("Invoice deleted successfully")
	return nil
}
