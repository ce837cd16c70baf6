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

type inventoryService struct {
	BaseService
	api portssvc.InventoryAPI
}

// NewInventoryService creates the product service.
func NewInventoryService(api portssvc.InventoryAPI, notifier Notifier) portssvc.InventorySvcFacade {
	return &inventoryService{
		BaseService: BaseService{Notifier: notifier},
		api:         api,
	}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func productSearchFields(p domain.Product) []string {
	return []string{p.Name, p.SKU, p.Category, p.Supplier}
}

// ListProducts loads all products and keeps the ones matching query.
func (s *inventoryService) ListProducts(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to list products: %w", err), "Failed to fetch products")
	}
	return utils.FilterByQuery(products, query, productSearchFields), nil
}

func (s *inventoryService) GetProduct(ctx context.Context, id domain.RecordID) (*domain.Product, error) {
	if id.IsZero() {
		return nil, s.fail(ctx, apperrors.NewValidationError("id", "Product id is required"), "Failed to fetch product")
	}
	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to get product %s: %w", id, err), "Failed to fetch product", slog.String("product_id", id.String()))
	}
	return product, nil
}

func (s *inventoryService) CreateProduct(ctx context.Context, req dto.ProductRequest) (*domain.Product, error) {
	if err := dto.Validate(req); err != nil {
		return nil, s.fail(ctx, err, "Failed to save product")
	}
	product, err := s.api.CreateProduct(ctx, req.ToProduct(""))
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to create product: %w", err), "Failed to save product", slog.String("sku", req.SKU))
	}
	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ID.String()))
	s.succeed("Product added successfully")
	return product, nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, id domain.RecordID, req dto.ProductRequest) (*domain.Product, error) {
	if id.IsZero() {
		return nil, s.fail(ctx, apperrors.NewValidationError("id", "Product id is required"), "Failed to save product")
	}
	if err := dto.Validate(req); err != nil {
		return nil, s.fail(ctx, err, "Failed to save product")
	}
	product, err := s.api.UpdateProduct(ctx, req.ToProduct(id))
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to update product %s: %w", id, err), "Failed to save product", slog.String("product_id", id.String()))
	}
	s.succeed("Product updated successfully")
	return product, nil
}

func (s *inventoryService) DeleteProduct(ctx context.Context, id domain.RecordID) error {
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return s.fail(ctx, fmt.Errorf("failed to delete product %s: %w", id, err), "Failed to delete product", slog.String("product_id", id.String()))
	}
	s.succeed("Product deleted successfully")
	return nil
}
