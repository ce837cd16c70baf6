package services

import (
	"context"
	"net/url"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/dto"
)

// InventorySvcFacade manages products. Failures are also surfaced as notifications.
type InventorySvcFacade interface {
	ListProducts(ctx context.Context, query string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id domain.RecordID) (*domain.Product, error)
	CreateProduct(ctx context.Context, req dto.ProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id domain.RecordID, req dto.ProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id domain.RecordID) error
}

// SalesSvcFacade manages sales invoices.
type SalesSvcFacade interface {
	ListSales(ctx context.Context, query string) ([]domain.Sale, error)
	GetSale(ctx context.Context, id domain.RecordID) (*domain.Sale, error)
	CreateSale(ctx context.Context, req dto.SaleRequest) (*domain.Sale, error)
	UpdateSale(ctx context.Context, id domain.RecordID, req dto.SaleRequest) (*domain.Sale, error)
	DeleteSale(ctx context.Context, id domain.RecordID) error
}

// PurchaseSvcFacade manages purchase bills.
type PurchaseSvcFacade interface {
	ListPurchases(ctx context.Context, query string) ([]domain.Purchase, error)
	GetPurchase(ctx context.Context, id domain.RecordID) (*domain.Purchase, error)
	CreatePurchase(ctx context.Context, req dto.PurchaseRequest) (*domain.Purchase, error)
	UpdatePurchase(ctx context.Context, id domain.RecordID, req dto.PurchaseRequest) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, id domain.RecordID) error
}

// AccountingSvcFacade manages the chart of accounts.
type AccountingSvcFacade interface {
	ListAccounts(ctx context.Context, query string) ([]domain.Account, error)
	GetAccount(ctx context.Context, id domain.RecordID) (*domain.Account, error)
	CreateAccount(ctx context.Context, req dto.AccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, id domain.RecordID, req dto.AccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id domain.RecordID) error
	// ChartOfAccounts lists the accounts grouped by type in display order.
	ChartOfAccounts(ctx context.Context) ([]dto.AccountGroup, error)
}

// ReportSvcFacade fetches reports.
type ReportSvcFacade interface {
	GetReport(ctx context.Context, kind domain.ReportKind, params url.Values) (domain.Report, error)
	// NotifyExport announces an export of a report in the given format.
	NotifyExport(kind domain.ReportKind, format string)
}

// DashboardSvcFacade fetches the dashboard summary.
type DashboardSvcFacade interface {
	GetDashboardData(ctx context.Context) (*domain.DashboardData, error)
}
