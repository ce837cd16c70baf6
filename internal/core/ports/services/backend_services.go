package services

import (
	"context"
	"net/url"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/dto"
)

// AuthAPI covers the account endpoints of the backend.
type AuthAPI interface {
	// Login posts the credentials and then loads the profile of the new session.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Signup(ctx context.Context, req dto.SignupRequest) error
	Profile(ctx context.Context) (*domain.User, error)
	// Logout ends the backend session and forgets the local session cookies.
	Logout(ctx context.Context) error
}

// InventoryAPI covers /inventory/api/products/.
type InventoryAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id domain.RecordID) (*domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id domain.RecordID) error
}

// SalesAPI covers /sales/api/invoices/.
type SalesAPI interface {
	ListSales(ctx context.Context) ([]domain.Sale, error)
	GetSale(ctx context.Context, id domain.RecordID) (*domain.Sale, error)
	CreateSale(ctx context.Context, req dto.SaleRequest) (*domain.Sale, error)
	UpdateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error)
	DeleteSale(ctx context.Context, id domain.RecordID) error
}

// PurchasesAPI covers /purchases/api/bills/.
type PurchasesAPI interface {
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
	GetPurchase(ctx context.Context, id domain.RecordID) (*domain.Purchase, error)
	CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error)
	UpdatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, id domain.RecordID) error
}

// AccountingAPI covers /accounting/api/accounts/.
type AccountingAPI interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccount(ctx context.Context, id domain.RecordID) (*domain.Account, error)
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id domain.RecordID) error
}

// ReportsAPI covers /reports/api/{kind}/.
type ReportsAPI interface {
	GetReport(ctx context.Context, kind domain.ReportKind, params url.Values) (domain.Report, error)
}

// DashboardAPI covers /dashboard/api/data/.
type DashboardAPI interface {
	GetDashboardData(ctx context.Context) (*domain.DashboardData, error)
}

// ConnectivityProbe reports whether the backend can be reached at all.
type ConnectivityProbe interface {
	Ping(ctx context.Context) error
}

// BackendAPI is the full surface of the backend client.
type BackendAPI interface {
	AuthAPI
	InventoryAPI
	SalesAPI
	PurchasesAPI
	AccountingAPI
	ReportsAPI
	DashboardAPI
	ConnectivityProbe
}
