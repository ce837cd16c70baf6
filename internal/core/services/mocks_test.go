package services_test

import (
	"context"
	"net/url"
	"sync"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/stretchr/testify/mock"
)

// MockBackendAPI is a mock type for the BackendAPI interface
type MockBackendAPI struct {
	mock.Mock
}

var _ portssvc.BackendAPI = (*MockBackendAPI)(nil)

// --- AuthAPI ---

func (m *MockBackendAPI) Login(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBackendAPI) Signup(ctx context.Context, req dto.SignupRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockBackendAPI) Profile(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBackendAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- InventoryAPI ---

func (m *MockBackendAPI) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockBackendAPI) GetProduct(ctx context.Context, id domain.RecordID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockBackendAPI) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockBackendAPI) UpdateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockBackendAPI) DeleteProduct(ctx context.Context, id domain.RecordID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- SalesAPI ---

func (m *MockBackendAPI) ListSales(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockBackendAPI) GetSale(ctx context.Context, id domain.RecordID) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockBackendAPI) CreateSale(ctx context.Context, req dto.SaleRequest) (*domain.Sale, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockBackendAPI) UpdateSale(ctx context.Context, sale domain.Sale) (*domain.Sale, error) {
	args := m.Called(ctx, sale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockBackendAPI) DeleteSale(ctx context.Context, id domain.RecordID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- PurchasesAPI ---

func (m *MockBackendAPI) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockBackendAPI) GetPurchase(ctx context.Context, id domain.RecordID) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockBackendAPI) CreatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	args := m.Called(ctx, purchase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockBackendAPI) UpdatePurchase(ctx context.Context, purchase domain.Purchase) (*domain.Purchase, error) {
	args := m.Called(ctx, purchase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockBackendAPI) DeletePurchase(ctx context.Context, id domain.RecordID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- AccountingAPI ---

func (m *MockBackendAPI) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockBackendAPI) GetAccount(ctx context.Context, id domain.RecordID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBackendAPI) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBackendAPI) UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockBackendAPI) DeleteAccount(ctx context.Context, id domain.RecordID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- ReportsAPI, DashboardAPI, ConnectivityProbe ---

func (m *MockBackendAPI) GetReport(ctx context.Context, kind domain.ReportKind, params url.Values) (domain.Report, error) {
	args := m.Called(ctx, kind, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Report), args.Error(1)
}

func (m *MockBackendAPI) GetDashboardData(ctx context.Context) (*domain.DashboardData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardData), args.Error(1)
}

func (m *MockBackendAPI) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockOfflineInvoiceRepository is a mock type for the OfflineInvoiceRepositoryFacade interface
type MockOfflineInvoiceRepository struct {
	mock.Mock
}

var _ repositories.OfflineInvoiceRepositoryFacade = (*MockOfflineInvoiceRepository)(nil)

func (m *MockOfflineInvoiceRepository) ListOfflineInvoices(ctx context.Context) ([]domain.OfflineInvoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfflineInvoice), args.Error(1)
}

func (m *MockOfflineInvoiceRepository) FindOfflineInvoicesByStatus(ctx context.Context, status domain.OfflineInvoiceStatus) ([]domain.OfflineInvoice, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfflineInvoice), args.Error(1)
}

func (m *MockOfflineInvoiceRepository) FindOfflineInvoicesByCustomer(ctx context.Context, customer string) ([]domain.OfflineInvoice, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfflineInvoice), args.Error(1)
}

func (m *MockOfflineInvoiceRepository) SaveOfflineInvoice(ctx context.Context, invoice domain.OfflineInvoice) (int64, error) {
	args := m.Called(ctx, invoice)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOfflineInvoiceRepository) DeleteOfflineInvoice(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// recordedNotification is one message captured by notifierSpy.
type recordedNotification struct {
	Kind    domain.NotificationKind
	Message string
}

// notifierSpy records notifications instead of showing them.
type notifierSpy struct {
	mu   sync.Mutex
	seq  int64
	sent []recordedNotification
}

func (n *notifierSpy) record(kind domain.NotificationKind, message string) int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	n.sent = append(n.sent, recordedNotification{Kind: kind, Message: message})
	return n.seq
}

func (n *notifierSpy) Success(message string) int64 {
	return n.record(domain.NotificationSuccess, message)
}

func (n *notifierSpy) Error(message string) int64 {
	return n.record(domain.NotificationError, message)
}

func (n *notifierSpy) Info(message string) int64 {
	return n.record(domain.NotificationInfo, message)
}

func (n *notifierSpy) all() []recordedNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]recordedNotification(nil), n.sent...)
}

func (n *notifierSpy) last() recordedNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.sent) == 0 {
		return recordedNotification{}
	}
	return n.sent[len(n.sent)-1]
}
