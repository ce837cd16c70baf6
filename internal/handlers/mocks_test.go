package handlers_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/digital_khata_client/internal/adapters/storage"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/core/router"
	"github.com/SscSPs/digital_khata_client/internal/core/state"
	"github.com/SscSPs/digital_khata_client/internal/core/toast"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/SscSPs/digital_khata_client/internal/handlers"
	"github.com/SscSPs/digital_khata_client/internal/middleware"
	"github.com/SscSPs/digital_khata_client/internal/utils/clock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/ulule/limiter/v3"
)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockSessionService) Signup(ctx context.Context, req dto.SignupRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockSessionService) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockSessionService) Refresh(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockSessionService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockSessionService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock InventoryService ---
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) ListProducts(ctx context.Context, query string) ([]domain.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockInventoryService) GetProduct(ctx context.Context, id domain.RecordID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockInventoryService) CreateProduct(ctx context.Context, req dto.ProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockInventoryService) UpdateProduct(ctx context.Context, id domain.RecordID, req dto.ProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockInventoryService) DeleteProduct(ctx context.Context, id domain.RecordID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.InventorySvcFacade = (*MockInventoryService)(nil)

// --- Mock AccountingService ---
type MockAccountingService struct {
	mock.Mock
}

func (m *MockAccountingService) ListAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountingService) GetAccount(ctx context.Context, id domain.RecordID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountingService) CreateAccount(ctx context.Context, req dto.AccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountingService) UpdateAccount(ctx context.Context, id domain.RecordID, req dto.AccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountingService) DeleteAccount(ctx context.Context, id domain.RecordID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAccountingService) ChartOfAccounts(ctx context.Context) ([]dto.AccountGroup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AccountGroup), args.Error(1)
}

var _ portssvc.AccountingSvcFacade = (*MockAccountingService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GetReport(ctx context.Context, kind domain.ReportKind, params url.Values) (domain.Report, error) {
	args := m.Called(ctx, kind, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Report), args.Error(1)
}
func (m *MockReportService) NotifyExport(kind domain.ReportKind, format string) {
	m.Called(kind, format)
}

var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

// --- Mock OfflineQueueService ---
type MockOfflineQueueService struct {
	mock.Mock
}

func (m *MockOfflineQueueService) Enqueue(ctx context.Context, req dto.EnqueueInvoiceRequest) (*domain.OfflineInvoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OfflineInvoice), args.Error(1)
}
func (m *MockOfflineQueueService) List(ctx context.Context, params dto.ListOfflineInvoicesParams) ([]domain.OfflineInvoice, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OfflineInvoice), args.Error(1)
}
func (m *MockOfflineQueueService) Sync(ctx context.Context) (*dto.SyncResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SyncResult), args.Error(1)
}

var _ portssvc.OfflineQueueSvcFacade = (*MockOfflineQueueService)(nil)

// shell bundles a gin engine with a real in-memory state container.
type shell struct {
	engine   *gin.Engine
	store    *state.Store
	document *state.DocumentRoot
	router   *router.Router
	toaster  *toast.Toaster
	clock    *clock.Manual
}

func newShell(services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) *shell {
	gin.SetMode(gin.TestMode)

	doc := state.NewDocumentRoot()
	store := state.NewStore(storage.NewMemoryStorage(), doc, nil)
	store.Mount(state.StaticPreference(false))
	clk := clock.NewManual(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	toaster := toast.NewToaster(store, clk, 0, nil)
	toaster.Start()
	rt := router.NewRouter(store, nil)
	rt.Start()

	engine := gin.New()
	engine.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	handlers.RegisterRoutes(engine, handlers.Deps{
		Services:      services,
		Store:         store,
		Document:      doc,
		Router:        rt,
		Notifications: toaster,
		LoginLimiter:  loginLimiter,
		SignupLimiter: loginLimiter,
	})

	return &shell{engine: engine, store: store, document: doc, router: rt, toaster: toaster, clock: clk}
}

func (s *shell) close() {
	s.toaster.Stop()
	s.router.Stop()
}

func (s *shell) login() {
	s.store.Login(domain.User{ID: "1", Name: "Asha", Email: "asha@example.com", BusinessName: "Asha Stores"})
}

func (s *shell) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}
