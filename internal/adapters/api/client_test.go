package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/SscSPs/digital_khata_client/internal/adapters/api"
	"github.com/SscSPs/digital_khata_client/internal/adapters/storage"
	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/core/ports/repositories"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeBackend mimics the Django backend's session and JSON endpoints.
type fakeBackend struct {
	mu       sync.Mutex
	requests []*http.Request
	bodies   map[string]string
}

func (b *fakeBackend) record(r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, r)
	if b.bodies == nil {
		b.bodies = map[string]string{}
	}
	b.bodies[r.Method+" "+r.URL.Path] = string(body)
}

func (b *fakeBackend) last() *http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[len(b.requests)-1]
}

func (b *fakeBackend) body(key string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func newTestClient(t *testing.T, serverURL string, ls repositories.LocalStorageFacade) *api.Client {
	t.Helper()
	client, err := api.NewClient(api.Config{BackendURL: serverURL}, ls, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return client
}

type ClientTestSuite struct {
	suite.Suite
	backend *fakeBackend
	server  *httptest.Server
	storage *storage.FileStorage
	client  *api.Client
	ctx     context.Context
}

func (suite *ClientTestSuite) SetupTest() {
	suite.backend = &fakeBackend{}
	suite.server = httptest.NewServer(suite.routes())
	suite.storage = storage.NewMemoryStorage()
	suite.client = newTestClient(suite.T(), suite.server.URL, suite.storage)
	suite.ctx = context.Background()
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *ClientTestSuite) routes() http.Handler {
	b := suite.backend
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		_ = r.ParseForm()
		if r.PostForm.Get("username") != "asha@example.com" || r.PostForm.Get("password") != "secret" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "sess-1", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "csrf-1", Path: "/"})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/accounts/signup/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		_ = r.ParseForm()
		if r.PostForm.Get("password1") != r.PostForm.Get("password2") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/api/accounts/api/profile/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		if c, err := r.Cookie("sessionid"); err != nil || c.Value != "sess-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":1,"name":"Asha","email":"asha@example.com","businessName":"Asha Stores"}`))
	})
	mux.HandleFunc("/api/accounts/api/logout/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/inventory/api/products/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":"1","name":"Rice","sku":"R-1","category":"Grocery","stock":3,"price":"40.50","supplier":"Mill","lowStockThreshold":5}]`))
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"9","name":"Tea"}`))
		}
	})
	mux.HandleFunc("/api/inventory/api/products/1/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"id":"1"}`))
		case http.MethodPut:
			_, _ = w.Write([]byte(`{"id":"1","name":"Basmati"}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	mux.HandleFunc("/api/reports/api/sales/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		_, _ = w.Write([]byte(`{"total":"1200","from":"` + r.URL.Query().Get("from") + `"}`))
	})
	mux.HandleFunc("/api/dashboard/api/data/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		_, _ = w.Write([]byte(`{"total_sales":"1000","total_purchases":"400","total_products":12,"outstanding_invoices":2,"low_stock_products":1,"recent_invoices":3,"recent_bills":1,"top_products":[{"id":1,"name":"Rice","quantity":4,"price":"40"}]}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		http.NotFound(w, r)
	})
	return mux
}

func (suite *ClientTestSuite) TestDo_NotFoundCarriesStatus() {
	var out map[string]any
	err := suite.client.Do(suite.ctx, "/missing/", nil, &out)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "404")
	suite.ErrorIs(err, apperrors.ErrRequestFailed)
	suite.Equal(http.StatusNotFound, apperrors.StatusCodeOf(err))
	suite.Equal("API request failed: 404 Not Found", err.Error())
}

func (suite *ClientTestSuite) TestDo_DecodesJSONAndSendsDefaults() {
	p, err := suite.client.GetProduct(suite.ctx, "1")
	suite.Require().NoError(err)
	suite.Equal(domain.RecordID("1"), p.ID)

	req := suite.backend.last()
	suite.Equal("/api/inventory/api/products/1/", req.URL.Path)
	suite.Equal("application/json", req.Header.Get("Content-Type"))
}

func (suite *ClientTestSuite) TestDo_HeaderOverride() {
	err := suite.client.Do(suite.ctx, "/inventory/api/products/1/", &api.RequestOptions{
		Headers: http.Header{"Content-Type": []string{"text/plain"}},
	}, nil)
	suite.Require().NoError(err)
	suite.Equal("text/plain", suite.backend.last().Header.Get("Content-Type"))
}

func (suite *ClientTestSuite) TestDo_EmptyBodyDecodesToZeroValue() {
	suite.Require().NoError(suite.client.DeleteProduct(suite.ctx, "1"))
	suite.Equal(http.MethodDelete, suite.backend.last().Method)
}

func (suite *ClientTestSuite) TestLogin_TwoStepAndPersistsCookies() {
	user, err := suite.client.Login(suite.ctx, "asha@example.com", "secret")
	suite.Require().NoError(err)
	suite.Equal(domain.User{ID: "1", Name: "Asha", Email: "asha@example.com", BusinessName: "Asha Stores"}, *user)

	raw, ok := suite.storage.GetItem(repositories.KeySessionCookies)
	suite.Require().True(ok)
	suite.Contains(raw, "sess-1")

	// A second client over the same storage resumes the session.
	other := newTestClient(suite.T(), suite.server.URL, suite.storage)
	profile, err := other.Profile(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("Asha", profile.Name)
}

func (suite *ClientTestSuite) TestLogin_Rejected() {
	user, err := suite.client.Login(suite.ctx, "asha@example.com", "wrong")
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Equal("Invalid email or password", err.Error())
}

func (suite *ClientTestSuite) TestUnsafeRequestsCarryCSRFToken() {
	_, err := suite.client.Login(suite.ctx, "asha@example.com", "secret")
	suite.Require().NoError(err)

	_, err = suite.client.CreateProduct(suite.ctx, domain.Product{Name: "Tea", Price: decimal.NewFromInt(5)})
	suite.Require().NoError(err)
	suite.Equal("csrf-1", suite.backend.last().Header.Get("X-CSRFToken"))

	var sent map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(suite.backend.body("POST /api/inventory/api/products/")), &sent))
	suite.NotContains(sent, "id")
	suite.Equal("Tea", sent["name"])
}

func (suite *ClientTestSuite) TestLogoutClearsSession() {
	_, err := suite.client.Login(suite.ctx, "asha@example.com", "secret")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.client.Logout(suite.ctx))
	_, ok := suite.storage.GetItem(repositories.KeySessionCookies)
	suite.False(ok)

	_, err = suite.client.Profile(suite.ctx)
	suite.Equal(http.StatusUnauthorized, apperrors.StatusCodeOf(err))
}

func (suite *ClientTestSuite) TestSignupPostsForm() {
	err := suite.client.Signup(suite.ctx, dto.SignupRequest{Name: "Asha", BusinessName: "Asha Stores", Email: "asha@example.com", Password: "longenough"})
	suite.Require().NoError(err)

	form, err := url.ParseQuery(suite.backend.body("POST /accounts/signup/"))
	suite.Require().NoError(err)
	suite.Equal("asha@example.com", form.Get("username"))
	suite.Equal("Asha Stores", form.Get("business_name"))
	suite.Equal(form.Get("password1"), form.Get("password2"))
}

func (suite *ClientTestSuite) TestListProducts() {
	products, err := suite.client.ListProducts(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(products, 1)
	suite.True(decimal.RequireFromString("40.5").Equal(products[0].Price))
	suite.True(products[0].IsLowStock())
}

func (suite *ClientTestSuite) TestUpdateRequiresID() {
	_, err := suite.client.UpdateProduct(suite.ctx, domain.Product{Name: "no id"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	p, err := suite.client.UpdateProduct(suite.ctx, domain.Product{ID: "1", Name: "Basmati"})
	suite.Require().NoError(err)
	suite.Equal("Basmati", p.Name)
}

func (suite *ClientTestSuite) TestGetReportPassesQuery() {
	report, err := suite.client.GetReport(suite.ctx, domain.ReportSales, url.Values{"from": {"2024-01-01"}})
	suite.Require().NoError(err)
	suite.Equal("2024-01-01", report["from"])

	_, err = suite.client.GetReport(suite.ctx, "ledger", nil)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClientTestSuite) TestGetDashboardData() {
	data, err := suite.client.GetDashboardData(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(12, data.TotalProducts)
	suite.Require().Len(data.TopProducts, 1)
	suite.Equal(domain.RecordID("1"), data.TopProducts[0].ID)
}

func (suite *ClientTestSuite) TestPing() {
	suite.NoError(suite.client.Ping(suite.ctx))

	suite.server.Close()
	suite.Error(suite.client.Ping(suite.ctx))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestNewClient_RejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8000", "://bad"} {
		_, err := api.NewClient(api.Config{BackendURL: raw}, storage.NewMemoryStorage(), nil)
		assert.Error(t, err, raw)
	}
}

func TestDo_CustomBasePath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	defer srv.Close()

	client, err := api.NewClient(api.Config{BackendURL: srv.URL + "/", BasePath: "v2/"}, storage.NewMemoryStorage(), nil)
	require.NoError(t, err)

	var out struct {
		ID domain.RecordID `json:"id"`
	}
	require.NoError(t, client.Do(context.Background(), "/things/", nil, &out))
	assert.Equal(t, "/v2/things/", gotPath)
	assert.Equal(t, domain.RecordID("1"), out.ID)
}
