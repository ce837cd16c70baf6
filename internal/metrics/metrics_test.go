package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointGroup(t *testing.T) {
	tests := map[string]string{
		"/inventory/api/products/":    "/inventory/products",
		"/inventory/api/products/12/": "/inventory/products",
		"/api/sales/api/invoices/":    "/sales/invoices",
		"/accounts/login/":            "/accounts/login",
		"/reports/api/sales/":         "/reports/sales",
		"/":                           "/",
		"":                            "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, EndpointGroup(in), in)
	}
}

func TestRecordBackendRequest(t *testing.T) {
	before := testutil.ToFloat64(backendRequests.WithLabelValues("GET", "/dashboard/data", "200"))
	RecordBackendRequest("get", "/dashboard/api/data/", 200, 15*time.Millisecond)
	after := testutil.ToFloat64(backendRequests.WithLabelValues("GET", "/dashboard/data", "200"))
	assert.Equal(t, before+1, after)

	RecordBackendRequest("GET", "/dashboard/api/data/", 0, time.Millisecond)
	assert.GreaterOrEqual(t, testutil.ToFloat64(backendRequests.WithLabelValues("GET", "/dashboard/data", "error")), 1.0)
}

func TestSetBackendOnline(t *testing.T) {
	SetBackendOnline(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(backendOnline))
	SetBackendOnline(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(backendOnline))
}

func TestHandlerServesRegistry(t *testing.T) {
	RecordNotification("success")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "khata_client_toast_notifications_total")
}
