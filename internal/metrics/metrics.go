package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the client's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	shellRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "khata_client",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of requests handled by the companion shell.",
		},
		[]string{"method", "route", "status"},
	)

	shellDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "khata_client",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of requests handled by the companion shell.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	backendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "khata_client",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Total number of requests sent to the backend API.",
		},
		[]string{"method", "endpoint", "status"},
	)

	backendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "khata_client",
			Subsystem: "backend",
			Name:      "request_duration_seconds",
			Help:      "Duration of backend API requests.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		},
		[]string{"method", "endpoint"},
	)

	notificationsShown = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "khata_client",
			Subsystem: "toast",
			Name:      "notifications_total",
			Help:      "Total number of notifications raised.",
		},
		[]string{"type"},
	)

	offlineSynced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "khata_client",
			Subsystem: "offline",
			Name:      "invoices_synced_total",
			Help:      "Offline invoices processed by sync, by result.",
		},
		[]string{"result"},
	)

	backendOnline = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "khata_client",
			Subsystem: "backend",
			Name:      "online",
			Help:      "1 when the last connectivity probe reached the backend.",
		},
	)
)

func init() {
	Registry.MustRegister(
		shellRequests,
		shellDuration,
		backendRequests,
		backendDuration,
		notificationsShown,
		offlineSynced,
		backendOnline,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordShellRequest records one request served by the companion shell.
func RecordShellRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	method = strings.ToUpper(method)
	shellRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	shellDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordBackendRequest records one backend call. status is 0 for transport failures.
func RecordBackendRequest(method, path string, status int, duration time.Duration) {
	endpoint := EndpointGroup(path)
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	backendRequests.WithLabelValues(strings.ToUpper(method), endpoint, label).Inc()
	backendDuration.WithLabelValues(strings.ToUpper(method), endpoint).Observe(duration.Seconds())
}

// RecordNotification counts a raised notification.
func RecordNotification(kind string) {
	notificationsShown.WithLabelValues(kind).Inc()
}

// RecordOfflineSync counts invoices sent and failed during one sync pass.
func RecordOfflineSync(sent, failed int) {
	offlineSynced.WithLabelValues("sent").Add(float64(sent))
	offlineSynced.WithLabelValues("failed").Add(float64(failed))
}

// SetBackendOnline stores the outcome of the last connectivity probe.
func SetBackendOnline(online bool) {
	if online {
		backendOnline.Set(1)
		return
	}
	backendOnline.Set(0)
}

// EndpointGroup reduces a backend path to "/{app}/{resource}" so record ids do not
// explode label cardinality ("/inventory/api/products/12/" -> "/inventory/products").
func EndpointGroup(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.Split(trimmed, "/")
	kept := make([]string, 0, 2)
	for _, p := range parts {
		if p == "api" || p == "" {
			continue
		}
		if _, err := strconv.Atoi(p); err == nil {
			break
		}
		kept = append(kept, p)
		if len(kept) == 2 {
			break
		}
	}
	if len(kept) == 0 {
		return "/"
	}
	return "/" + strings.Join(kept, "/")
}
