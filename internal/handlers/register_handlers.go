package handlers

import (
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/core/state"
	"github.com/SscSPs/digital_khata_client/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// StateStore is the part of the state container the shell reads and drives.
type StateStore interface {
	State() state.State
	SetTheme(theme domain.Theme)
	ToggleTheme() domain.Theme
}

// ClassLister exposes the root element classes.
type ClassLister interface {
	Classes() []string
}

// PageRouter is the page router.
type PageRouter interface {
	Current() domain.Page
	Navigate(page domain.Page) domain.Page
}

// NotificationCenter raises and dismisses notifications.
type NotificationCenter interface {
	Show(message string, kind domain.NotificationKind) int64
	Dismiss(id int64)
}

// Deps carries everything the routes need.
type Deps struct {
	Services      *portssvc.ServiceContainer
	Store         StateStore
	Document      ClassLister
	Router        PageRouter
	Notifications NotificationCenter
	// LoginLimiter throttles login attempts per client IP. Nil disables it.
	LoginLimiter *limiter.Limiter
	// SignupLimiter throttles signups per client IP. Nil disables it.
	SignupLimiter *limiter.Limiter
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, deps Deps) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	registerHomeRoutes(r)

	v1 := r.Group("/api/v1")

	// Public: the UI needs state, theme, notifications and navigation before login.
	registerStateRoutes(v1, deps)
	registerAuthRoutes(v1, deps)

	setupSessionRoutes(v1, deps)
}

// setupSessionRoutes configures the routes that need a logged-in user.
func setupSessionRoutes(v1 *gin.RouterGroup, deps Deps) {
	gated := v1.Group("", middleware.RequireSession(deps.Store))

	svc := deps.Services
	registerDashboardRoutes(gated, svc.Dashboard)
	registerInventoryRoutes(gated, svc.Inventory)
	registerSalesRoutes(gated, svc.Sales)
	registerPurchaseRoutes(gated, svc.Purchases)
	registerAccountRoutes(gated, svc.Accounting)
	registerReportRoutes(gated, svc.Reports)
	registerOfflineRoutes(gated, svc.Offline)
}
