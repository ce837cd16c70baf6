package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/SscSPs/digital_khata_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stateHandler serves the application state to the browser UI.
type stateHandler struct {
	store         StateStore
	document      ClassLister
	router        PageRouter
	notifications NotificationCenter
}

// registerStateRoutes registers state, theme, notification and page routes.
func registerStateRoutes(rg *gin.RouterGroup, deps Deps) {
	h := &stateHandler{
		store:         deps.Store,
		document:      deps.Document,
		router:        deps.Router,
		notifications: deps.Notifications,
	}

	rg.GET("/state", h.getState)

	theme := rg.Group("/theme")
	{
		theme.PUT("", h.setTheme)
		theme.POST("/toggle", h.toggleTheme)
	}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("", h.addNotification)
		notifications.DELETE("/:id", h.removeNotification)
	}

	page := rg.Group("/page")
	{
		page.GET("", h.getPage)
		page.PUT("", h.navigate)
	}
}

func (h *stateHandler) snapshot() dto.StateResponse {
	st := h.store.State()
	classes := []string{}
	if h.document != nil {
		classes = h.document.Classes()
	}
	return dto.StateResponse{
		Session:       dto.ToSessionResponse(st.Session),
		Theme:         st.Theme,
		RootClass:     classes,
		Notifications: st.Notifications,
		CurrentPage:   h.router.Current(),
	}
}

// getState godoc
// @Summary Current application state
// @Description Session, theme, root element classes, live notifications and the current page.
// @Tags state
// @Produce json
// @Success 200 {object} dto.StateResponse
// @Router /state [get]
func (h *stateHandler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot())
}

// setTheme godoc
// @Summary Set the theme
// @Tags state
// @Accept json
// @Produce json
// @Param theme body dto.ThemeRequest true "Theme"
// @Success 200 {object} dto.StateResponse
// @Failure 400 {object} map[string]string "Invalid theme"
// @Router /theme [put]
func (h *stateHandler) setTheme(c *gin.Context) {
	var req dto.ThemeRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := dto.Validate(req); err != nil {
		respondError(c, err, "Invalid theme")
		return
	}
	h.store.SetTheme(domain.Theme(req.Theme))
	middleware.GetLoggerFromContext(c).Info("Theme changed", slog.String("theme", req.Theme))
	c.JSON(http.StatusOK, h.snapshot())
}

func (h *stateHandler) toggleTheme(c *gin.Context) {
	theme := h.store.ToggleTheme()
	middleware.GetLoggerFromContext(c).Info("Theme toggled", slog.String("theme", string(theme)))
	c.JSON(http.StatusOK, h.snapshot())
}

func (h *stateHandler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.State().Notifications)
}

// addNotification godoc
// @Summary Raise a notification
// @Description The notification expires on its own unless dismissed first.
// @Tags state
// @Accept json
// @Produce json
// @Param notification body dto.NotificationRequest true "Notification"
// @Success 201 {object} domain.Notification
// @Failure 400 {object} map[string]string "Invalid notification"
// @Router /notifications [post]
func (h *stateHandler) addNotification(c *gin.Context) {
	var req dto.NotificationRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := dto.Validate(req); err != nil {
		respondError(c, err, "Invalid notification")
		return
	}
	kind, err := domain.ParseNotificationKind(req.Type)
	if err != nil {
		respondError(c, apperrors.NewValidationError("type", err.Error()), "Invalid notification")
		return
	}
	id := h.notifications.Show(req.Message, kind)
	c.JSON(http.StatusCreated, domain.Notification{ID: id, Message: req.Message, Type: kind})
}

func (h *stateHandler) removeNotification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apperrors.NewValidationError("id", "Notification id must be a number"), "Invalid notification id")
		return
	}
	// Unknown ids are ignored.
	h.notifications.Dismiss(id)
	c.Status(http.StatusNoContent)
}

func (h *stateHandler) getPage(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PageResponse{CurrentPage: h.router.Current()})
}

// navigate godoc
// @Summary Navigate to a page
// @Description The page actually shown may differ: private pages need a session and public pages redirect logged-in users to the dashboard.
// @Tags state
// @Accept json
// @Produce json
// @Param page body dto.PageRequest true "Page"
// @Success 200 {object} dto.PageResponse
// @Failure 400 {object} map[string]string "Unknown page"
// @Router /page [put]
func (h *stateHandler) navigate(c *gin.Context) {
	var req dto.PageRequest
	if !bindJSON(c, &req) {
		return
	}
	page, err := domain.ParsePage(req.Page)
	if err != nil {
		respondError(c, apperrors.NewValidationError("page", err.Error()), "Unknown page")
		return
	}
	shown := h.router.Navigate(page)
	c.JSON(http.StatusOK, dto.PageResponse{CurrentPage: shown})
}
