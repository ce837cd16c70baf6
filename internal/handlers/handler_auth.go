package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/SscSPs/digital_khata_client/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles login, signup and the settings forms.
type authHandler struct {
	sessionService portssvc.SessionSvcFacade
	store          StateStore
}

// registerAuthRoutes registers the session routes. Login and signup are rate limited.
func registerAuthRoutes(rg *gin.RouterGroup, deps Deps) {
	h := &authHandler{sessionService: deps.Services.Session, store: deps.Store}

	session := rg.Group("/session")
	{
		session.POST("/login", append(throttle(deps.LoginLimiter), h.login)...)
		session.POST("/signup", append(throttle(deps.SignupLimiter), h.signup)...)

		session.POST("/logout", h.logout)
		session.POST("/refresh", h.refresh)

		session.PUT("/password", middleware.RequireSession(deps.Store), h.changePassword)
		session.PUT("/profile", middleware.RequireSession(deps.Store), h.updateProfile)
	}
}

// throttle returns the rate limit middleware for l, or nothing when l is nil.
func throttle(l *limiter.Limiter) []gin.HandlerFunc {
	if l == nil {
		return nil
	}
	return []gin.HandlerFunc{middleware.RateLimit(l)}
}

func (h *authHandler) session() dto.SessionResponse {
	return dto.ToSessionResponse(h.store.State().Session)
}

// login godoc
// @Summary Log in
// @Description Posts the credentials to the backend login form and loads the profile.
// @Tags session
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /session/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.sessionService.Login(c.Request.Context(), req); err != nil {
		respondError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, h.session())
}

// signup godoc
// @Summary Create an account
// @Tags session
// @Accept json
// @Produce json
// @Param account body dto.SignupRequest true "Signup form"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Validation error"
// @Router /session/signup [post]
func (h *authHandler) signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.sessionService.Signup(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully! Please log in."})
}

func (h *authHandler) logout(c *gin.Context) {
	if err := h.sessionService.Logout(c.Request.Context()); err != nil {
		respondError(c, err, "Logout failed")
		return
	}
	c.JSON(http.StatusOK, h.session())
}

func (h *authHandler) refresh(c *gin.Context) {
	if _, err := h.sessionService.Refresh(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to refresh session")
		return
	}
	c.JSON(http.StatusOK, h.session())
}

func (h *authHandler) changePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.sessionService.ChangePassword(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to change password")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *authHandler) updateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.sessionService.UpdateProfile(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}
	c.Status(http.StatusNoContent)
}
