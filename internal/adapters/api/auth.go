package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/dto"
)

const (
	loginPath   = "/accounts/login/"
	signupPath  = "/accounts/signup/"
	profilePath = "/accounts/api/profile/"
	logoutPath  = "/accounts/api/logout/"
)

// Login posts the credentials as a form to the session login page, outside the
// API base path, and then loads the profile. A rejected form is reported as
// apperrors.ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	resp, err := c.postForm(ctx, loginPath, form)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	drain(resp)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("Backend rejected login", slog.Int("status", resp.StatusCode))
		return nil, apperrors.ErrInvalidCredentials
	}

	return c.Profile(ctx)
}

// Signup registers a new account through the backend's signup form.
func (c *Client) Signup(ctx context.Context, req dto.SignupRequest) error {
	form := url.Values{}
	form.Set("username", req.Email)
	form.Set("email", req.Email)
	form.Set("first_name", req.Name)
	form.Set("business_name", req.BusinessName)
	form.Set("password1", req.Password)
	form.Set("password2", req.Password)

	resp, err := c.postForm(ctx, signupPath, form)
	if err != nil {
		return fmt.Errorf("signup request failed: %w", err)
	}
	return decodeResponse(resp, nil)
}

// Profile returns the user of the current session.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	user, err := request[domain.User](ctx, c, profilePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &user, nil
}

// Logout ends the backend session. Local cookies are dropped whatever the outcome.
func (c *Client) Logout(ctx context.Context) error {
	defer c.jar.Clear()
	if err := c.Do(ctx, logoutPath, &RequestOptions{Method: http.MethodPost}, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.originURL(path), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req)
}
