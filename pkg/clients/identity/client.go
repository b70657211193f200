package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/obradorhq/obrador/internal/config"
)

// ErrInvalidCredentials indicates the provider rejected the username/password
// pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidSession indicates the presented session token is not accepted by
// the provider.
var ErrInvalidSession = errors.New("invalid session")

// Client exposes the identity provider operations used by the application.
type Client interface {
	SignIn(ctx context.Context, username, password string) (*Session, error)
	Verify(ctx context.Context, token string) (*Identity, error)
}

// Session is the opaque authenticated-session handle returned on sign-in.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Identity is the resolved owner of a session token.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient  *resty.Client
	emailDomain string
}

// NewClient builds an identity provider client using the provided configuration values.
func NewClient(cfg config.IdentityConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second)

	return &APIClient{
		httpClient:  restyClient,
		emailDomain: cfg.EmailDomain,
	}
}

// apiError represents an identity provider error payload.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SyntheticEmail maps a username to the email-like identifier the provider
// stores accounts under: the local part only, lower-cased, at the configured
// domain.
func (c *APIClient) SyntheticEmail(username string) string {
	local := strings.ToLower(strings.TrimSpace(username))
	if at := strings.Index(local, "@"); at >= 0 {
		local = local[:at]
	}
	return local + "@" + c.emailDomain
}

// SignIn exchanges a username and password for a session handle. Credential
// rejections are folded into ErrInvalidCredentials regardless of the
// provider's detail; anything else surfaces as an unexpected error.
func (c *APIClient) SignIn(ctx context.Context, username, password string) (*Session, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	payload := map[string]any{
		"email":    c.SyntheticEmail(username),
		"password": password,
	}

	result := new(Session)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(result).
		SetError(apiErr).
		Post("/v1/sessions")
	if err != nil {
		return nil, fmt.Errorf("identity sign-in: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusBadRequest:
		return nil, ErrInvalidCredentials
	case resp.StatusCode() >= http.StatusBadRequest:
		return nil, fmt.Errorf("identity provider error: code=%d, message=%s", resp.StatusCode(), apiErr.Error.Message)
	}

	return result, nil
}

// Verify resolves a session token to the identity that owns it.
func (c *APIClient) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	result := new(Identity)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetResult(result).
		SetError(apiErr).
		Get("/v1/sessions/me")
	if err != nil {
		return nil, fmt.Errorf("identity verify: %w", err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized:
		return nil, ErrInvalidSession
	case resp.StatusCode() >= http.StatusBadRequest:
		return nil, fmt.Errorf("identity provider error: code=%d, message=%s", resp.StatusCode(), apiErr.Error.Message)
	}

	return result, nil
}
