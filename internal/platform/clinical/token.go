// Package clinical talks to the hospital's third-party clinical API. It
// keeps one bearer token per process and refreshes it ahead of expiry.
package clinical

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/medportal/porter/internal/platform/metrics"
)

const (
	// expiryMargin is subtracted from the token's own exp claim.
	expiryMargin = 5 * time.Minute
	// fallbackLifetime applies when the token carries no readable exp.
	fallbackLifetime = 55 * time.Minute
)

var (
	// ErrExternalAuth is returned when the clinical API rejects our
	// credentials or a freshly acquired token.
	ErrExternalAuth = errors.New("clinical api authentication failed")
	// ErrPatientNotFound is returned when the clinical API has no record for
	// the identifier.
	ErrPatientNotFound = errors.New("patient not found")
	// ErrUpstream wraps any other clinical API failure.
	ErrUpstream = errors.New("clinical api request failed")
)

// CachedToken is immutable once stored; a refresh swaps in a new value.
type CachedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenCache holds the process-wide bearer token. Concurrent misses may each
// acquire a token; the last store wins.
type TokenCache struct {
	authURL  string
	username string
	password string

	httpClient *http.Client
	slot       atomic.Pointer[CachedToken]
	now        func() time.Time
	logger     zerolog.Logger
}

// NewTokenCache returns an empty cache. httpClient may be nil.
func NewTokenCache(authURL, username, password string, httpClient *http.Client, logger zerolog.Logger) *TokenCache {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &TokenCache{
		authURL:    authURL,
		username:   username,
		password:   password,
		httpClient: httpClient,
		now:        time.Now,
		logger:     logger.With().Str("component", "clinical.token").Logger(),
	}
}

// GetToken returns the cached token while it is still valid and acquires a
// new one otherwise.
func (c *TokenCache) GetToken(ctx context.Context) (string, error) {
	if t := c.Cached(); t != nil && c.now().Before(t.ExpiresAt) {
		return t.Token, nil
	}
	t, err := c.acquire(ctx, "expired")
	if err != nil {
		return "", err
	}
	return t.Token, nil
}

// Refresh acquires a new token regardless of the cached expiry. Callers use
// it after the API rejected a token the cache still considered valid.
func (c *TokenCache) Refresh(ctx context.Context) (string, error) {
	t, err := c.acquire(ctx, "rejected")
	if err != nil {
		return "", err
	}
	return t.Token, nil
}

// Cached returns the current slot without any network call.
func (c *TokenCache) Cached() *CachedToken {
	return c.slot.Load()
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
}

func (c *TokenCache) acquire(ctx context.Context, trigger string) (*CachedToken, error) {
	t, err := c.requestToken(ctx)
	if err != nil {
		metrics.TokenAcquisitions.WithLabelValues(trigger, "error").Inc()
		c.logger.Error().Err(err).Str("trigger", trigger).Msg("token acquisition failed")
		return nil, err
	}
	prev := c.Cached()
	c.slot.Store(t)
	metrics.TokenAcquisitions.WithLabelValues(trigger, "ok").Inc()
	ev := c.logger.Debug().Str("trigger", trigger).Time("expires_at", t.ExpiresAt)
	if prev != nil {
		ev = ev.Time("replaced_expires_at", prev.ExpiresAt)
	}
	ev.Msg("token acquired")
	return t, nil
}

func (c *TokenCache) requestToken(ctx context.Context) (*CachedToken, error) {
	body, err := json.Marshal(credentials{Username: c.username, Password: c.password})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: auth endpoint returned %d", ErrExternalAuth, resp.StatusCode)
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: auth endpoint returned %d", ErrUpstream, resp.StatusCode)
	}

	var out tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode token response: %v", ErrUpstream, err)
	}
	token := out.AccessToken
	if token == "" {
		token = out.Token
	}
	if token == "" {
		return nil, fmt.Errorf("%w: empty token in response", ErrExternalAuth)
	}
	return &CachedToken{Token: token, ExpiresAt: c.expiryOf(token)}, nil
}

// expiryOf reads the exp claim without verifying the signature; we only need
// to know when the issuer will start rejecting the token.
func (c *TokenCache) expiryOf(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time.Add(-expiryMargin)
	}
	return c.now().Add(fallbackLifetime)
}
