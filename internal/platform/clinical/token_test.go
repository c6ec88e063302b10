package clinical

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
		Subject:   "porter-portal",
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

// authServer counts token requests and answers each with issue().
func authServer(t *testing.T, issue func(n int32) string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username != "svc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		n := calls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": issue(n)})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestGetToken_CachedUntilMargin(t *testing.T) {
	exp := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	tok := signedToken(t, exp)
	srv, calls := authServer(t, func(int32) string { return tok })

	c := NewTokenCache(srv.URL, "svc", "pw", srv.Client(), zerolog.Nop())
	now := exp.Add(-30 * time.Minute)
	c.now = func() time.Time { return now }

	if _, err := c.GetToken(context.Background()); err != nil {
		t.Fatalf("first GetToken: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 acquisition, got %d", calls.Load())
	}
	if got := c.Cached().ExpiresAt; !got.Equal(exp.Add(-5 * time.Minute)) {
		t.Errorf("expected expiry exp-5m, got %v", got)
	}

	now = exp.Add(-6 * time.Minute)
	got, err := c.GetToken(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != tok {
		t.Error("expected the cached token")
	}
	if calls.Load() != 1 {
		t.Errorf("expected no network call at T-6m, got %d acquisitions", calls.Load())
	}

	now = exp.Add(-4 * time.Minute)
	if _, err := c.GetToken(context.Background()); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 2 {
		t.Errorf("expected a refresh at T-4m, got %d acquisitions", calls.Load())
	}
}

func TestGetToken_OpaqueTokenUsesFallbackLifetime(t *testing.T) {
	srv, _ := authServer(t, func(int32) string { return "not-a-jwt" })
	c := NewTokenCache(srv.URL, "svc", "pw", srv.Client(), zerolog.Nop())
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if _, err := c.GetToken(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := c.Cached().ExpiresAt; !got.Equal(now.Add(55 * time.Minute)) {
		t.Errorf("expected now+55m, got %v", got)
	}
}

func TestRefresh_AlwaysAcquires(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	srv, calls := authServer(t, func(n int32) string { return signedToken(t, exp.Add(time.Duration(n)*time.Second)) })
	var logs bytes.Buffer
	c := NewTokenCache(srv.URL, "svc", "pw", srv.Client(), zerolog.New(&logs).Level(zerolog.DebugLevel))

	first, err := c.GetToken(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(logs.String(), "replaced_expires_at") {
		t.Errorf("first acquisition has nothing to replace: %s", logs.String())
	}
	logs.Reset()
	second, err := c.Refresh(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("expected a new token after Refresh")
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 acquisitions, got %d", calls.Load())
	}
	if c.Cached().Token != second {
		t.Error("expected the slot to hold the refreshed token")
	}
	if !strings.Contains(logs.String(), `"replaced_expires_at"`) || !strings.Contains(logs.String(), `"trigger":"rejected"`) {
		t.Errorf("refresh should log the replaced expiry, got %s", logs.String())
	}
}

func TestGetToken_BadCredentials(t *testing.T) {
	srv, _ := authServer(t, func(int32) string { return "x" })
	c := NewTokenCache(srv.URL, "intruder", "pw", srv.Client(), zerolog.Nop())

	_, err := c.GetToken(context.Background())
	if !errors.Is(err, ErrExternalAuth) {
		t.Fatalf("expected ErrExternalAuth, got %v", err)
	}
	if c.Cached() != nil {
		t.Error("a failed acquisition must not populate the cache")
	}
}

func TestGetToken_FailedRefreshKeepsOldToken(t *testing.T) {
	exp := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	tok := signedToken(t, exp)
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": tok})
	}))
	defer srv.Close()

	c := NewTokenCache(srv.URL, "svc", "pw", srv.Client(), zerolog.Nop())
	c.now = func() time.Time { return exp.Add(-time.Hour) }
	if _, err := c.GetToken(context.Background()); err != nil {
		t.Fatal(err)
	}

	fail.Store(true)
	if _, err := c.Refresh(context.Background()); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if c.Cached() == nil || c.Cached().Token != tok {
		t.Error("expected the previous token to stay in place")
	}
}
