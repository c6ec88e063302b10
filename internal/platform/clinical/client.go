package clinical

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Patient is the subset of the clinical record the portal displays.
type Patient struct {
	HN        string `json:"hn"`
	Title     string `json:"title"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
}

// Client calls the clinical API with the cached bearer token.
type Client struct {
	baseURL    string
	tokens     *TokenCache
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient returns a Client. httpClient may be nil.
func NewClient(baseURL string, tokens *TokenCache, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "clinical.client").Logger(),
	}
}

// LookupPatient fetches a patient by hospital number. A 401 refreshes the
// token once and retries once; a second 401 returns ErrExternalAuth.
func (c *Client) LookupPatient(ctx context.Context, hn string) (*Patient, error) {
	hn = strings.TrimSpace(hn)
	if hn == "" {
		return nil, fmt.Errorf("%w: empty hospital number", ErrPatientNotFound)
	}

	token, err := c.tokens.GetToken(ctx)
	if err != nil {
		return nil, err
	}
	p, code, err := c.fetchPatient(ctx, hn, token)
	if code != http.StatusUnauthorized {
		return p, err
	}

	c.logger.Info().Msg("token rejected, refreshing")
	token, err = c.tokens.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	p, code, err = c.fetchPatient(ctx, hn, token)
	if code == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: token rejected after refresh", ErrExternalAuth)
	}
	return p, err
}

func (c *Client) fetchPatient(ctx context.Context, hn, token string) (*Patient, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/patients/"+url.PathEscape(hn), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build patient request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, resp.StatusCode, ErrExternalAuth
	case resp.StatusCode == http.StatusNotFound:
		return nil, resp.StatusCode, ErrPatientNotFound
	case resp.StatusCode >= 300:
		return nil, resp.StatusCode, fmt.Errorf("%w: patient endpoint returned %d", ErrUpstream, resp.StatusCode)
	}

	var p Patient
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: decode patient: %v", ErrUpstream, err)
	}
	if p.HN == "" {
		p.HN = hn
	}
	return &p, resp.StatusCode, nil
}
