// Package client holds the thin HTTP clients the tenant gateway and
// server-rendered pages use to talk to the API backend. Both clients swallow
// transport errors into conservative defaults: a site that cannot be
// verified does not exist, and a session that cannot be verified is
// unauthenticated.
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/duetly/backend/internal/models"
	"github.com/duetly/backend/internal/types"
)

const defaultTimeout = 5 * time.Second

// ExistenceClient asks the backend whether a subdomain is registered.
type ExistenceClient struct {
	baseURL string
	http    *http.Client
}

func NewExistenceClient(baseURL string) *ExistenceClient {
	return &ExistenceClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// CheckExists reports whether the subdomain belongs to a registered couple.
// Any transport failure, non-success status, or an "available" (unclaimed)
// answer reports false; callers redirect away rather than render. No retries.
func (c *ExistenceClient) CheckExists(ctx context.Context, subdomain string) bool {
	endpoint := c.baseURL + "/api/v1/onboarding/check-subdomain?subdomain=" + url.QueryEscape(subdomain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	var body struct {
		Data types.SubdomainCheckResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false
	}

	// Available means unclaimed, so the site does not exist.
	return !body.Data.Available
}

// SessionClient resolves the current user from an accessToken cookie value.
type SessionClient struct {
	baseURL string
	http    *http.Client
}

func NewSessionClient(baseURL string) *SessionClient {
	return &SessionClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// CurrentUser returns the session's user, or nil when the token is empty,
// invalid, or the backend cannot be reached. An empty token never makes a
// network call. Callers that require auth redirect to login themselves.
func (c *SessionClient) CurrentUser(ctx context.Context, accessToken string) *models.User {
	if accessToken == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/auth/me", nil)
	if err != nil {
		return nil
	}
	req.AddCookie(&http.Cookie{Name: types.AccessTokenCookie, Value: accessToken})

	resp, err := c.http.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var body struct {
		Data types.SessionResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil
	}
	return body.Data.User
}
