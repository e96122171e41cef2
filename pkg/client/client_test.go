package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duetly/backend/internal/types"
)

func TestCheckExistsRegistered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/onboarding/check-subdomain", r.URL.Path)
		assert.Equal(t, "alice-bob", r.URL.Query().Get("subdomain"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"available":false}}`))
	}))
	defer srv.Close()

	c := NewExistenceClient(srv.URL)
	assert.True(t, c.CheckExists(context.Background(), "alice-bob"))
}

func TestCheckExistsUnclaimed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"available":true}}`))
	}))
	defer srv.Close()

	c := NewExistenceClient(srv.URL)
	assert.False(t, c.CheckExists(context.Background(), "nobody"))
}

func TestCheckExistsFailClosed(t *testing.T) {
	// Backend unreachable: the server is closed before the call.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewExistenceClient(srv.URL)
	assert.False(t, c.CheckExists(context.Background(), "alice-bob"))
}

func TestCheckExistsNon200FailClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewExistenceClient(srv.URL)
	assert.False(t, c.CheckExists(context.Background(), "alice-bob"))
}

func TestCurrentUserEmptyTokenSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewSessionClient(srv.URL)
	assert.Nil(t, c.CurrentUser(context.Background(), ""))
	assert.False(t, called)
}

func TestCurrentUserSendsCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(types.AccessTokenCookie)
		assert.NoError(t, err)
		assert.Equal(t, "tok123", cookie.Value)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"user":{"id":"0f8fad5b-d9cb-469f-a165-70867728950e","name":"Alice","email":"alice@example.com"}}}`))
	}))
	defer srv.Close()

	c := NewSessionClient(srv.URL)
	user := c.CurrentUser(context.Background(), "tok123")
	assert.NotNil(t, user)
	assert.Equal(t, "Alice", user.Name)
}

func TestCurrentUserUnauthorizedIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewSessionClient(srv.URL)
	assert.Nil(t, c.CurrentUser(context.Background(), "expired"))
}

func TestCurrentUserTransportErrorIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewSessionClient(srv.URL)
	assert.Nil(t, c.CurrentUser(context.Background(), "tok"))
}
