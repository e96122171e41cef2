package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duetly/backend/internal/types"
)

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == types.AccessTokenCookie {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	env := SetupTestRouter(t)

	w := env.DoJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "testpassword123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	cookie := sessionCookie(t, w.Result())
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var resp struct {
		Data struct {
			User struct {
				Email string `json:"email"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Data.User.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := SetupTestRouter(t)
	env.CreateTestUser(t, "Alice", "alice@example.com")

	w := env.DoJSON(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "testpassword123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginAndMe(t *testing.T) {
	env := SetupTestRouter(t)
	env.CreateTestUser(t, "Alice", "alice@example.com")

	w := env.DoJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "testpassword123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w.Result())

	w = env.DoJSON(t, http.MethodGet, "/api/v1/auth/me", cookie.Value, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			User struct {
				Name string `json:"name"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Data.User.Name)
}

func TestLoginWrongPassword(t *testing.T) {
	env := SetupTestRouter(t)
	env.CreateTestUser(t, "Alice", "alice@example.com")

	w := env.DoJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeRequiresSession(t *testing.T) {
	env := SetupTestRouter(t)

	w := env.DoJSON(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.DoJSON(t, http.MethodGet, "/api/v1/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	env := SetupTestRouter(t)

	w := env.DoJSON(t, http.MethodPost, "/api/v1/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(t, w.Result())
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
