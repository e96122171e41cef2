package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardBody struct {
	User struct {
		Email string `json:"email"`
	} `json:"user"`
	Couple *struct {
		Subdomain string `json:"subdomain"`
	} `json:"couple"`
	NeedsCouple bool `json:"needsCouple"`
	Stats       struct {
		Memories int64 `json:"memories"`
		Notes    int64 `json:"notes"`
	} `json:"stats"`
}

func TestDashboardWithoutCouple(t *testing.T) {
	env := SetupTestRouter(t)
	_, token := env.CreateTestUser(t, "Solo", "solo@example.com")

	w := env.DoJSON(t, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body dashboardBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.NeedsCouple)
	assert.Nil(t, body.Couple)
	assert.Equal(t, "solo@example.com", body.User.Email)
}

func TestDashboardWithCouple(t *testing.T) {
	env := SetupTestRouter(t)
	user, _ := env.CreateTestUser(t, "Alice", "alice@example.com")
	_, token := env.CreateTestCouple(t, user, "alice-and-bob")

	w := env.DoJSON(t, http.MethodPost, "/api/v1/memories", token, map[string]interface{}{
		"title": "First date",
		"date":  "2024-02-14T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = env.DoJSON(t, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body dashboardBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.NeedsCouple)
	require.NotNil(t, body.Couple)
	assert.Equal(t, "alice-and-bob", body.Couple.Subdomain)
	assert.Equal(t, int64(1), body.Stats.Memories)
	assert.Zero(t, body.Stats.Notes)
}

func TestDashboardRequiresSession(t *testing.T) {
	env := SetupTestRouter(t)

	w := env.DoJSON(t, http.MethodGet, "/api/v1/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
