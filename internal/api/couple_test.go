package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duetly/backend/internal/models"
)

func TestGetAndUpdateCouple(t *testing.T) {
	env := SetupTestRouter(t)
	user, _ := env.CreateTestUser(t, "Alice", "alice@example.com")
	_, token := env.CreateTestCouple(t, user, "alice-and-bob")

	w := env.DoJSON(t, http.MethodGet, "/api/v1/couple", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.Couple `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice-and-bob", resp.Data.Subdomain)

	w = env.DoJSON(t, http.MethodPut, "/api/v1/couple", token, map[string]interface{}{
		"title": "Alice & Bob",
		"bio":   "Together since 2020",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice & Bob", resp.Data.Title)
	assert.Equal(t, "Together since 2020", resp.Data.Bio)
}

func TestCoupleEndpointsRequireCouple(t *testing.T) {
	env := SetupTestRouter(t)
	_, token := env.CreateTestUser(t, "Solo", "solo@example.com")

	w := env.DoJSON(t, http.MethodGet, "/api/v1/couple", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAcceptInvite(t *testing.T) {
	env := SetupTestRouter(t)
	alice, _ := env.CreateTestUser(t, "Alice", "alice@example.com")
	couple, _ := env.CreateTestCouple(t, alice, "alice-and-bob")
	bob, bobToken := env.CreateTestUser(t, "Bob", "bob@example.com")

	w := env.DoJSON(t, http.MethodPost, "/api/v1/couple/invite/accept", bobToken, map[string]interface{}{
		"couple_id": couple.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var linked models.User
	require.NoError(t, env.DB.First(&linked, "id = ?", bob.ID).Error)
	require.NotNil(t, linked.CoupleID)
	assert.Equal(t, couple.ID, *linked.CoupleID)

	// A third partner cannot join, and partners cannot join twice.
	_, carolToken := env.CreateTestUser(t, "Carol", "carol@example.com")
	w = env.DoJSON(t, http.MethodPost, "/api/v1/couple/invite/accept", carolToken, map[string]interface{}{
		"couple_id": couple.ID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.DoJSON(t, http.MethodPost, "/api/v1/couple/invite/accept", bobToken, map[string]interface{}{
		"couple_id": couple.ID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPublicSite(t *testing.T) {
	env := SetupTestRouter(t)
	alice, _ := env.CreateTestUser(t, "Alice", "alice@example.com")
	_, token := env.CreateTestCouple(t, alice, "alice-and-bob")

	w := env.DoJSON(t, http.MethodPost, "/api/v1/memories", token, map[string]interface{}{
		"title": "First date",
		"date":  "2024-02-14T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The public site payload needs no session.
	w = env.DoJSON(t, http.MethodGet, "/api/v1/couple/site/alice-and-bob", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Couple struct {
				Subdomain string `json:"subdomain"`
			} `json:"couple"`
			Memories []models.Memory `json:"memories"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice-and-bob", resp.Data.Couple.Subdomain)
	assert.Len(t, resp.Data.Memories, 1)

	w = env.DoJSON(t, http.MethodGet, "/api/v1/couple/site/no-such-site", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
