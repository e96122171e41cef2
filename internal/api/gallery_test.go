package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duetly/backend/internal/models"
	"github.com/duetly/backend/internal/types"
)

// uploadPhoto posts a multipart photo with the given content type.
func uploadPhoto(t *testing.T, env *TestEnv, albumID, token, contentType string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="photo"; filename="photo.img"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/albums/"+albumID+"/photos", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.AddCookie(&http.Cookie{Name: types.AccessTokenCookie, Value: token})
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

func TestAlbumCRUD(t *testing.T) {
	env := SetupTestRouter(t)
	user, _ := env.CreateTestUser(t, "Alice", "alice@example.com")
	_, token := env.CreateTestCouple(t, user, "alice-and-bob")

	w := env.DoJSON(t, http.MethodPost, "/api/v1/albums", token, map[string]interface{}{
		"name":        "Summer 2024",
		"description": "Two weeks at the coast",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := createdID(t, w.Body.Bytes())

	w = env.DoJSON(t, http.MethodGet, "/api/v1/albums/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.Album `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Summer 2024", resp.Data.Name)
	assert.Empty(t, resp.Data.Photos)

	w = env.DoJSON(t, http.MethodGet, "/api/v1/albums", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []models.Album `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)

	w = env.DoJSON(t, http.MethodDelete, "/api/v1/albums/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.DoJSON(t, http.MethodGet, "/api/v1/albums/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadAndDeletePhoto(t *testing.T) {
	env := SetupTestRouter(t)
	user, _ := env.CreateTestUser(t, "Alice", "alice@example.com")
	_, token := env.CreateTestCouple(t, user, "alice-and-bob")

	w := env.DoJSON(t, http.MethodPost, "/api/v1/albums", token, map[string]interface{}{
		"name": "Summer 2024",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	albumID := createdID(t, w.Body.Bytes())

	w = uploadPhoto(t, env, albumID, token, "image/jpeg", []byte("jpeg-bytes"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 1, env.Images.uploads)

	var photoResp struct {
		Data models.Photo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photoResp))
	assert.Equal(t, "https://photos.test/photos/1", photoResp.Data.URL)

	// The album now carries the photo.
	w = env.DoJSON(t, http.MethodGet, "/api/v1/albums/"+albumID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var album struct {
		Data models.Album `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &album))
	require.Len(t, album.Data.Photos, 1)

	w = env.DoJSON(t, http.MethodDelete, "/api/v1/photos/"+photoResp.Data.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.DoJSON(t, http.MethodGet, "/api/v1/albums/"+albumID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	album.Data.Photos = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &album))
	assert.Empty(t, album.Data.Photos)
}

func TestUploadPhotoValidation(t *testing.T) {
	env := SetupTestRouter(t)
	user, _ := env.CreateTestUser(t, "Alice", "alice@example.com")
	_, token := env.CreateTestCouple(t, user, "alice-and-bob")

	w := env.DoJSON(t, http.MethodPost, "/api/v1/albums", token, map[string]interface{}{
		"name": "Summer 2024",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	albumID := createdID(t, w.Body.Bytes())

	// Disallowed content type.
	w = uploadPhoto(t, env, albumID, token, "image/svg+xml", []byte("<svg/>"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Over the size cap.
	w = uploadPhoto(t, env, albumID, token, "image/png", make([]byte, maxPhotoSize+1))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing file field.
	w = env.DoJSON(t, http.MethodPost, "/api/v1/albums/"+albumID+"/photos", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing reached storage.
	assert.Zero(t, env.Images.uploads)
}

func TestGalleryIsCoupleScoped(t *testing.T) {
	env := SetupTestRouter(t)
	alice, _ := env.CreateTestUser(t, "Alice", "alice@example.com")
	_, aliceToken := env.CreateTestCouple(t, alice, "alice-and-bob")
	carol, _ := env.CreateTestUser(t, "Carol", "carol@example.com")
	_, carolToken := env.CreateTestCouple(t, carol, "carol-and-dave")

	w := env.DoJSON(t, http.MethodPost, "/api/v1/albums", aliceToken, map[string]interface{}{
		"name": "Summer 2024",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	albumID := createdID(t, w.Body.Bytes())

	w = uploadPhoto(t, env, albumID, aliceToken, "image/jpeg", []byte("jpeg-bytes"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var photoResp struct {
		Data models.Photo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &photoResp))
	photoID := photoResp.Data.ID.String()

	// Another couple can neither see nor touch the album or its photos.
	w = env.DoJSON(t, http.MethodGet, "/api/v1/albums/"+albumID, carolToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.DoJSON(t, http.MethodDelete, "/api/v1/albums/"+albumID, carolToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = uploadPhoto(t, env, albumID, carolToken, "image/jpeg", []byte("jpeg-bytes"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.DoJSON(t, http.MethodDelete, "/api/v1/photos/"+photoID, carolToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.DoJSON(t, http.MethodGet, "/api/v1/albums", carolToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []models.Album `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Data)

	// The owner's album and photo survive untouched.
	w = env.DoJSON(t, http.MethodGet, "/api/v1/albums/"+albumID, aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var album struct {
		Data models.Album `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &album))
	assert.Len(t, album.Data.Photos, 1)
}

func TestGalleryRequiresCouple(t *testing.T) {
	env := SetupTestRouter(t)
	_, token := env.CreateTestUser(t, "Solo", "solo@example.com")

	w := env.DoJSON(t, http.MethodGet, "/api/v1/albums", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
