package link

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linkmoa/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	r := gin.New()
	NewHandler(newTestService(t, db), zap.NewNop()).RegisterRoutes(r)
	return r, db
}

func doJSON(r *gin.Engine, method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListEndpointShape(t *testing.T) {
	r, db := newTestRouter(t)
	for i := 0; i < 3; i++ {
		seedLink(t, db, "u1", "item "+strconv.Itoa(i), "")
	}

	w := doJSON(r, http.MethodGet, "/links?user_id=u1&skip=0&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Total int64              `json:"total"`
		Links []models.LinkModel `json:"links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.Total)
	assert.Len(t, body.Links, 2)
}

func TestListEndpointRequiresUserID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/links", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExploreEndpointReturnsBareArray(t *testing.T) {
	r, db := newTestRouter(t)
	seedLink(t, db, "u1", "mine", "")
	seedLink(t, db, "u2", "theirs", "")

	w := doJSON(r, http.MethodGet, "/explore", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.LinkModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)
}

func TestCreateEndpointRequiresURL(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/links", map[string]string{"user_id": "u1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadEndpointUnsupportedFormat(t *testing.T) {
	r, db := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, _ = part.Write([]byte("plain text"))
	require.NoError(t, mw.WriteField("user_id", "u1"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// The pipeline degrades to a structured error body, not an HTTP error.
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, msgUnsupportedFormat, body["error"])

	var count int64
	require.NoError(t, db.Model(&models.LinkModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUploadEndpointRequiresFile(t *testing.T) {
	r, _ := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("user_id", "u1"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateEndpointNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPut, "/links/999", map[string]string{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEndpointInvalidID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPut, "/links/abc", map[string]string{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteEndpoint(t *testing.T) {
	r, db := newTestRouter(t)
	item := seedLink(t, db, "u1", "doomed", "")

	w := doJSON(r, http.MethodDelete, "/links/"+strconv.FormatUint(uint64(item.ID), 10), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Deleted", body["message"])

	var count int64
	require.NoError(t, db.Model(&models.LinkModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteEndpointNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodDelete, "/links/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
