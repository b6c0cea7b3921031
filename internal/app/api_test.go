package app

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brasketbro/lovenest/internal/models"
	"github.com/brasketbro/lovenest/internal/store"
)

func newTestApp() *fiber.App {
	return New(store.NewMemStorage())
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetRelationship(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, "GET", "/api/relationship", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rel := decode[models.Relationship](t, resp)
	assert.Equal(t, "2024-03-10", rel.StartDate)
	assert.Equal(t, "Mehak", rel.Partner1)
	assert.Equal(t, "Swapnil", rel.Partner2)
}

func TestPhotoLifecycle(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, "POST", "/api/photos",
		`{"title":"Beach","imageUrl":"http://x/1.jpg","date":"2024-05-01","category":"trips"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decode[models.Photo](t, resp)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Beach", created.Title)
	assert.Nil(t, created.Caption)
	assert.False(t, created.CreatedAt.IsZero())

	resp = doJSON(t, app, "GET", "/api/photos/category/trips", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	trips := decode[[]models.Photo](t, resp)
	require.Len(t, trips, 1)
	assert.Equal(t, created.ID, trips[0].ID)

	resp = doJSON(t, app, "DELETE", "/api/photos/1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/photos/category/trips", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	trips = decode[[]models.Photo](t, resp)
	assert.Empty(t, trips)
}

func TestCreatePhotoMissingTitle(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, "POST", "/api/photos",
		`{"imageUrl":"http://x/1.jpg","date":"2024-05-01","category":"trips"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Contains(t, body["error"], "title")
}

func TestUpdatePhoto(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, "POST", "/api/photos",
		`{"title":"Beach","imageUrl":"http://x/1.jpg","date":"2024-05-01","category":"trips"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "PUT", "/api/photos/1", `{"title":"Beach Day","caption":"golden hour"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decode[models.Photo](t, resp)
	assert.Equal(t, "Beach Day", updated.Title)
	require.NotNil(t, updated.Caption)
	assert.Equal(t, "golden hour", *updated.Caption)
	assert.Equal(t, "http://x/1.jpg", updated.ImageURL)
}

func TestPhotoInvalidID(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, "PUT", "/api/photos/abc", `{"title":"x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", "/api/photos/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPhotoNotFound(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, "PUT", "/api/photos/99", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", "/api/photos/99", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// 0 parses as an integer, so it reaches the store and misses.
	resp = doJSON(t, app, "DELETE", "/api/photos/0", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMessages(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, "POST", "/api/messages",
		`{"title":"Hi","content":"Missing you","sender":"Swapnil"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[models.Message](t, resp)
	assert.Equal(t, 1, created.ID)

	resp = doJSON(t, app, "POST", "/api/messages", `{"title":"Hi","sender":"Swapnil"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Contains(t, body["error"], "content")

	resp = doJSON(t, app, "GET", "/api/messages", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	messages := decode[[]models.Message](t, resp)
	require.Len(t, messages, 1)

	resp = doJSON(t, app, "DELETE", "/api/messages/1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", "/api/messages/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMilestones(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, "GET", "/api/milestones", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	milestones := decode[[]models.Milestone](t, resp)
	require.Len(t, milestones, 3)
	assert.Equal(t, "Started Talking", milestones[0].Title)

	resp = doJSON(t, app, "POST", "/api/milestones",
		`{"title":"First Date","date":"2024-03-20","description":"Coffee and a long walk."}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/milestones", "")
	milestones = decode[[]models.Milestone](t, resp)
	require.Len(t, milestones, 4)
	assert.Equal(t, "First Date", milestones[3].Title)

	resp = doJSON(t, app, "DELETE", "/api/milestones/4", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestBucketItemToggle(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, "POST", "/api/bucket-items", `{"title":"See the northern lights"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[models.BucketItem](t, resp)
	assert.False(t, created.Completed)
	assert.Nil(t, created.CompletedDate)

	resp = doJSON(t, app, "PUT", "/api/bucket-items/1/toggle", `{"completed":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	toggled := decode[models.BucketItem](t, resp)
	assert.True(t, toggled.Completed)
	require.NotNil(t, toggled.CompletedDate)
	assert.Equal(t, time.Now().Format("2006-01-02"), *toggled.CompletedDate)

	resp = doJSON(t, app, "PUT", "/api/bucket-items/1/toggle", `{"completed":false,"completedDate":"2024-06-01"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	toggled = decode[models.BucketItem](t, resp)
	assert.False(t, toggled.Completed)
	assert.Nil(t, toggled.CompletedDate)
}

func TestBucketItemToggleMissingCompleted(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, "POST", "/api/bucket-items", `{"title":"Road trip"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "PUT", "/api/bucket-items/1/toggle", `{"completedDate":"2024-06-01"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Contains(t, body["error"], "completed")
}

func doMultipart(t *testing.T, app *fiber.App, path, field, filename string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("not really a jpeg"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestUploadImage(t *testing.T) {
	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)
	app := newTestApp()

	resp := doMultipart(t, app, "/api/uploads", "image", "beach.jpg")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.True(t, strings.HasSuffix(body["filename"], ".jpg"))
	assert.Equal(t, "/uploads/"+body["filename"], body["url"])

	// The file lands in the upload dir under its generated name.
	_, err := os.Stat(filepath.Join(uploadDir, body["filename"]))
	assert.NoError(t, err)
}

func TestUploadImageBaseURL(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	t.Setenv("BASE_URL", "https://lovenest.example.com")
	app := newTestApp()

	resp := doMultipart(t, app, "/api/uploads", "image", "sunset.png")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Equal(t, "https://lovenest.example.com/uploads/"+body["filename"], body["url"])
}

func TestUploadImageMissingFile(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	app := newTestApp()

	resp := doMultipart(t, app, "/api/uploads", "wrongfield", "beach.jpg")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[map[string]string](t, resp)
	assert.Contains(t, body["error"], "image")
}

func TestBucketItemUpdateAndOrdering(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, "POST", "/api/bucket-items", `{"title":"Learn to surf"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, "POST", "/api/bucket-items", `{"title":"Visit Japan","completed":true}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "PUT", "/api/bucket-items/1", `{"notes":"book lessons first"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[models.BucketItem](t, resp)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "book lessons first", *updated.Notes)

	resp = doJSON(t, app, "GET", "/api/bucket-items", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decode[[]models.BucketItem](t, resp)
	require.Len(t, items, 2)
	assert.Equal(t, "Visit Japan", items[0].Title)

	resp = doJSON(t, app, "PUT", "/api/bucket-items/99", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
