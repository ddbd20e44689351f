package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldik/course-admin/internal/models"
	"github.com/foldik/course-admin/internal/service"
)

const (
	sessionBody = `{"data":{"username":"foldik","first_name":"Földi","last_name":"Kristóf","role":"Admin"}}`
	coursesBody = `{"page":2,"limit":5,"max":101,"data":[{"id":10,"title":"Hello World","short_description":"Hello World Short description","last_update":1551303867,"status":"Published"}]}`
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	NewAPI(service.NewSessionService(), service.NewCourseService()).Register(r)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestGetSession(t *testing.T) {
	r := setupRouter()

	first := get(r, "/api/session")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "application/json", first.Header().Get("Content-Type"))
	assert.Equal(t, sessionBody, first.Body.String())

	for i := 0; i < 3; i++ {
		assert.Equal(t, first.Body.Bytes(), get(r, "/api/session").Body.Bytes())
	}
}

func TestGetMe_MatchesSession(t *testing.T) {
	w := get(setupRouter(), "/api/me")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sessionBody, w.Body.String())
}

func TestGetSession_WithoutSessionIsUnauthorized(t *testing.T) {
	w := httptest.NewRecorder()
	NewSessionHandler().GetSession(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListCourses_Example(t *testing.T) {
	w := get(setupRouter(), "/admin/courses?page=2&limit=5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, coursesBody, w.Body.String())
}

func TestListCourses_EchoesPaging(t *testing.T) {
	r := setupRouter()
	cases := []struct{ page, limit uint32 }{
		{0, 0}, {1, 1}, {7, 100}, {4294967295, 3},
	}
	var firstData []models.CourseSummary
	for _, tc := range cases {
		w := get(r, fmt.Sprintf("/admin/courses?page=%d&limit=%d", tc.page, tc.limit))
		require.Equal(t, http.StatusOK, w.Code)

		var page models.Page[models.CourseSummary]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, tc.page, page.Page)
		assert.Equal(t, tc.limit, page.Limit)
		assert.Equal(t, uint32(101), page.Max)
		if firstData == nil {
			firstData = page.Data
		}
		assert.Equal(t, firstData, page.Data)
	}
}

func TestListCourses_BadQuery(t *testing.T) {
	r := setupRouter()
	for _, q := range []string{
		"page=abc&limit=5",
		"page=2&limit=x",
		"page=-1&limit=5",
		"page=2&limit=4294967296",
		"page=2",
		"limit=5",
		"",
		"page=&limit=5",
	} {
		w := get(r, "/admin/courses?"+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)

		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), q)
		assert.NotEmpty(t, body.Error, q)
	}
}

func TestParsePageRequest(t *testing.T) {
	req, err := ParsePageRequest(url.Values{"page": {"3"}, "limit": {"0"}})
	require.NoError(t, err)
	assert.Equal(t, models.PageRequest{Page: 3, Limit: 0}, req)

	_, err = ParsePageRequest(url.Values{"page": {"3"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"limit"`)

	_, err = ParsePageRequest(url.Values{"page": {"1.5"}, "limit": {"2"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"page"`)
}

func TestHelloRoutes(t *testing.T) {
	r := setupRouter()

	w := get(r, "/api")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello, world!", w.Body.String())

	w = get(r, "/api/2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello, world 2!", w.Body.String())
}

func TestHealth(t *testing.T) {
	w := get(setupRouter(), "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body models.Envelope[models.HealthStatus]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Data.Status)
	_, err := time.Parse(time.RFC3339, body.Data.Time)
	assert.NoError(t, err)
}
