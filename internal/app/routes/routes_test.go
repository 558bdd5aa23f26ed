package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnqdo/tnqdo-backend/internal/app/controllers"
	"github.com/tnqdo/tnqdo-backend/internal/app/repositories"
	"github.com/tnqdo/tnqdo-backend/internal/app/services"
	"github.com/tnqdo/tnqdo-backend/internal/events"
	"github.com/tnqdo/tnqdo-backend/internal/kvstore"
	"github.com/tnqdo/tnqdo-backend/internal/middleware"
	"github.com/tnqdo/tnqdo-backend/internal/pkg/auth"
)

// envelope mirrors the wire shape of every response.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zerolog.Nop()
	repos := repositories.NewLocalRepositories(kvstore.NewMemStore(), log)
	notifier := events.NewNotifier(log)
	checker := auth.ContextChecker{}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "tnqdo.com",
	})

	authSvc, err := services.NewAuthService("admin@tnqdo.com", "s3cret", jwtService, log)
	require.NoError(t, err)

	router := gin.New()
	SetupRouter(
		router,
		controllers.NewAuthController(authSvc),
		controllers.NewCourseController(services.NewCourseService(repos.Courses, notifier, checker, log)),
		controllers.NewBlogController(services.NewBlogService(repos.Blog, notifier, checker, log)),
		controllers.NewTeacherController(services.NewTeacherService(repos.Teachers, log)),
		controllers.NewFAQController(services.NewFAQService(repos.FAQs, log)),
		controllers.NewContactController(services.NewContactService(repos.Contact, checker, log)),
		controllers.NewStatsController(services.NewStatsService(repos, checker, log)),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@tnqdo.com",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, env.Error)

	var token struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &token))
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, env.Error)
	assert.JSONEq(t, `{"message":"ok"}`, string(env.Data))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "admin@tnqdo.com",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTH_001", env.Error.Code)
}

func TestLoginValidatesRequestBody(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VAL_001", env.Error.Code)
	assert.NotEmpty(t, env.Error.Details)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/admin/courses", "", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTH_004", env.Error.Code)
}

func TestAdminRoutesRejectGarbageToken(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/admin/courses", "not.a.token", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "AUTH_002", env.Error.Code)
}

func TestCourseLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/admin/courses", token, map[string]interface{}{
		"name":  "JLPT N5",
		"price": 1500000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Nil(t, env.Error)

	var created struct {
		ID    string `json:"id"`
		Level string `json:"level"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "course-1", created.ID)
	assert.Equal(t, "N5", created.Level)

	w, env = doJSON(t, router, http.MethodGet, "/api/v1/courses/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, env.Error)

	w, env = doJSON(t, router, http.MethodPut, "/api/v1/admin/courses/"+created.ID, token, map[string]interface{}{
		"name": "JLPT N5 mới",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, env.Error)

	w, env = doJSON(t, router, http.MethodDelete, "/api/v1/admin/courses/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, env.Error)

	w, env = doJSON(t, router, http.MethodGet, "/api/v1/courses/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RES_001", env.Error.Code)
}

func TestCourseSnapshotOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	_, env := doJSON(t, router, http.MethodPost, "/api/v1/admin/courses", token, map[string]string{"name": "exported"})
	require.Nil(t, env.Error)

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/admin/courses/export", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, env.Error)

	var snapshot struct {
		Snapshot string `json:"snapshot"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &snapshot))
	require.NotEmpty(t, snapshot.Snapshot)

	w, env = doJSON(t, router, http.MethodPost, "/api/v1/admin/courses/import", token, map[string]string{
		"snapshot": snapshot.Snapshot,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, env.Error)

	w, env = doJSON(t, router, http.MethodPost, "/api/v1/admin/courses/import", token, map[string]string{
		"snapshot": "{broken",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VAL_003", env.Error.Code)

	// A "null" snapshot parses but is not an array; it must be
	// rejected instead of emptying the catalog.
	w, env = doJSON(t, router, http.MethodPost, "/api/v1/admin/courses/import", token, map[string]string{
		"snapshot": "null",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VAL_003", env.Error.Code)

	w, env = doJSON(t, router, http.MethodGet, "/api/v1/courses", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var courses []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	assert.Len(t, courses, 1)
}

func TestBlogReadBySlugOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	_, env := doJSON(t, router, http.MethodPost, "/api/v1/admin/blog", token, map[string]string{
		"title": "Mẹo Học Kanji",
	})
	require.Nil(t, env.Error)

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/blog/meo-hoc-kanji", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, env.Error)

	var post struct {
		Slug  string `json:"slug"`
		Views int64  `json:"views"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))
	assert.Equal(t, "meo-hoc-kanji", post.Slug)
	assert.Equal(t, int64(1), post.Views)
}

func TestContactFormOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/contact", "", map[string]string{
		"name":    "Lan",
		"email":   "lan@example.com",
		"subject": "Tư vấn",
		"message": "Em muốn học N5",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Nil(t, env.Error)

	// Reading messages needs an admin session.
	w, env = doJSON(t, router, http.MethodGet, "/api/v1/admin/contact", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, router)
	w, env = doJSON(t, router, http.MethodGet, "/api/v1/admin/contact", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, env.Error)

	var messages []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "pending", messages[0].Status)

	w, env = doJSON(t, router, http.MethodPut, "/api/v1/admin/contact/"+messages[0].ID+"/status", token, map[string]string{
		"status": "resolved",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, env.Error)

	w, env = doJSON(t, router, http.MethodPut, "/api/v1/admin/contact/"+messages[0].ID+"/status", token, map[string]string{
		"status": "bogus",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VAL_001", env.Error.Code)
}

func TestStatsOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	_, env := doJSON(t, router, http.MethodPost, "/api/v1/admin/courses", token, map[string]string{"name": "a"})
	require.Nil(t, env.Error)

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, env.Error)

	var stats struct {
		Courses       int `json:"courses"`
		ActiveCourses int `json:"activeCourses"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1, stats.Courses)
	assert.Equal(t, 1, stats.ActiveCourses)
}
