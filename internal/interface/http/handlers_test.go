package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ockidea/ockidea-server/config"
	userapp "github.com/ockidea/ockidea-server/internal/application"
	"github.com/ockidea/ockidea-server/internal/infrastructure/memory"
	"github.com/ockidea/ockidea-server/pkg/validation"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	cfg := &config.Config{Env: "development"}
	svc := userapp.NewService(memory.NewUserRepository(), nil, nil, time.Minute)
	auth := NewAuthHandler(svc, nil, cfg)
	profile := NewProfileHandler(svc, nil, cfg)
	maint := NewMaintenanceHandler(svc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)
	api.POST("/auth/check-email", auth.CheckEmail)
	api.POST("/auth/check-nickname", auth.CheckNickname)
	api.GET("/profile/:id", profile.Get)
	api.PUT("/profile/:id", profile.Update)
	api.DELETE("/test/delete-all", maint.DeleteAll)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func registerBody() gin.H {
	return gin.H{
		"email":     "user@example.com",
		"password":  "password123",
		"nickname":  "테스트유저",
		"birthDate": "20030913",
		"gender":    "F",
		"bio":       "hello",
	}
}

func TestRegisterEndpoint_Success(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	env := decode(t, w)
	assert.True(t, env.Success)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "user@example.com", data["email"])
	assert.Equal(t, float64(1), data["daysSinceJoined"])
	assert.NotContains(t, data, "password")
	assert.NotContains(t, data, "passwordHash")
}

func TestRegisterEndpoint_MissingFieldsListsThem(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{"email": "user@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decode(t, w)
	assert.False(t, env.Success)

	var detail struct {
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal(env.Error, &detail))
	assert.ElementsMatch(t, []string{"password", "nickname", "birthDate"}, detail.Required)
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody())
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.Equal(t, "email is already in use", env.Message)
}

func TestRegisterEndpoint_ValidationDetails(t *testing.T) {
	r := newTestRouter(t)

	body := registerBody()
	body["email"] = "broken"
	body["birthDate"] = "20030230"
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decode(t, w)
	var details map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &details))
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "birthDate")
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody())

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": "USER@example.com", "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "$2a$")

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": "user@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": "ghost@example.com", "password": "password123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"email": "user@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody())
	env := decode(t, w)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w = doJSON(t, r, http.MethodGet, "/api/profile/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var data map[string]any
	env = decode(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Contains(t, data, "isAdmin")
	assert.Contains(t, data, "createdAt")
	assert.NotContains(t, data, "passwordHash")

	w = doJSON(t, r, http.MethodGet, "/api/profile/unknown-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileUpdateEndpoint_IgnoresImmutableFields(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody())
	env := decode(t, w)
	var created struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	// Extra fields are silently dropped, including isAdmin and email.
	w = doJSON(t, r, http.MethodPut, "/api/profile/"+created.ID, gin.H{
		"bio":       "updated bio",
		"isAdmin":   true,
		"email":     "hacker@example.com",
		"birthDate": "19000101",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	env = decode(t, w)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "updated bio", data["bio"])
	assert.Equal(t, created.Email, data["email"])
	assert.Equal(t, "20030913", data["birthDate"])
	assert.Equal(t, false, data["isAdmin"])

	w = doJSON(t, r, http.MethodPut, "/api/profile/unknown-id", gin.H{"bio": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckEndpoints(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody())

	w := doJSON(t, r, http.MethodPost, "/api/auth/check-email", gin.H{"email": "user@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	var data struct {
		Available bool `json:"available"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.False(t, data.Available)

	w = doJSON(t, r, http.MethodPost, "/api/auth/check-nickname", gin.H{"nickname": "새닉네임"})
	require.Equal(t, http.StatusOK, w.Code)
	env = decode(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.Available)
}

func TestDeleteAllEndpoint(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/api/auth/register", registerBody())

	w := doJSON(t, r, http.MethodDelete, "/api/test/delete-all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	var data struct {
		Deleted int64 `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(1), data.Deleted)
}
