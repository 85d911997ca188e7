package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/vidtube_backend/internal/apperrors"
	"github.com/SscSPs/vidtube_backend/internal/core/domain"
	"github.com/SscSPs/vidtube_backend/internal/dto"
	"github.com/SscSPs/vidtube_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	user *domain.User
}

func (s stubSessions) Login(context.Context, string, string) (*domain.LoginResult, error) {
	return nil, nil
}
func (s stubSessions) Logout(context.Context, string) error { return nil }
func (s stubSessions) Refresh(context.Context, string) (*domain.TokenPair, error) {
	return nil, nil
}
func (s stubSessions) ChangePassword(context.Context, string, string, string) error { return nil }
func (s stubSessions) VerifyAccess(_ context.Context, token string) (*domain.User, error) {
	if token != "good" {
		return nil, apperrors.ErrUnauthorized
	}
	return s.user, nil
}

func newEngine(logs *bytes.Buffer, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(logs, nil))))
	r.GET("/t", handlers...)
	return r
}

func TestAuthMiddleware_StoresUserInContext(t *testing.T) {
	user := &domain.User{UserID: "u-1", Username: "alice"}
	var logs bytes.Buffer
	var seen *domain.User
	r := newEngine(&logs, middleware.AuthMiddleware(stubSessions{user: user}, "accessToken"), func(c *gin.Context) {
		seen, _ = middleware.GetUserFromContext(c)
		id, _ := middleware.GetUserIDFromContext(c)
		assert.Equal(t, "u-1", id)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "alice", seen.Username)
	assert.Contains(t, logs.String(), `"user_id":"u-1"`)
}

func TestAuthMiddleware_RejectsMalformedHeader(t *testing.T) {
	var logs bytes.Buffer
	r := newEngine(&logs, middleware.AuthMiddleware(stubSessions{}, "accessToken"), func(c *gin.Context) {
		t.Fatal("handler must not run")
	})

	for _, header := range []string{"", "good", "Basic good", "Bearer bad"} {
		req := httptest.NewRequest(http.MethodGet, "/t", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestStructuredLogging_ReusesRequestID(t *testing.T) {
	var logs bytes.Buffer
	r := newEngine(&logs, func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	assert.Contains(t, logs.String(), `"request_id":"req-42"`)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewMemoryLimiter("2-M")
	require.NoError(t, err)
	var logs bytes.Buffer
	r := newEngine(&logs, middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewMemoryLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewMemoryLimiter("lots")
	assert.Error(t, err)
}
