package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appsalute/clinic-booking/internal/session"
)

type stubSessions map[string]uint

func (s stubSessions) Validate(_ context.Context, token string) (uint, error) {
	if token == "store-down" {
		return 0, errors.New("connection refused")
	}
	if id, ok := s[token]; ok {
		return id, nil
	}
	return 0, session.ErrInvalidToken
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(), CORSMiddleware([]string{"http://localhost:5000"}))
	r.GET("/private", AuthMiddleware(stubSessions{"good": 7}, "sess"), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name   string
		cookie *http.Cookie
		status int
	}{
		{"no cookie", nil, http.StatusUnauthorized},
		{"unknown token", &http.Cookie{Name: "sess", Value: "bad"}, http.StatusUnauthorized},
		{"wrong cookie name", &http.Cookie{Name: "other", Value: "good"}, http.StatusUnauthorized},
		{"valid", &http.Cookie{Name: "sess", Value: "good"}, http.StatusOK},
		{"store failure", &http.Cookie{Name: "sess", Value: "store-down"}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			switch tt.status {
			case http.StatusOK:
				assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
			case http.StatusUnauthorized:
				assert.JSONEq(t, `{"error_code":"unauthorized","message":"Accesso richiesto."}`, w.Body.String())
			default:
				assert.Contains(t, w.Body.String(), `"error_code":"internal_error"`)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodOptions, "/private", nil)
	req.Header.Set("Origin", "http://localhost:5000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuthMiddlewareRedisOutageIsNotALogout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock := redismock.NewClientMock()
	defer db.Close()

	sessions := session.NewManager("test-secret", time.Hour, session.NewRedisStore(db))

	mock.Regexp().ExpectSet(`session:.+`, "7", time.Hour).SetVal("OK")
	token, _, err := sessions.Start(context.Background(), 7)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/private", AuthMiddleware(sessions, "sess"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: "sess", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	mock.Regexp().ExpectGet(`session:.+`).SetErr(errors.New("dial tcp: connection refused"))
	w := send()
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error_code":"internal_error","message":"Errore interno del server."}`, w.Body.String())

	mock.Regexp().ExpectGet(`session:.+`).RedisNil()
	w = send()
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
