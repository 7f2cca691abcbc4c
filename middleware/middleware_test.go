package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/amancoderhub/EMS-Event-management-System/common/errors"
	"github.com/amancoderhub/EMS-Event-management-System/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSessions struct {
	sess *models.Session
}

func (f *fakeSessions) Session() *models.Session { return f.sess }

func setupRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(apperrors.ErrorMiddleware())
	handlers = append(handlers, func(c *gin.Context) {
		if sess, ok := GetSession(c); ok {
			c.JSON(http.StatusOK, gin.H{"role": sess.Role})
			return
		}
		c.Status(http.StatusOK)
	})
	r.GET("/", handlers...)
	return r
}

func do(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRole(t *testing.T) {
	sessions := &fakeSessions{}
	r := setupRouter(RequireRole(sessions, models.RoleUser, models.RoleVendor))

	assert.Equal(t, http.StatusUnauthorized, do(r).Code)

	sessions.sess = &models.Session{Role: models.RoleAdmin, ID: 1, Name: "Admin"}
	w := do(r)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"code":403,"message":"user role required"}`, w.Body.String())

	sessions.sess = &models.Session{Role: models.RoleVendor, ID: 2}
	w = do(r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"role":"vendor"}`, w.Body.String())
}

func TestRateLimit_BurstThenReject(t *testing.T) {
	r := setupRouter(RateLimit(NewRateLimiter(1, 2, time.Minute)))

	assert.Equal(t, http.StatusOK, do(r).Code)
	assert.Equal(t, http.StatusOK, do(r).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r).Code)
}

func TestRateLimiter_PerIPAndCleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1, time.Minute)

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("2.2.2.2"))

	assert.Equal(t, 2, rl.Cleanup(time.Now()))
	assert.Equal(t, 0, rl.Cleanup(time.Now().Add(2*time.Minute)))
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	rl := NewRateLimiter(60, 1, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rl.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestTimeout_SetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Timeout(time.Second), SecurityHeaders())
	var hasDeadline bool
	r.GET("/", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusNoContent)
	})

	w := do(r)

	assert.True(t, hasDeadline)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
