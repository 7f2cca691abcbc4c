package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setupRouter(log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestID(c))
	})
	r.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	return r
}

func TestRequestLogger_GeneratesID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := setupRouter(zap.New(core))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, w.Body.String())

	entries := logs.FilterMessage("http_request").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, id, entries[0].ContextMap()["request_id"])
		assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	}
}

func TestRequestLogger_KeepsIncomingID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := setupRouter(zap.New(core))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, zap.WarnLevel, entries[0].Level)
	}
}

func TestRequestID_PlainContext(t *testing.T) {
	assert.Equal(t, "unknown", RequestID(context.Background()))
	assert.Equal(t, "r-1", RequestID(WithRequestID(context.Background(), "r-1")))
}

func TestBuild(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		l, err := Build(env)
		assert.NoError(t, err)
		assert.NotNil(t, l)
	}
}
