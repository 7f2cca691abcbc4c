package errors

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorMiddleware())
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(err)
	})
	return r
}

func TestErrorMiddleware_AppError(t *testing.T) {
	r := setupRouter(ErrVendorNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/fail", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":404,"message":"Vendor not found"}`, w.Body.String())
}

func TestErrorMiddleware_PlainErrorDoesNotTouchSentinel(t *testing.T) {
	r := setupRouter(stderrors.New("boom"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/fail", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":500,"message":"Internal server error"}`, w.Body.String())
	assert.Nil(t, ErrInternalServer.Err)
}

func TestError_IsAndWrap(t *testing.T) {
	cause := stderrors.New("db down")
	err := ErrBadRequest.Wrap(cause)

	assert.True(t, stderrors.Is(err, ErrBadRequest))
	assert.True(t, stderrors.Is(err, cause))
	assert.False(t, stderrors.Is(err, ErrNotFound))
	assert.Equal(t, "Bad request: db down", err.Error())

	custom := ErrValidation.WithMessage("Pin code must be 6 digits")
	assert.Equal(t, http.StatusBadRequest, custom.Code)
	assert.Equal(t, "Validation error", ErrValidation.Message)
}
