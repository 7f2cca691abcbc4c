package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is an application error rendered to clients as {"code","message"}.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors with the same code and message so callers can compare
// against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code && t.Message == e.Message
}

// JSON returns the error as a JSON string.
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Wrap returns a copy of e carrying err. Sentinels are never mutated.
func (e *Error) Wrap(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Err: err}
}

// WithMessage returns a copy of e with a different message.
func (e *Error) WithMessage(msg string) *Error {
	return &Error{Code: e.Code, Message: msg, Err: e.Err}
}

func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Common error types
var (
	ErrBadRequest      = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized    = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden       = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound        = New(http.StatusNotFound, "Not found", nil)
	ErrConflict        = New(http.StatusConflict, "Already exists", nil)
	ErrTooManyRequests = New(http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
	ErrInternalServer  = New(http.StatusInternalServerError, "Internal server error", nil)
	ErrTimeout         = New(http.StatusGatewayTimeout, "Request timed out", nil)
)

// Domain error types
var (
	ErrValidation         = New(http.StatusBadRequest, "Validation error", nil)
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid credentials", nil)
	ErrEmailTaken         = New(http.StatusConflict, "Email already registered", nil)
	ErrVendorNotFound     = New(http.StatusNotFound, "Vendor not found", nil)
	ErrProductNotFound    = New(http.StatusNotFound, "Product not found", nil)
	ErrOrderNotFound      = New(http.StatusNotFound, "Order not found", nil)
)

// From converts any error into an *Error, treating unknown errors as 500s.
func From(err error) *Error {
	var appErr *Error
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return ErrInternalServer.Wrap(err)
}

// ErrorMiddleware renders the last error attached to the gin context.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		appErr := From(c.Errors.Last().Err)
		c.AbortWithStatusJSON(appErr.Code, appErr)
	}
}
