package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/logger"
)

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes.
const (
	CodeInvalidInput = "invalid_input"
	CodeNotFound     = "not_found"
	CodeUnavailable  = "unavailable"
	CodeInternal     = "internal"
)

// classify maps a service error to a status and code. Unavailable is
// checked before not found: a missing verse database reports both.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnsupportedType):
		return http.StatusBadRequest, CodeInvalidInput
	case errors.Is(err, domain.ErrSearchUnavailable), errors.Is(err, domain.ErrPersistenceFailed):
		return http.StatusServiceUnavailable, CodeUnavailable
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// writeError aborts the request with the JSON error envelope.
// Internal errors are logged and replaced with a generic message.
func writeError(c *gin.Context, err error) {
	status, code := classify(err)
	msg := err.Error()
	switch status {
	case http.StatusInternalServerError:
		logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		msg = "internal error"
	case http.StatusServiceUnavailable:
		logger.Warn("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		msg = "search backend unavailable"
	}
	c.AbortWithStatusJSON(status, ErrorBody{Error: ErrorDetail{Code: code, Message: msg}})
}
