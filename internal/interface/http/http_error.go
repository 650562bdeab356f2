package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jardinvision/jardin-proxy/pkg/errors"
)

// HTTPError captures the metadata required to serialize an error response
// consistently. The wire shape is a flat {"error": "<message>"} object; the
// code only feeds logs and status mapping.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "something went wrong",
		Err:     err,
	}
}

// domainHTTPError maps AppError codes onto statuses.
func domainHTTPError(err error, fallbackCode string) *HTTPError {
	message := apperrors.Message(err)
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		return NewHTTPError(http.StatusBadRequest, "invalid_input", message, err)
	case apperrors.IsCode(err, "config_error"):
		return NewHTTPError(http.StatusInternalServerError, "config_error", message, err)
	case apperrors.IsCode(err, "llm_error"):
		return NewHTTPError(http.StatusBadGateway, "llm_error", message, err)
	case apperrors.IsCode(err, "meteo_error"):
		return NewHTTPError(http.StatusBadGateway, "meteo_error", message, err)
	default:
		return NewHTTPError(http.StatusInternalServerError, fallbackCode, message, err)
	}
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
