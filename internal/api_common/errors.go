package api_common

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// HttpStatusError is an error that allows inner code to drive final HTTP errors. Has two tracks for error messages:
// internal for error information that should be constrained to logs, etc and response which is what can be returned
// to the caller.
type HttpStatusError struct {
	Status      int
	Code        string
	ResponseMsg string
	InternalErr error
}

func (e *HttpStatusError) Error() string {
	if e.InternalErr != nil {
		return e.InternalErr.Error()
	}
	if e.ResponseMsg != "" {
		return e.ResponseMsg
	}

	if e.Status != 0 {
		return fmt.Sprintf("HTTP %d: %s", e.Status, http.StatusText(e.Status))
	}

	return "Unknown error"
}

func (e *HttpStatusError) Unwrap() error {
	return e.InternalErr
}

func (e *HttpStatusError) ResponseMsgOrDefault() string {
	if e.ResponseMsg != "" {
		return e.ResponseMsg
	}

	if t := http.StatusText(e.Status); t != "" {
		return t
	}

	return "Unknown Status"
}

// ErrorResponse is the standardized error response format for the browser API as it gets serialized to JSON. This
// normally shouldn't be constructed directly but rather constructed using the provided builder.
type ErrorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code,omitempty"`
	StackTrace string `json:"stack_trace,omitempty"`
}

func (e *HttpStatusError) toErrorResponse(cfg Debuggable) *ErrorResponse {
	resp := &ErrorResponse{
		Error: e.ResponseMsgOrDefault(),
		Code:  e.Code,
	}

	if cfg != nil && cfg.IsDebugMode() {
		if e.InternalErr != nil {
			resp.StackTrace = fmt.Sprintf("%+v", e.InternalErr)
		}
	}

	return resp
}

func (e *HttpStatusError) WriteGinResponse(cfg Debuggable, gctx *gin.Context) {
	if e.InternalErr != nil {
		AddGinDebugHeaderError(cfg, gctx, e.InternalErr)
	}

	gctx.Header("Content-Type", "application/json")
	gctx.PureJSON(e.Status, e.toErrorResponse(cfg))
}

// AsHttpStatusError converts an HTTP status error. If the error is an HTTP status error, it is returned. If an HTTP
// status error is wrapped in the passed error, the status etc will be taken from the wrapped error.
func AsHttpStatusError(err error) *HttpStatusError {
	return NewHttpStatusErrorBuilder().
		WithInternalErr(err).
		BuildStatusError()
}

type HttpStatusErrorBuilder interface {
	// WithStatus sets the http status of the error to a specific value
	WithStatus(status int) HttpStatusErrorBuilder

	WithStatusNotFound() HttpStatusErrorBuilder
	WithStatusBadRequest() HttpStatusErrorBuilder
	WithStatusUnauthorized() HttpStatusErrorBuilder
	WithStatusForbidden() HttpStatusErrorBuilder
	WithStatusInternalServerError() HttpStatusErrorBuilder

	// DefaultStatus sets the http status of error if it has not already been set to a value other than 500
	DefaultStatus(status int) HttpStatusErrorBuilder

	// WithCode sets a machine readable code that clients can use to pick a remedy
	WithCode(code string) HttpStatusErrorBuilder

	WithResponseMsg(msg string) HttpStatusErrorBuilder
	WithResponseMsgf(format string, args ...interface{}) HttpStatusErrorBuilder
	DefaultResponseMsg(msg string) HttpStatusErrorBuilder
	WithInternalErr(err error) HttpStatusErrorBuilder
	WithWrappedInternalErr(err error, msg string) HttpStatusErrorBuilder
	BuildStatusError() *HttpStatusError
	Build() error
}

type httpStatusErrorBuilder struct {
	err *HttpStatusError
}

func NewHttpStatusErrorBuilder() HttpStatusErrorBuilder {
	return &httpStatusErrorBuilder{
		err: &HttpStatusError{
			Status: http.StatusInternalServerError,
		},
	}
}

func (b *httpStatusErrorBuilder) WithStatus(status int) HttpStatusErrorBuilder {
	b.err.Status = status
	return b
}

func (b *httpStatusErrorBuilder) WithStatusNotFound() HttpStatusErrorBuilder {
	return b.DefaultStatus(http.StatusNotFound)
}

func (b *httpStatusErrorBuilder) WithStatusBadRequest() HttpStatusErrorBuilder {
	return b.DefaultStatus(http.StatusBadRequest)
}

func (b *httpStatusErrorBuilder) WithStatusUnauthorized() HttpStatusErrorBuilder {
	return b.DefaultStatus(http.StatusUnauthorized)
}

func (b *httpStatusErrorBuilder) WithStatusForbidden() HttpStatusErrorBuilder {
	return b.DefaultStatus(http.StatusForbidden)
}

func (b *httpStatusErrorBuilder) WithStatusInternalServerError() HttpStatusErrorBuilder {
	return b.DefaultStatus(http.StatusInternalServerError)
}

func (b *httpStatusErrorBuilder) DefaultStatus(status int) HttpStatusErrorBuilder {
	if b.err.Status == 0 || b.err.Status == http.StatusInternalServerError {
		b.err.Status = status
	}

	return b
}

func (b *httpStatusErrorBuilder) WithCode(code string) HttpStatusErrorBuilder {
	b.err.Code = code
	return b
}

func (b *httpStatusErrorBuilder) WithResponseMsg(msg string) HttpStatusErrorBuilder {
	b.err.ResponseMsg = msg
	return b
}

func (b *httpStatusErrorBuilder) WithResponseMsgf(format string, args ...interface{}) HttpStatusErrorBuilder {
	b.err.ResponseMsg = fmt.Sprintf(format, args...)
	return b
}

func (b *httpStatusErrorBuilder) DefaultResponseMsg(msg string) HttpStatusErrorBuilder {
	if b.err.ResponseMsg == "" {
		b.err.ResponseMsg = msg
	}
	return b
}

func (b *httpStatusErrorBuilder) WithInternalErr(err error) HttpStatusErrorBuilder {
	var errStatusError *HttpStatusError
	if errors.As(err, &errStatusError) {
		if err == errStatusError {
			b.err = errStatusError
		} else {
			b.err.ResponseMsg = errStatusError.ResponseMsg
			b.err.Status = errStatusError.Status
			b.err.Code = errStatusError.Code
			b.err.InternalErr = err
		}
	} else {
		b.err.InternalErr = err
	}

	return b
}

func (b *httpStatusErrorBuilder) WithWrappedInternalErr(err error, msg string) HttpStatusErrorBuilder {
	b.WithInternalErr(err)
	b.err.InternalErr = errors.Wrap(b.err.InternalErr, msg)
	return b
}

func (b *httpStatusErrorBuilder) BuildStatusError() *HttpStatusError {
	return b.err
}

func (b *httpStatusErrorBuilder) Build() error {
	return b.BuildStatusError()
}

// HttpStatusErrorContains checks if the error is an HttpStatusError whose response message or internal error
// contains the passed string. This is intended to be used in unit tests.
func HttpStatusErrorContains(err error, s string) bool {
	var he *HttpStatusError
	if errors.As(err, &he) {
		if strings.Contains(he.ResponseMsg, s) {
			return true
		}

		if he.InternalErr != nil && strings.Contains(he.InternalErr.Error(), s) {
			return true
		}
	}

	return false
}

// HttpStatusErrorIsStatusCode checks if the error is an HttpStatusError with the passed status code. This is intended
// to be used in unit tests.
func HttpStatusErrorIsStatusCode(err error, statusCode int) bool {
	var he *HttpStatusError
	return errors.As(err, &he) && he.Status == statusCode
}
