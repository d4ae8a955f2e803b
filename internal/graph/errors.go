package graph

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ErrorKind is the classification of a failed Graph call.
type ErrorKind string

const (
	ErrorKindUnauthorized          ErrorKind = "unauthorized"
	ErrorKindForbidden             ErrorKind = "forbidden"
	ErrorKindBadRequest            ErrorKind = "bad_request"
	ErrorKindNotFoundOrUnavailable ErrorKind = "not_found"
	ErrorKindMissingRequiredFilter ErrorKind = "missing_required_filter"
	ErrorKindUnknown               ErrorKind = "unknown"
)

// Remedy is a suggested user action attached to some errors.
type Remedy string

const (
	RemedyNone          Remedy = ""
	RemedyProvideFilter Remedy = "provide_filter"
	RemedyConsent       Remedy = "consent"
	RemedySignIn        Remedy = "sign_in"
)

// Error is a classified failure. Detail carries the server message where one was available.
type Error struct {
	Kind   ErrorKind
	Detail string
	Status int
	Code   string
	Remedy Remedy
	cause  error
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// HttpStatus maps the classification to the status the browser API reports.
func (e *Error) HttpStatus() int {
	switch e.Kind {
	case ErrorKindUnauthorized:
		return http.StatusUnauthorized
	case ErrorKindForbidden:
		return http.StatusForbidden
	case ErrorKindBadRequest, ErrorKindMissingRequiredFilter:
		return http.StatusBadRequest
	case ErrorKindNotFoundOrUnavailable:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// IsKind reports whether err is a classified error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == kind
}

func NewMissingRequiredFilterError(p *Policy) *Error {
	return &Error{
		Kind:   ErrorKindMissingRequiredFilter,
		Detail: fmt.Sprintf("%s must be provided to list %s", p.ParameterName, p.Kind),
		Remedy: RemedyProvideFilter,
	}
}

// NewUnauthorizedError wraps a failure to obtain a credential.
func NewUnauthorizedError(cause error) *Error {
	return &Error{
		Kind:   ErrorKindUnauthorized,
		Detail: cause.Error(),
		Remedy: RemedySignIn,
		cause:  cause,
	}
}

func NewBadRequestError(detail string) *Error {
	return &Error{
		Kind:   ErrorKindBadRequest,
		Detail: detail,
	}
}

// errorEnvelope is the Graph error body: {"error": {"code": "...", "message": "..."}}
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func parseErrorEnvelope(body []byte) (code, message string) {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", ""
	}

	return env.Error.Code, env.Error.Message
}

var consentMarkers = []string{
	"consent_required",
	"AADSTS65001",
	"65001",
	"Authorization_RequestDenied",
	"Insufficient privileges",
	"Access denied",
	"accessDenied",
}

func hasPermissionHint(s string) bool {
	for _, m := range consentMarkers {
		if strings.Contains(strings.ToLower(s), strings.ToLower(m)) {
			return true
		}
	}

	return false
}

// ClassifyResponse classifies a non-success response by its status code, using the Graph error envelope for
// the detail.
func ClassifyResponse(status int, body []byte) *Error {
	code, msg := parseErrorEnvelope(body)
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}

	e := &Error{
		Status: status,
		Code:   code,
		Detail: msg,
	}

	switch status {
	case http.StatusUnauthorized:
		e.Kind = ErrorKindUnauthorized
		e.Remedy = RemedySignIn
	case http.StatusForbidden:
		e.Kind = ErrorKindForbidden
		if hasPermissionHint(code) || hasPermissionHint(msg) {
			e.Remedy = RemedyConsent
		}
	case http.StatusBadRequest:
		e.Kind = ErrorKindBadRequest
	case http.StatusNotFound:
		e.Kind = ErrorKindNotFoundOrUnavailable
	default:
		e.Kind = ErrorKindUnknown
		if e.Detail == "" {
			e.Detail = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
		}
	}

	return e
}

// statusToken matches a bare status number in a message. Numbers inside host:port or dotted addresses do not
// count.
var statusToken = regexp.MustCompile(`(?:^|[^\w:.])(40[0134])\b`)

func mentionsStatus(msg string, status string) bool {
	for _, m := range statusToken.FindAllStringSubmatch(msg, -1) {
		if m[1] == status {
			return true
		}
	}
	return false
}

// Classify turns an arbitrary error into a classified error. Errors that are already classified are returned
// as-is. Otherwise the message is matched against known markers; this is a heuristic and will drift if the
// upstream wording changes.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var ge *Error
	if errors.As(err, &ge) {
		return ge
	}

	msg := err.Error()
	lower := strings.ToLower(msg)
	e := &Error{
		Detail: msg,
		cause:  err,
	}

	switch {
	case mentionsStatus(msg, "401") ||
		strings.Contains(lower, "unauthorized") ||
		strings.Contains(msg, "InvalidAuthenticationToken"):
		e.Kind = ErrorKindUnauthorized
		e.Remedy = RemedySignIn
	case mentionsStatus(msg, "403") || hasPermissionHint(msg):
		e.Kind = ErrorKindForbidden
		if hasPermissionHint(msg) {
			e.Remedy = RemedyConsent
		}
	case mentionsStatus(msg, "400") ||
		strings.Contains(msg, "Invalid filter clause") ||
		strings.Contains(msg, "incompatible types"):
		e.Kind = ErrorKindBadRequest
	case mentionsStatus(msg, "404") || strings.Contains(msg, "itemNotFound"):
		e.Kind = ErrorKindNotFoundOrUnavailable
	default:
		e.Kind = ErrorKindUnknown
	}

	return e
}
