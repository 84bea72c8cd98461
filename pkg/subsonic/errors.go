package subsonic

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ErrorCode is the numeric failure code a server reports inside a failed
// envelope. Servers may send codes outside the documented set; those are
// preserved as-is and report Known() == false.
type ErrorCode int

// Documented error codes. Each constant satisfies error so callers can match
// with errors.Is(err, subsonic.ErrNotFound).
const (
	ErrGeneric               ErrorCode = 0
	ErrMissingParameter      ErrorCode = 10
	ErrClientMustUpgrade     ErrorCode = 20
	ErrServerMustUpgrade     ErrorCode = 30
	ErrWrongCredentials      ErrorCode = 40
	ErrTokenAuthNotSupported ErrorCode = 41
	ErrNotAuthorized         ErrorCode = 50
	ErrTrialExpired          ErrorCode = 60
	ErrNotFound              ErrorCode = 70
)

var errorCodeLabels = map[ErrorCode]string{
	ErrGeneric:               "generic error",
	ErrMissingParameter:      "required parameter is missing",
	ErrClientMustUpgrade:     "incompatible protocol version: client must upgrade",
	ErrServerMustUpgrade:     "incompatible protocol version: server must upgrade",
	ErrWrongCredentials:      "wrong username or password",
	ErrTokenAuthNotSupported: "token authentication not supported",
	ErrNotAuthorized:         "user is not authorized for the given operation",
	ErrTrialExpired:          "trial period is over",
	ErrNotFound:              "requested data was not found",
}

// Known reports whether the code is one of the documented conditions.
func (c ErrorCode) Known() bool {
	_, ok := errorCodeLabels[c]
	return ok
}

// String returns the documented label, or "error code N" for unknown codes.
func (c ErrorCode) String() string {
	if label, ok := errorCodeLabels[c]; ok {
		return label
	}
	return "error code " + strconv.Itoa(int(c))
}

func (c ErrorCode) Error() string {
	return c.String()
}

// APIError is a failure reported by the server inside the response envelope.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return fmt.Sprintf("subsonic api error %d: %s", int(e.Code), e.Code)
	}
	return fmt.Sprintf("subsonic api error %d: %s", int(e.Code), e.Message)
}

// Is matches ErrorCode targets and other *APIError values by code.
func (e *APIError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch t := target.(type) {
	case ErrorCode:
		return e.Code == t
	case *APIError:
		return t != nil && e.Code == t.Code
	}
	return false
}

// maxRawDisplay bounds how much of an unparseable body is echoed in Error().
const maxRawDisplay = 4 << 10

// ErrUnexpectedJSON is wrapped by a ParseError when a binary endpoint answers
// with a successful JSON envelope instead of media bytes.
var ErrUnexpectedJSON = errors.New("expected binary response but got JSON with status=ok")

// ParseError reports a response body that could not be interpreted. Raw keeps
// the full body text.
type ParseError struct {
	Endpoint string
	Raw      string
	Err      error
}

func (e *ParseError) Error() string {
	raw := truncateRaw(e.Raw, maxRawDisplay)
	prefix := "parse response"
	if e.Endpoint != "" {
		prefix = "parse " + e.Endpoint + " response"
	}
	if raw == "" {
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	}
	return fmt.Sprintf("%s: %v (body: %s)", prefix, e.Err, raw)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// truncateRaw cuts raw to at most limit bytes without splitting a UTF-8
// sequence.
func truncateRaw(raw string, limit int) string {
	if len(raw) <= limit {
		return raw
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(raw[cut]) {
		cut--
	}
	return raw[:cut] + "...(truncated)"
}

// withEndpoint names endpoint on a ParseError that was built without one.
func withEndpoint(endpoint string, err error) error {
	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.Endpoint == "" {
		parseErr.Endpoint = endpoint
	}
	return err
}

// ErrMissingField matches every MissingFieldError.
var ErrMissingField = errors.New("missing field in response")

// MissingFieldError reports that a successful payload lacked a mandatory field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing '%s' in response", e.Field)
}

// Is reports a match for ErrMissingField whatever the field.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// HTTPStatusError reports a non-success HTTP status before any envelope decode.
type HTTPStatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Endpoint, e.StatusCode)
}
