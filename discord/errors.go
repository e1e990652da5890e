package discord

import (
	"fmt"
	"net/http"

	"emperror.dev/errors"
)

var (
	// ErrInvalidArgument is wrapped by pure builders when given malformed
	// input, before any network call is attempted.
	ErrInvalidArgument = errors.Sentinel("discord: invalid argument")

	// ErrUnreachableOperation marks operations that are statically
	// disallowed, such as fetching a guild the bot has already left.
	ErrUnreachableOperation = errors.Sentinel("discord: operation can never succeed")

	// ErrIndexOutOfRange is returned by container indexing helpers.
	ErrIndexOutOfRange = errors.Sentinel("discord: index out of range")
)

// RESTError is the error surface of the REST collaborator. This layer never
// constructs one for its own logic; it only passes them through from fetch
// and mutator calls. Retry and backoff live behind the REST interface.
type RESTError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Code is the Discord JSON error code, 0 if absent.
	Code int
	// Message is the human readable error message.
	Message string
}

func (e *RESTError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("discord: HTTP %d (code %d): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("discord: HTTP %d: %s", e.Status, e.Message)
}

func restStatusIs(err error, status int) bool {
	var re *RESTError
	if errors.As(err, &re) {
		return re.Status == status
	}
	return false
}

func IsBadRequest(err error) bool   { return restStatusIs(err, http.StatusBadRequest) }
func IsUnauthorized(err error) bool { return restStatusIs(err, http.StatusUnauthorized) }
func IsForbidden(err error) bool    { return restStatusIs(err, http.StatusForbidden) }
func IsNotFound(err error) bool     { return restStatusIs(err, http.StatusNotFound) }
func IsRateLimited(err error) bool  { return restStatusIs(err, http.StatusTooManyRequests) }

// IsServerError reports whether err is a 5xx response from Discord.
func IsServerError(err error) bool {
	var re *RESTError
	if errors.As(err, &re) {
		return re.Status >= 500 && re.Status < 600
	}
	return false
}
