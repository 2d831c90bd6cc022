package ai

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

var (
	// ErrNoAPIKey means no Gemini key was found in any of the supported
	// configuration shapes.
	ErrNoAPIKey = errors.New("gemini api key is not configured")

	// ErrServiceUnavailable means every candidate model on every key failed.
	ErrServiceUnavailable = errors.New("generation service unavailable")
)

// MalformedResponseError reports a generation response with no parseable
// JSON payload. Snippet keeps the head of the candidate text for diagnostics.
type MalformedResponseError struct {
	Reason  string
	Snippet string
}

func (e *MalformedResponseError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("malformed generation response: %s", e.Reason)
	}
	return fmt.Sprintf("malformed generation response: %s (payload: %q)", e.Reason, e.Snippet)
}

func IsMalformed(err error) bool {
	var m *MalformedResponseError
	return errors.As(err, &m)
}

// recoverable reports whether the failure is expected to be transient, so
// rotating to the next key and retrying (and ultimately falling back) makes
// sense. Quota, rate limit and availability failures qualify; a missing key
// does too, since the fallback path covers it.
func recoverable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNoAPIKey) || errors.Is(err, ErrServiceUnavailable) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429, 500, 503:
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"quota", "rate limit", "429", "resource exhausted", "unavailable"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
