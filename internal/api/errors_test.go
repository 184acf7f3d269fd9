package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkError_Message(t *testing.T) {
	err := &NetworkError{URL: "http://localhost:8765/student/insights", Err: errors.New("connection refused")}
	assert.Equal(t,
		"cannot reach backend at http://localhost:8765/student/insights: connection refused",
		err.Error())
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{URL: "http://x", Err: cause}
	assert.ErrorIs(t, err, cause)
}

func TestHTTPError_Message(t *testing.T) {
	err := &HTTPError{Status: 503, StatusText: "Service Unavailable", URL: "http://x/health"}
	assert.Equal(t, "backend returned 503 Service Unavailable for http://x/health", err.Error())
}

func TestDecodeError_Message(t *testing.T) {
	err := &DecodeError{URL: "http://x/student/insights", Err: errors.New("unexpected EOF")}
	assert.Equal(t, "invalid response from http://x/student/insights: unexpected EOF", err.Error())
}
