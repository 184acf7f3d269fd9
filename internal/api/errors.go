package api

import "fmt"

// NetworkError indicates a transport-level failure: DNS resolution,
// connection refused, or the request being cut short. The backend was
// never reached or never answered.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot reach backend at %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError indicates the backend answered with a non-2xx status.
type HTTPError struct {
	Status     int
	StatusText string
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("backend returned %d %s for %s", e.Status, e.StatusText, e.URL)
}

// DecodeError indicates the response body was not valid JSON or did not
// match the expected shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
