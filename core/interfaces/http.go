// ABOUTME: HTTP client interface for calling external book providers
// ABOUTME: Abstraction allows mocking in tests and swapping client implementations

package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests to external
// book providers and webpage metadata sources.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)

	// Post performs an HTTP POST request to the specified URL with the
	// given body. The body should be closed by the caller after use.
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response defines the interface for HTTP responses, so different client
// implementations can provide their own response types.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the value of the specified header, or an empty
	// string if the header is not present.
	Header(key string) string
}
