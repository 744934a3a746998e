// Package fetcher retrieves raw feed text over HTTP.
// It validates URLs before any request, bounds response size, and returns the
// body with line breaks removed so callers see the same text for any line ending.
package fetcher

import "errors"

// Sentinel errors for fetch operations.
// These errors allow callers to distinguish between different failure modes.
var (
	// ErrInvalidURL indicates the URL is empty, malformed or uses an unsupported scheme.
	// Only http:// and https:// schemes are supported.
	//
	// Example:
	//   - "" → ErrInvalidURL
	//   - "not-a-url" → ErrInvalidURL
	//   - "file:///etc/passwd" → ErrInvalidURL
	ErrInvalidURL = errors.New("invalid URL or unsupported scheme")

	// ErrPrivateIP indicates the URL resolves to a private IP address
	// while private addresses are denied.
	ErrPrivateIP = errors.New("URL resolves to private IP address")

	// ErrTooManyRedirects indicates the redirect chain exceeded the configured maximum.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge indicates the response body exceeded the configured size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrUnexpectedStatus indicates a non-2xx HTTP response.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrTimeout indicates the request did not finish within the configured timeout.
	ErrTimeout = errors.New("request timeout")

	// ErrFetchFailed indicates the connection could not be made or the body could not be read.
	ErrFetchFailed = errors.New("failed to fetch URL")
)
