package fetcher

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// lineBreaks removes every line terminator so the body reads as one line.
var lineBreaks = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")

// HTTPFetcher downloads feed documents.
// Thread safety: HTTPFetcher is safe for concurrent use.
type HTTPFetcher struct {
	client *http.Client
	config Config
}

// NewHTTPFetcher creates an HTTPFetcher whose client enforces TLS 1.2+,
// the configured timeout and a validated redirect chain.
func NewHTTPFetcher(config Config) *HTTPFetcher {
	f := &HTTPFetcher{config: config}

	f.client = &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			IdleConnTimeout: 90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			if err := validateURL(req.URL.String(), f.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}

	return f
}

// Fetch performs a blocking GET of urlStr and returns the body with all line
// breaks removed. Empty or malformed URLs fail before any network access.
//
// Errors:
//   - ErrInvalidURL: empty, malformed, or non-http(s) URL
//   - ErrPrivateIP: host resolves to a private address (when denied)
//   - ErrUnexpectedStatus: non-2xx response
//   - ErrBodyTooLarge: body exceeds MaxBodySize
//   - ErrTimeout: request exceeded the configured timeout
//   - ErrFetchFailed: connection, DNS or read failure
func (f *HTTPFetcher) Fetch(ctx context.Context, urlStr string) (string, error) {
	if err := validateURL(urlStr, f.config.DenyPrivateIPs); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return "", fmt.Errorf("%w: request exceeded %v", ErrTimeout, f.config.Timeout)
		}
		if errors.Is(err, ErrTooManyRedirects) || errors.Is(err, ErrInvalidURL) || errors.Is(err, ErrPrivateIP) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %v", ErrFetchFailed, err)
	}
	if int64(len(body)) > f.config.MaxBodySize {
		return "", fmt.Errorf("%w: response exceeds limit %d bytes", ErrBodyTooLarge, f.config.MaxBodySize)
	}

	return lineBreaks.Replace(string(body)), nil
}
