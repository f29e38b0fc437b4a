package geolite

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultHTTPTimeout limits a single request, response headers and
	// body included. Archives are a few dozen megabytes, so the default
	// is generous.
	DefaultHTTPTimeout = 5 * time.Minute

	defaultUserAgent = "mmdbget"

	defaultRateLimitInterval = 100 * time.Millisecond
	defaultRateLimitBurst    = 10
)

// Client issues requests against the MaxMind download endpoints. The
// underlying http.Client never follows redirects on its own: a single
// hop is resolved manually so that credentials are not replayed to
// whatever host a Location header points at.
type Client struct {
	creds       Credentials
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewClient prepares a client for the given credentials. A non-positive
// timeout means DefaultHTTPTimeout.
func NewClient(creds Credentials, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	return &Client{
		creds: creds,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		rateLimiter: rate.NewLimiter(
			rate.Every(defaultRateLimitInterval),
			defaultRateLimitBurst),
	}
}

// Do sends a single request and resolves at most one redirect hop. The
// redirected request goes out without credentials and its response is
// final: a second 3xx is not followed. Any non-2xx final status is
// a RequestFailedError. On success the live response is returned, body
// unread.
func (c *Client) Do(ctx context.Context, method, requestURL string) (*http.Response, error) {
	finalURL := requestURL

	resp, err := c.send(ctx, method, finalURL, true)
	if err != nil {
		return nil, err
	}

	location := resp.Header.Get("Location")

	if resp.StatusCode >= http.StatusMultipleChoices &&
		resp.StatusCode < http.StatusBadRequest &&
		location != "" {
		flushResponse(resp.Body)

		finalURL = location

		resp, err = c.send(ctx, method, finalURL, false)
		if err != nil {
			return nil, err
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		flushResponse(resp.Body)

		return nil, &RequestFailedError{
			URL:        finalURL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	return resp, nil
}

func (c *Client) send(ctx context.Context, method, requestURL string, withAuth bool) (*http.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("cannot pass a rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot compose a request: %w", err)
	}

	req.Header.Set("User-Agent", defaultUserAgent)

	if withAuth && c.creds.AccountID != "" {
		req.SetBasicAuth(c.creds.AccountID, c.creds.LicenseKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot send a request to %s: %w", requestURL, err)
	}

	return resp, nil
}
