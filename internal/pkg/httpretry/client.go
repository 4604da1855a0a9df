// Package httpretry wraps an HTTP client with bounded retries for
// transient upstream failures.
package httpretry

import (
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

// HTTPDoer is satisfied by *http.Client and *Client alike
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client retries requests that fail with a transport error or a
// retryable status (429 and 5xx gateway-style errors). Client errors
// (4xx other than 429) are returned immediately, and the final attempt's
// response is returned untouched so callers can read the body.
type Client struct {
	inner    HTTPDoer
	attempts int
	minWait  time.Duration
	maxWait  time.Duration
}

// New wraps doer with up to attempts retries after the initial request.
// A nil doer gets a default client with a 30s timeout.
func New(doer HTTPDoer, attempts int) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}
	if attempts <= 0 {
		attempts = 3
	}
	return &Client{
		inner:    doer,
		attempts: attempts,
		minWait:  200 * time.Millisecond,
		maxWait:  20 * time.Second,
	}
}

// Do executes the request, retrying while the failure looks transient.
// A server-supplied Retry-After overrides the computed backoff. Retries
// stop as soon as the request context is done.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	var lastErr error
	var wait time.Duration

	for attempt := 0; ; attempt++ {
		if err := req.Context().Err(); err != nil {
			if lastErr != nil {
				return nil, lastErr
			}
			return nil, err
		}

		if attempt > 0 {
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, err
				}
				req.Body = body
			}
			if wait == 0 {
				wait = c.backoff(attempt)
			}
			if !c.sleep(req, wait) {
				return nil, req.Context().Err()
			}
			wait = 0
		}

		resp, err := c.inner.Do(req)
		if err != nil {
			lastErr = err
			if req.Context().Err() != nil || attempt >= c.attempts {
				return nil, err
			}
			continue
		}

		if !retryableStatus(resp.StatusCode) || attempt >= c.attempts {
			return resp, nil
		}

		if ra := retryAfter(resp); ra > 0 && ra <= c.maxWait {
			wait = ra
		}
		drain(resp)
	}
}

// backoff doubles per attempt with half-range jitter, capped at maxWait
func (c *Client) backoff(attempt int) time.Duration {
	d := c.minWait << uint(attempt-1)
	if d > c.maxWait || d <= 0 {
		d = c.maxWait
	}
	half := int64(d) / 2
	return time.Duration(half + rand.Int63n(half+1))
}

// sleep waits for d or until the request context is done; it reports
// false on cancellation
func (c *Client) sleep(req *http.Request, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-req.Context().Done():
		return false
	}
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// retryAfter parses a seconds-valued Retry-After header, 0 when absent
// or unparseable
func retryAfter(resp *http.Response) time.Duration {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// drain consumes the body so the connection can be reused
func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
