// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package outbound

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Backoff controls exponential backoff between retries.
type Backoff struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

var (
	ErrRateLimited   = errors.New("rate limited")
	ErrServerError   = errors.New("server error")
	ErrUnexpected    = errors.New("unexpected status code")
	ErrCircuitOpen   = errors.New("circuit breaker open")
	ErrInvalidConfig = errors.New("invalid backoff configuration")
)

// Client performs GET requests with a per-call timeout, retries with
// exponential backoff, and a circuit breaker shared by all calls.
type Client struct {
	http    *http.Client
	backoff Backoff
	breaker *gobreaker.CircuitBreaker
}

// New builds a Client named for logging and breaker state.
func New(name string, timeout time.Duration, backoff Backoff) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		http:    &http.Client{Timeout: timeout},
		backoff: backoff,
		breaker: cb,
	}
}

// State reports the breaker state, mainly for logs and tests.
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}

// Get fetches url and returns the body of a 2xx response.
func (c *Client) Get(ctx context.Context, url string, header http.Header) ([]byte, error) {
	if c.backoff.MaxRetries < 0 || c.backoff.InitialInterval <= 0 {
		return nil, ErrInvalidConfig
	}

	var attempt int
	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		result, err := c.breaker.Execute(func() (interface{}, error) {
			return c.do(ctx, url, header)
		})
		if err == nil {
			body, ok := result.([]byte)
			if !ok {
				return nil, fmt.Errorf("unexpected result type from circuit breaker")
			}
			return body, nil
		}

		// Open circuit means the remote is known bad; do not retry
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}

		if attempt >= c.backoff.MaxRetries || !retryable(err) {
			return nil, err
		}

		delay := c.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if c.backoff.MaxInterval > 0 && delay > c.backoff.MaxInterval {
			delay = c.backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}

func (c *Client) do(ctx context.Context, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: %d", ErrServerError, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpected, resp.StatusCode)
	}

	// Pages and forecasts are small; cap reads at 4 MiB
	return io.ReadAll(io.LimitReader(resp.Body, 4<<20))
}

// retryable reports whether another attempt could succeed. Client errors
// other than 429 will not change on retry.
func retryable(err error) bool {
	return !errors.Is(err, ErrUnexpected)
}
