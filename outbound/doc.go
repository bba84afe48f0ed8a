// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package outbound wraps outgoing HTTP GETs with timeouts, retries, and a
circuit breaker.

	c := outbound.New("openmeteo", 8*time.Second, outbound.Backoff{
		MaxRetries:      1,
		InitialInterval: 250 * time.Millisecond,
		MaxInterval:     time.Second,
	})
	body, err := c.Get(ctx, url, nil)

Server errors (5xx), 429, and transport failures are retried with
exponential backoff. Other non-2xx statuses fail immediately. After six
consecutive failures the breaker opens and calls fail fast with
ErrCircuitOpen until it half-opens again.

Callers treat any error as "no data" and degrade; nothing here is fatal.
*/
package outbound
