// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides PIN checks, signed flash messages, and ID generation.

# Reset PIN

Destructive admin actions (vote reset, availability clear) require the
shared PIN:

	if err := auth.CheckPIN(r.FormValue("pin"), cfg.ResetPIN); err != nil {
		// flash error, change nothing
	}

The comparison is constant time. An empty configured PIN never matches.

# Signed Values

Sign appends an HMAC-SHA256 tag keyed by the session secret; Verify checks
it and returns the payload:

	v := auth.Sign([]byte("hello"), secret)
	payload, err := auth.Verify(v, secret)

Both parts are URL-safe base64 without padding, so values are cookie-safe.

# Flash Messages

One-shot messages survive a redirect in a signed cookie:

	auth.SetFlash(w, cfg.SecretKey, models.FlashSuccess, "Vote submitted. Thanks!")
	http.Redirect(w, r, "/results", http.StatusSeeOther)

	// next request
	if f, ok := auth.PopFlash(w, r, cfg.SecretKey); ok {
		// render f.Kind, f.Message
	}

Tampered cookies are dropped and logged.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(12)  // 24 hex characters
*/
package auth
