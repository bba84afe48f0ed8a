// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// FlashCookie is the cookie name carrying one-shot messages between requests.
const FlashCookie = "cc_flash"

// Flash is a one-shot user-facing message.
type Flash struct {
	Kind    string `json:"k"`
	Message string `json:"m"`
}

// SetFlash stores a signed flash message for the next page view.
func SetFlash(w http.ResponseWriter, secret, kind, message string) {
	payload, err := json.Marshal(Flash{Kind: kind, Message: message})
	if err != nil {
		slog.Error("failed to encode flash", "error", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    Sign(payload, secret),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads and clears the flash cookie. Missing, tampered, or
// malformed cookies yield false.
func PopFlash(w http.ResponseWriter, r *http.Request, secret string) (Flash, bool) {
	c, err := r.Cookie(FlashCookie)
	if err != nil {
		return Flash{}, false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	payload, err := Verify(c.Value, secret)
	if err != nil {
		slog.Warn("discarding flash cookie", "error", err)
		return Flash{}, false
	}

	var f Flash
	if err := json.Unmarshal(payload, &f); err != nil {
		return Flash{}, false
	}
	return f, true
}
