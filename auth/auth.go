// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPIN       = errors.New("invalid PIN")
	ErrInvalidSignature = errors.New("invalid signature")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// CheckPIN compares a submitted PIN against the configured one in constant
// time. An empty configured PIN never matches.
func CheckPIN(submitted, configured string) error {
	if configured == "" {
		return ErrInvalidPIN
	}
	submitted = strings.TrimSpace(submitted)
	if !hmac.Equal([]byte(submitted), []byte(configured)) {
		return ErrInvalidPIN
	}
	return nil
}

// Sign returns payload with an appended HMAC-SHA256 tag: "<payload>.<tag>".
// Both parts are URL-safe base64 without padding.
func Sign(payload []byte, secret string) string {
	body := strings.TrimRight(base64.URLEncoding.EncodeToString(payload), "=")
	return body + "." + signature(body, secret)
}

// Verify checks a value produced by Sign and returns the original payload.
func Verify(value, secret string) ([]byte, error) {
	body, sig, ok := strings.Cut(value, ".")
	if !ok {
		return nil, ErrInvalidSignature
	}
	if !hmac.Equal([]byte(sig), []byte(signature(body, secret))) {
		return nil, ErrInvalidSignature
	}

	payload, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return payload, nil
}

func signature(body, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(body))
	// URL-safe base64 and trim padding, cookie-safe
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}
