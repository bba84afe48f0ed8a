// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/courtcaptain/auth"
	"github.com/danielhkuo/courtcaptain/cliparse"
	"github.com/danielhkuo/courtcaptain/middleware"
	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/views"
)

var validate = newValidator()

// newValidator registers the domain tags "day" and "court".
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("day", func(fl validator.FieldLevel) bool {
		return models.ValidDay(fl.Field().String())
	})
	v.RegisterValidation("court", func(fl validator.FieldLevel) bool {
		return models.ValidCourt(fl.Field().String())
	})
	return v
}

// reqLog tags log records with the request id assigned by WithLogging.
func reqLog(r *http.Request) *slog.Logger {
	return slog.With("request_id", middleware.RequestID(r.Context()))
}

// render shows a page with the given flash, or the pending flash cookie
// when flash is nil.
func render(w http.ResponseWriter, r *http.Request, cfg cliparse.Config, status int, page, title string, body any, flash *auth.Flash) {
	if flash == nil {
		if f, ok := auth.PopFlash(w, r, cfg.SecretKey); ok {
			flash = &f
		}
	}
	views.Render(w, status, page, views.Page{Title: title, Flash: flash, Body: body})
}

// redirectWithFlash stores a flash message and sends the browser to target
// with 303 See Other.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, cfg cliparse.Config, kind, message, target string) {
	auth.SetFlash(w, cfg.SecretKey, kind, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// parseForm reads a URL-encoded body capped at middleware.MaxBodyBytes.
func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, middleware.MaxBodyBytes)
	return r.ParseForm()
}

// formValue returns the first non-blank trimmed value among the keys.
func formValue(r *http.Request, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r.PostFormValue(k)); v != "" {
			return v
		}
	}
	return ""
}
