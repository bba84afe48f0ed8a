// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/store"
	"github.com/danielhkuo/courtcaptain/testutil"
)

func TestBookingURL(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		day     string
		court   string
		want    string
		wantErr error
	}{
		{
			name:  "no query string",
			base:  "https://club.example.com/reserve",
			day:   "Saturday",
			court: "Court 1",
			want:  "https://club.example.com/reserve?day=Saturday&court=Court%201",
		},
		{
			name:  "existing query string",
			base:  "https://club.example.com/reserve?param=1",
			day:   "Sunday",
			court: "Outdoor A",
			want:  "https://club.example.com/reserve?param=1&day=Sunday&court=Outdoor%20A",
		},
		{
			name:    "invalid day",
			base:    "https://club.example.com/reserve",
			day:     "Friday",
			court:   "Court 1",
			wantErr: store.ErrInvalidDay,
		},
		{
			name:    "invalid court",
			base:    "https://club.example.com/reserve",
			day:     "Saturday",
			court:   "Court 99",
			wantErr: store.ErrInvalidCourt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BookingURL(tt.base, tt.day, tt.court)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBook(t *testing.T) {
	cfg := testutil.GetTestConfig()
	handler := NewBookingHandler(cfg)

	t.Run("valid selection redirects to booking site", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Book(w, testutil.MakeFormRequest("/book", url.Values{"day": {"Saturday"}, "court": {"Court 3"}}))

		testutil.AssertStatus(t, w, http.StatusFound)
		assert.Equal(t, "https://booking.example.com/reserve?day=Saturday&court=Court%203", w.Header().Get("Location"))
	})

	t.Run("invalid selection returns to results", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Book(w, testutil.MakeFormRequest("/book", url.Values{"day": {"Saturday"}, "court": {"https://evil.example.com"}}))

		testutil.AssertStatus(t, w, http.StatusSeeOther)
		assert.Equal(t, "/results", w.Header().Get("Location"))

		f, ok := flashFrom(t, w, cfg.SecretKey)
		require.True(t, ok)
		assert.Equal(t, models.FlashError, f.Kind)
		assert.Equal(t, "Invalid booking selection.", f.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Book(w, testutil.MakeFormRequest("/book", url.Values{}))

		testutil.AssertStatus(t, w, http.StatusSeeOther)
		assert.Equal(t, "/results", w.Header().Get("Location"))
	})
}
