// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/testutil"
)

// 2025-06-14 is a Saturday
const forecastJSON = `{
  "daily": {
    "time": ["2025-06-12","2025-06-13","2025-06-14","2025-06-15","2025-06-16","2025-06-17","2025-06-18"],
    "weathercode": [0, 1, 61, 2, 3, 95, 0],
    "temperature_2m_max": [30.1, 29.5, 24.2, 27.0, 28.0, 26.0, 25.0],
    "temperature_2m_min": [20.0, 19.5, 17.1, 18.3, 18.0, 17.0, 16.0],
    "precipitation_probability_max": [0, 10, 80, 20, 5, 90, 0]
  }
}`

func TestWeekend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "36.372", q.Get("latitude"))
		assert.Equal(t, "-94.208", q.Get("longitude"))
		assert.Equal(t, "7", q.Get("forecast_days"))
		assert.Equal(t, "auto", q.Get("timezone"))
		assert.Contains(t, q.Get("daily"), "precipitation_probability_max")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastJSON))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 36.372, -94.208)
	wx := c.Weekend(context.Background())

	sat, ok := wx[models.Saturday].Get()
	require.True(t, ok)
	assert.Equal(t, "2025-06-14", sat.Date)
	assert.Equal(t, 61, sat.Code)
	assert.Equal(t, 24.2, sat.TempMax)
	assert.Equal(t, 17.1, sat.TempMin)
	assert.Equal(t, 80, sat.PrecipProb)
	assert.Equal(t, models.IconRain, sat.Icon)

	sun, ok := wx[models.Sunday].Get()
	require.True(t, ok)
	assert.Equal(t, "2025-06-15", sun.Date)
	assert.Equal(t, models.IconPartlyCloudy, sun.Icon)
}

func TestWeekendDegradesOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}},
		{"no weekend days", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"daily":{"time":["2025-06-16"],"weathercode":[0],"temperature_2m_max":[1],"temperature_2m_min":[0],"precipitation_probability_max":[0]}}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			wx := NewClient(srv.URL, 0, 0).Weekend(context.Background())

			require.Len(t, wx, 2)
			assert.False(t, wx[models.Saturday].Present())
			assert.False(t, wx[models.Sunday].Present())
		})
	}
}

func TestWeekendUnreachable(t *testing.T) {
	wx := NewClient("http://127.0.0.1:1/forecast", 0, 0).Weekend(context.Background())
	assert.False(t, wx[models.Saturday].Present())
	assert.False(t, wx[models.Sunday].Present())
}

func TestParseDailySkipsMissingValues(t *testing.T) {
	var p dailyPayload
	p.Daily.Time = []string{"2025-06-14", "2025-06-15"}
	code := 0
	max, min := 20.0, 10.0
	p.Daily.Code = []*int{&code}
	p.Daily.TempMax = []*float64{&max, nil}
	p.Daily.TempMin = []*float64{&min, &min}

	got := parseDaily(p)

	require.Len(t, got, 1)
	assert.Equal(t, models.Saturday, got[0].Day)
	assert.Equal(t, 0, got[0].PrecipProb)
	assert.Equal(t, models.IconClear, got[0].Icon)
}

func TestIconFor(t *testing.T) {
	tests := []struct {
		code int
		pop  int
		want models.Icon
	}{
		{0, 0, models.IconClear},
		{1, 0, models.IconPartlyCloudy},
		{3, 90, models.IconPartlyCloudy},
		{45, 0, models.IconFog},
		{48, 0, models.IconFog},
		{51, 0, models.IconDrizzle},
		{57, 0, models.IconDrizzle},
		{61, 0, models.IconRain},
		{82, 0, models.IconRain},
		{71, 0, models.IconSnow},
		{77, 0, models.IconSnow},
		{95, 0, models.IconThunderstorm},
		{99, 0, models.IconThunderstorm},
		{4, 50, models.IconRain},
		{4, 49, models.IconFallback},
		{-1, 0, models.IconFallback},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IconFor(tt.code, tt.pop), "code=%d pop=%d", tt.code, tt.pop)
	}
}

func TestWeekendLogsBreakerState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	logs := testutil.CaptureLogs(t)

	got := NewClient(srv.URL, 36.372, -94.208).Weekend(context.Background())

	assert.False(t, got[models.Saturday].Present())
	line := testutil.LogLine(logs, "weather unavailable")
	require.NotEmpty(t, line)
	assert.Contains(t, line, "breaker=closed")
}
