// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/danielhkuo/courtcaptain/models"
	"github.com/danielhkuo/courtcaptain/outbound"
)

// Source supplies weekend forecasts. Missing data is an absent Optional,
// never an error.
type Source interface {
	Weekend(ctx context.Context) map[models.Day]models.Optional[models.DayForecast]
}

// Client fetches daily forecasts from Open-Meteo.
type Client struct {
	baseURL string
	lat     float64
	lon     float64
	http    *outbound.Client
}

func NewClient(baseURL string, lat, lon float64) *Client {
	return &Client{
		baseURL: baseURL,
		lat:     lat,
		lon:     lon,
		http: outbound.New("openmeteo", 8*time.Second, outbound.Backoff{
			MaxRetries:      1,
			InitialInterval: 250 * time.Millisecond,
			MaxInterval:     time.Second,
		}),
	}
}

type dailyPayload struct {
	Daily struct {
		Time       []string   `json:"time"`
		Code       []*int     `json:"weathercode"`
		TempMax    []*float64 `json:"temperature_2m_max"`
		TempMin    []*float64 `json:"temperature_2m_min"`
		PrecipProb []*int     `json:"precipitation_probability_max"`
	} `json:"daily"`
}

// Weekend returns the forecast for each bookable day found in the next
// seven days. Any failure leaves the affected day absent.
func (c *Client) Weekend(ctx context.Context) map[models.Day]models.Optional[models.DayForecast] {
	out := make(map[models.Day]models.Optional[models.DayForecast], len(models.Days))
	for _, d := range models.Days {
		out[d] = models.None[models.DayForecast]()
	}

	forecasts, err := c.fetch(ctx)
	if err != nil {
		slog.Warn("weather unavailable", "error", err, "breaker", c.http.State().String())
		return out
	}

	for _, f := range forecasts {
		if cur := out[f.Day]; !cur.Present() {
			out[f.Day] = models.Some(f)
		}
	}
	return out
}

func (c *Client) fetch(ctx context.Context) ([]models.DayForecast, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(c.lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(c.lon, 'f', -1, 64))
	values.Set("daily", "weathercode,temperature_2m_max,temperature_2m_min,precipitation_probability_max")
	values.Set("forecast_days", "7")
	values.Set("timezone", "auto")

	body, err := c.http.Get(ctx, fmt.Sprintf("%s?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	var payload dailyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode forecast: %w", err)
	}

	return parseDaily(payload), nil
}

// parseDaily keeps only weekend days with complete temperature data.
func parseDaily(p dailyPayload) []models.DayForecast {
	d := p.Daily
	var out []models.DayForecast

	for i, ds := range d.Time {
		date, err := time.Parse(time.DateOnly, ds)
		if err != nil {
			continue
		}
		day, ok := models.ParseDay(date.Weekday().String())
		if !ok {
			continue
		}

		tmax, okMax := at(d.TempMax, i)
		tmin, okMin := at(d.TempMin, i)
		if !okMax || !okMin {
			continue
		}
		code, hasCode := at(d.Code, i)
		pop, _ := at(d.PrecipProb, i)
		if !hasCode {
			code = -1
		}

		out = append(out, models.DayForecast{
			Day:        day,
			Date:       ds,
			Code:       code,
			TempMax:    tmax,
			TempMin:    tmin,
			PrecipProb: pop,
			Icon:       IconFor(code, pop),
		})
	}

	return out
}

// at returns the i-th non-null element.
func at[T any](xs []*T, i int) (T, bool) {
	var zero T
	if i >= len(xs) || xs[i] == nil {
		return zero, false
	}
	return *xs[i], true
}

// IconFor maps an Open-Meteo weather code to an icon, falling back to the
// precipitation probability when the code is not recognised.
func IconFor(code, precipProb int) models.Icon {
	switch code {
	case 0:
		return models.IconClear
	case 1, 2, 3:
		return models.IconPartlyCloudy
	case 45, 48:
		return models.IconFog
	case 51, 53, 55, 56, 57:
		return models.IconDrizzle
	case 61, 63, 65, 66, 67, 80, 81, 82:
		return models.IconRain
	case 71, 73, 75, 77:
		return models.IconSnow
	case 95, 96, 99:
		return models.IconThunderstorm
	}

	if precipProb >= 50 {
		return models.IconRain
	}
	return models.IconFallback
}
