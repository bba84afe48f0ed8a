// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Icon is a coarse weather category.
type Icon string

const (
	IconClear        Icon = "clear"
	IconPartlyCloudy Icon = "partly-cloudy"
	IconFog          Icon = "fog"
	IconDrizzle      Icon = "drizzle"
	IconRain         Icon = "rain"
	IconSnow         Icon = "snow"
	IconThunderstorm Icon = "thunderstorm"
	IconFallback     Icon = "fallback"
)

var iconEmoji = map[Icon]string{
	IconClear:        "☀️",
	IconPartlyCloudy: "⛅",
	IconFog:          "🌫️",
	IconDrizzle:      "🌦️",
	IconRain:         "🌧️",
	IconSnow:         "❄️",
	IconThunderstorm: "⛈️",
	IconFallback:     "🌤️",
}

// Emoji returns the display glyph for the icon.
func (i Icon) Emoji() string {
	if e, ok := iconEmoji[i]; ok {
		return e
	}
	return iconEmoji[IconFallback]
}
