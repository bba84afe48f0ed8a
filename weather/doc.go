// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package weather fetches weekend forecasts from Open-Meteo.

	c := weather.NewClient(cfg.WeatherURL, cfg.Latitude, cfg.Longitude)
	wx := c.Weekend(ctx)
	if sat, ok := wx[models.Saturday].Get(); ok {
		fmt.Println(sat.Icon.Emoji(), sat.TempMax, sat.PrecipProb)
	}

Weekend requests seven daily forecasts and keeps the first Saturday and the
first Sunday. Network errors, bad status codes, and undecodable bodies are
logged and leave both days absent. The results page still renders.

IconFor maps Open-Meteo weather codes to coarse categories, falling back to
rain when precipitation probability is at least 50%.
*/
package weather
