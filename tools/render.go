package tools

import (
	"fmt"
	"strings"

	"weather-mcp/models"
)

// renderCurrent formats a current-conditions record under the given
// header line. Fields the upstream source omitted print as N/A.
func renderCurrent(header string, r models.WeatherRecord) string {
	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "\nWeather: %s", r.Condition)
	fmt.Fprintf(&b, "\nTemperature: %s", models.FormatMetric(r.Temperature, "°C"))
	fmt.Fprintf(&b, "\nFeels like: %s", models.FormatMetric(r.ApparentTemperature, "°C"))
	fmt.Fprintf(&b, "\nHumidity: %s", models.FormatMetric(r.Humidity, "%"))
	fmt.Fprintf(&b, "\nWind Speed: %s", models.FormatMetric(r.WindSpeed, " km/h"))
	fmt.Fprintf(&b, "\nWind Direction: %s", models.FormatMetric(r.WindDirection, "°"))
	fmt.Fprintf(&b, "\nPressure: %s", models.FormatMetric(r.Pressure, " hPa"))
	fmt.Fprintf(&b, "\nCloud Cover: %s", models.FormatMetric(r.CloudCover, "%"))
	fmt.Fprintf(&b, "\nPrecipitation: %s", models.FormatMetric(r.Precipitation, " mm"))
	fmt.Fprintf(&b, "\nRain: %s", models.FormatMetric(r.Rain, " mm"))
	fmt.Fprintf(&b, "\nSnow: %s", models.FormatMetric(r.Snowfall, " mm"))
	return b.String()
}

// renderForecast formats a forecast series, one line per day in
// chronological order.
func renderForecast(series models.ForecastSeries) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weather Forecast for %d days:", len(series.Days))
	for _, day := range series.Days {
		fmt.Fprintf(&b, "\n%s: %s, %s - %s, Rain: %s, Wind: %s",
			day.Date,
			day.Condition,
			models.FormatMetric(day.TemperatureMin, "°C"),
			models.FormatMetric(day.TemperatureMax, "°C"),
			models.FormatMetric(day.PrecipitationSum, "mm"),
			models.FormatMetric(day.WindSpeedMax, "km/h"),
		)
	}
	return b.String()
}

// renderAlerts formats triggered alert signals. No alerts is a valid,
// explicitly reported outcome.
func renderAlerts(signals []models.AlertSignal) string {
	if len(signals) == 0 {
		return "No weather alerts or warnings for this location."
	}
	lines := make([]string, 0, len(signals)+1)
	lines = append(lines, "Weather Alerts:")
	for _, sig := range signals {
		lines = append(lines, sig.Severity)
	}
	return strings.Join(lines, "\n")
}

// renderPlaces formats geocoding candidates in relevance order.
func renderPlaces(places []models.Place) string {
	var b strings.Builder
	b.WriteString("Found locations:")
	for _, p := range places {
		fmt.Fprintf(&b, "\n%s (Lat: %.4f, Lon: %.4f)",
			p.DisplayName(), p.Coordinate.Latitude, p.Coordinate.Longitude)
	}
	return b.String()
}

// renderComparison formats both city reports plus the derived delta
// and warmer-city summary.
func renderComparison(r models.ComparisonResult) string {
	var b strings.Builder
	b.WriteString("Weather Comparison:\n")

	fmt.Fprintf(&b, "\n%s\n", renderCurrent(fmt.Sprintf("Weather in %s, %s:", r.First.Name, r.First.Country), r.FirstWeather))
	fmt.Fprintf(&b, "\n%s\n", renderCurrent(fmt.Sprintf("Weather in %s, %s:", r.Second.Name, r.Second.Country), r.SecondWeather))

	fmt.Fprintf(&b, "\nTemperature difference (%s - %s): %+.1f°C\n", r.First.Name, r.Second.Name, r.Delta)
	if r.Warmer == "equal" {
		b.WriteString("Both cities are equally warm.")
	} else {
		fmt.Fprintf(&b, "%s is warmer.", r.Warmer)
	}
	return b.String()
}

// renderHistorical formats one archived day.
func renderHistorical(s models.DailySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Historical Weather for %s:", s.Date)
	fmt.Fprintf(&b, "\nWeather: %s", s.Condition)
	fmt.Fprintf(&b, "\nTemperature: %s - %s",
		models.FormatMetric(s.TemperatureMin, "°C"),
		models.FormatMetric(s.TemperatureMax, "°C"))
	fmt.Fprintf(&b, "\nPrecipitation: %s", models.FormatMetric(s.PrecipitationSum, " mm"))
	fmt.Fprintf(&b, "\nMax Wind Speed: %s", models.FormatMetric(s.WindSpeedMax, " km/h"))
	return b.String()
}
