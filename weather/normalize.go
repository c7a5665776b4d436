package weather

import (
	"time"

	"weather-mcp/models"
	"weather-mcp/openmeteo"
)

// Forecast day counts accepted by the upstream forecast endpoint.
const (
	MinForecastDays = 1
	MaxForecastDays = 16
)

// upstreamTimeLayout is the minute-resolution ISO 8601 format
// Open-Meteo uses for current-conditions timestamps.
const upstreamTimeLayout = "2006-01-02T15:04"

// Upstream values are already metric (°C, km/h, hPa, mm), so
// normalization is a field mapping with no unit conversion.

// ValidateForecastDays rejects day counts outside the inclusive
// [1, 16] range the upstream endpoint supports. Out-of-range values
// are rejected rather than clamped so caller mistakes stay visible.
func ValidateForecastDays(days int) error {
	if days < MinForecastDays || days > MaxForecastDays {
		return models.Validationf("forecast days %d out of range [%d, %d]", days, MinForecastDays, MaxForecastDays)
	}
	return nil
}

// NormalizeCurrent maps a current-conditions payload into the uniform
// weather record. Missing upstream fields stay nil.
func NormalizeCurrent(payload *openmeteo.ForecastPayload) (models.WeatherRecord, error) {
	if payload == nil || payload.Current == nil {
		return models.WeatherRecord{}, models.Parsef("current conditions missing from upstream payload")
	}
	cur := payload.Current

	ts, err := time.Parse(upstreamTimeLayout, cur.Time)
	if err != nil {
		// The observation time is informational; a record without it
		// is still usable.
		ts = time.Time{}
	}

	pressure := cur.SurfacePressure
	if pressure == nil {
		pressure = cur.PressureMSL
	}

	return models.WeatherRecord{
		Timestamp:           ts,
		Temperature:         cur.Temperature2m,
		ApparentTemperature: cur.ApparentTemperature,
		Humidity:            cur.RelativeHumidity2m,
		WindSpeed:           cur.WindSpeed10m,
		WindDirection:       cur.WindDirection10m,
		Pressure:            pressure,
		CloudCover:          cur.CloudCover,
		Precipitation:       cur.Precipitation,
		Rain:                cur.Rain,
		Snowfall:            cur.Snowfall,
		WeatherCode:         cur.WeatherCode,
		Condition:           ConditionLabel(cur.WeatherCode),
	}, nil
}

// NormalizeForecast maps a daily forecast payload into a chronological
// series of exactly days entries, day 0 being the query date.
func NormalizeForecast(payload *openmeteo.ForecastPayload, days int) (models.ForecastSeries, error) {
	if err := ValidateForecastDays(days); err != nil {
		return models.ForecastSeries{}, err
	}
	if payload == nil || payload.Daily == nil {
		return models.ForecastSeries{}, models.Parsef("daily forecast missing from upstream payload")
	}
	daily := payload.Daily
	if len(daily.Time) < days {
		return models.ForecastSeries{}, models.Parsef("upstream returned %d forecast days, expected %d", len(daily.Time), days)
	}

	series := models.ForecastSeries{Days: make([]models.DailySummary, days)}
	for i := 0; i < days; i++ {
		code := dayValue(daily.WeatherCode, i)
		series.Days[i] = models.DailySummary{
			Date:             daily.Time[i],
			TemperatureMin:   dayValue(daily.Temperature2mMin, i),
			TemperatureMax:   dayValue(daily.Temperature2mMax, i),
			PrecipitationSum: dayValue(daily.PrecipitationSum, i),
			WindSpeedMax:     dayValue(daily.WindSpeed10mMax, i),
			WeatherCode:      code,
			Condition:        ConditionLabel(code),
		}
	}
	return series, nil
}

// NormalizeHistorical maps a single-day archive payload into a daily
// summary for the requested date. Archive data for old or remote
// locations routinely lacks individual fields; those stay nil.
func NormalizeHistorical(payload *openmeteo.ForecastPayload, date string) (models.DailySummary, error) {
	if payload == nil || payload.Daily == nil || len(payload.Daily.Time) == 0 {
		return models.DailySummary{}, models.Parsef("no archive data for %s", date)
	}
	daily := payload.Daily

	code := dayValue(daily.WeatherCode, 0)
	return models.DailySummary{
		Date:             daily.Time[0],
		TemperatureMin:   dayValue(daily.Temperature2mMin, 0),
		TemperatureMax:   dayValue(daily.Temperature2mMax, 0),
		PrecipitationSum: dayValue(daily.PrecipitationSum, 0),
		WindSpeedMax:     dayValue(daily.WindSpeed10mMax, 0),
		WeatherCode:      code,
		Condition:        ConditionLabel(code),
	}, nil
}

// dayValue safely indexes a parallel daily array; short or absent
// arrays yield nil, matching an omitted field.
func dayValue[T any](values []*T, i int) *T {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

// ValidateHistoricalDate checks that date is an ISO calendar date
// strictly before today. Rejection happens before any network call.
func ValidateHistoricalDate(date string, now time.Time) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return models.Validationf("invalid date %q, expected YYYY-MM-DD", date)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !parsed.Before(today) {
		return models.Validationf("historical weather is only available for dates before today, got %s", date)
	}
	return nil
}
