package weather

import (
	"testing"
	"time"

	"weather-mcp/models"
	"weather-mcp/openmeteo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayloadCurrent() *openmeteo.ForecastPayload {
	return &openmeteo.ForecastPayload{
		Current: &openmeteo.CurrentBlock{
			Time:                "2025-06-01T14:30",
			Temperature2m:       floatPtr(22.5),
			ApparentTemperature: floatPtr(21.0),
			RelativeHumidity2m:  floatPtr(55),
			WindSpeed10m:        floatPtr(14.2),
			WindDirection10m:    floatPtr(230),
			SurfacePressure:     floatPtr(1007.1),
			PressureMSL:         floatPtr(1013.2),
			CloudCover:          floatPtr(40),
			Precipitation:       floatPtr(0.0),
			Rain:                floatPtr(0.0),
			Snowfall:            floatPtr(0.0),
			WeatherCode:         intPtr(2),
		},
	}
}

func sampleDailyBlock(days int) *openmeteo.DailyBlock {
	daily := &openmeteo.DailyBlock{}
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < days; i++ {
		daily.Time = append(daily.Time, base.AddDate(0, 0, i).Format("2006-01-02"))
		daily.WeatherCode = append(daily.WeatherCode, intPtr(61))
		daily.Temperature2mMax = append(daily.Temperature2mMax, floatPtr(20.0+float64(i)))
		daily.Temperature2mMin = append(daily.Temperature2mMin, floatPtr(10.0+float64(i)))
		daily.PrecipitationSum = append(daily.PrecipitationSum, floatPtr(1.5))
		daily.WindSpeed10mMax = append(daily.WindSpeed10mMax, floatPtr(25.0))
	}
	return daily
}

func TestNormalizeCurrent(t *testing.T) {
	record, err := NormalizeCurrent(samplePayloadCurrent())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC), record.Timestamp)
	require.NotNil(t, record.Temperature)
	assert.Equal(t, 22.5, *record.Temperature)
	require.NotNil(t, record.Pressure)
	assert.Equal(t, 1007.1, *record.Pressure) // surface pressure preferred
	assert.Equal(t, "Partly cloudy", record.Condition)
}

func TestNormalizeCurrentMissingFieldsStayNil(t *testing.T) {
	payload := &openmeteo.ForecastPayload{
		Current: &openmeteo.CurrentBlock{
			Time:          "2025-06-01T14:30",
			Temperature2m: floatPtr(5.0),
		},
	}

	record, err := NormalizeCurrent(payload)
	require.NoError(t, err)
	assert.Nil(t, record.ApparentTemperature)
	assert.Nil(t, record.Humidity)
	assert.Nil(t, record.WindSpeed)
	assert.Nil(t, record.Precipitation)
	assert.Nil(t, record.WeatherCode)
	assert.Equal(t, "Unknown", record.Condition)
}

func TestNormalizeCurrentPressureFallback(t *testing.T) {
	payload := samplePayloadCurrent()
	payload.Current.SurfacePressure = nil

	record, err := NormalizeCurrent(payload)
	require.NoError(t, err)
	require.NotNil(t, record.Pressure)
	assert.Equal(t, 1013.2, *record.Pressure)
}

func TestNormalizeCurrentUnknownCode(t *testing.T) {
	payload := samplePayloadCurrent()
	payload.Current.WeatherCode = intPtr(999)

	record, err := NormalizeCurrent(payload)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", record.Condition)
}

func TestNormalizeCurrentMissingBlock(t *testing.T) {
	_, err := NormalizeCurrent(&openmeteo.ForecastPayload{})
	require.Error(t, err)
	assert.Equal(t, models.KindParse, models.KindOf(err))
}

func TestNormalizeForecastSevenDays(t *testing.T) {
	payload := &openmeteo.ForecastPayload{Daily: sampleDailyBlock(7)}

	series, err := NormalizeForecast(payload, 7)
	require.NoError(t, err)
	require.Len(t, series.Days, 7)

	assert.Equal(t, "2025-06-01", series.Days[0].Date)
	for i := 1; i < len(series.Days); i++ {
		assert.Less(t, series.Days[i-1].Date, series.Days[i].Date, "days must be chronological")
	}
	assert.Equal(t, "Slight rain", series.Days[0].Condition)
}

func TestNormalizeForecastRejectsOutOfRangeDays(t *testing.T) {
	payload := &openmeteo.ForecastPayload{Daily: sampleDailyBlock(16)}

	for _, days := range []int{0, -3, 17, 100} {
		_, err := NormalizeForecast(payload, days)
		require.Error(t, err, "days=%d", days)
		assert.Equal(t, models.KindValidation, models.KindOf(err), "days=%d", days)
	}

	for _, days := range []int{1, 16} {
		_, err := NormalizeForecast(payload, days)
		assert.NoError(t, err, "days=%d", days)
	}
}

func TestNormalizeForecastShortUpstreamSeries(t *testing.T) {
	payload := &openmeteo.ForecastPayload{Daily: sampleDailyBlock(3)}

	_, err := NormalizeForecast(payload, 7)
	require.Error(t, err)
	assert.Equal(t, models.KindParse, models.KindOf(err))
}

func TestNormalizeForecastRaggedArraysYieldNil(t *testing.T) {
	payload := &openmeteo.ForecastPayload{Daily: sampleDailyBlock(3)}
	payload.Daily.WindSpeed10mMax = payload.Daily.WindSpeed10mMax[:1]

	series, err := NormalizeForecast(payload, 3)
	require.NoError(t, err)
	assert.NotNil(t, series.Days[0].WindSpeedMax)
	assert.Nil(t, series.Days[1].WindSpeedMax)
	assert.Nil(t, series.Days[2].WindSpeedMax)
}

func TestNormalizeHistorical(t *testing.T) {
	payload := &openmeteo.ForecastPayload{Daily: sampleDailyBlock(1)}

	summary, err := NormalizeHistorical(payload, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", summary.Date)
	require.NotNil(t, summary.TemperatureMax)
	assert.Equal(t, 20.0, *summary.TemperatureMax)
	assert.Equal(t, "Slight rain", summary.Condition)
}

func TestNormalizeHistoricalEmptyPayload(t *testing.T) {
	_, err := NormalizeHistorical(&openmeteo.ForecastPayload{}, "2025-06-01")
	require.Error(t, err)
	assert.Equal(t, models.KindParse, models.KindOf(err))
}

func TestValidateHistoricalDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"yesterday", "2025-06-14", false},
		{"long ago", "1987-01-01", false},
		{"today", "2025-06-15", true},
		{"tomorrow", "2025-06-16", true},
		{"one year ahead", "2026-06-15", true},
		{"malformed", "15/06/2025", true},
		{"garbage", "not-a-date", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHistoricalDate(tt.date, now)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, models.KindValidation, models.KindOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}
