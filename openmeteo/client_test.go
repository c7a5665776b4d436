package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weather-mcp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCoord = models.Coordinate{Latitude: 48.8566, Longitude: 2.3522}

const currentBody = `{
	"latitude": 48.86,
	"longitude": 2.35,
	"current": {
		"time": "2025-06-01T14:30",
		"temperature_2m": 22.5,
		"apparent_temperature": 21.0,
		"relative_humidity_2m": 55,
		"wind_speed_10m": 14.2,
		"wind_direction_10m": 230,
		"surface_pressure": 1007.1,
		"cloud_cover": 40,
		"precipitation": 0.0,
		"weather_code": 2
	}
}`

const dailyBody = `{
	"latitude": 48.86,
	"longitude": 2.35,
	"daily": {
		"time": ["2025-06-01", "2025-06-02"],
		"weather_code": [61, 3],
		"temperature_2m_max": [20.1, 21.4],
		"temperature_2m_min": [11.3, 12.0],
		"precipitation_sum": [4.2, 0.0],
		"wind_speed_10m_max": [25.0, 18.7]
	}
}`

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		ForecastBaseURL:  baseURL,
		ArchiveBaseURL:   baseURL,
		GeocodingBaseURL: baseURL,
	})
}

func TestCurrentRequestShape(t *testing.T) {
	var gotPath, gotUA, gotCurrent, gotLat string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		gotCurrent = r.URL.Query().Get("current")
		gotLat = r.URL.Query().Get("latitude")
		w.Write([]byte(currentBody))
	}))
	defer ts.Close()

	payload, err := newTestClient(ts.URL).Current(context.Background(), testCoord)
	require.NoError(t, err)

	assert.Equal(t, "/forecast", gotPath)
	assert.Equal(t, DefaultUserAgent, gotUA)
	assert.Contains(t, gotCurrent, "temperature_2m")
	assert.Contains(t, gotCurrent, "weather_code")
	assert.Equal(t, "48.8566", gotLat)

	require.NotNil(t, payload.Current)
	require.NotNil(t, payload.Current.Temperature2m)
	assert.Equal(t, 22.5, *payload.Current.Temperature2m)
	require.NotNil(t, payload.Current.WeatherCode)
	assert.Equal(t, 2, *payload.Current.WeatherCode)
}

func TestCurrentMissingBlockIsParseError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"latitude": 48.86}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Current(context.Background(), testCoord)
	require.Error(t, err)
	assert.Equal(t, models.KindParse, models.KindOf(err))
}

func TestDailyForecastRequestShape(t *testing.T) {
	var gotDays, gotTimezone string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDays = r.URL.Query().Get("forecast_days")
		gotTimezone = r.URL.Query().Get("timezone")
		w.Write([]byte(dailyBody))
	}))
	defer ts.Close()

	payload, err := newTestClient(ts.URL).DailyForecast(context.Background(), testCoord, 2)
	require.NoError(t, err)

	assert.Equal(t, "2", gotDays)
	assert.Equal(t, "auto", gotTimezone)
	require.NotNil(t, payload.Daily)
	assert.Len(t, payload.Daily.Time, 2)
}

func TestHistoricalRequestShape(t *testing.T) {
	var gotPath, gotStart, gotEnd string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotStart = r.URL.Query().Get("start_date")
		gotEnd = r.URL.Query().Get("end_date")
		w.Write([]byte(dailyBody))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Historical(context.Background(), testCoord, "2025-06-01")
	require.NoError(t, err)

	assert.Equal(t, "/archive", gotPath)
	assert.Equal(t, "2025-06-01", gotStart)
	assert.Equal(t, "2025-06-01", gotEnd)
}

func TestSearchRequestShape(t *testing.T) {
	var gotName, gotCount string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotName = r.URL.Query().Get("name")
		gotCount = r.URL.Query().Get("count")
		w.Write([]byte(`{"results": [{"name": "Paris", "country": "France", "admin1": "Île-de-France", "latitude": 48.85, "longitude": 2.35}]}`))
	}))
	defer ts.Close()

	payload, err := newTestClient(ts.URL).Search(context.Background(), "Paris", 5)
	require.NoError(t, err)

	assert.Equal(t, "Paris", gotName)
	assert.Equal(t, "5", gotCount)
	require.Len(t, payload.Results, 1)
	assert.Equal(t, "France", payload.Results[0].Country)
}

func TestSearchEmptyResultsParsesCleanly(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generationtime_ms": 0.5}`))
	}))
	defer ts.Close()

	payload, err := newTestClient(ts.URL).Search(context.Background(), "Xyzzy", 1)
	require.NoError(t, err)
	assert.Empty(t, payload.Results)
}

func TestNonSuccessStatusIsUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"reason": "Minutely API request limit exceeded"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Current(context.Background(), testCoord)
	require.Error(t, err)
	assert.Equal(t, models.KindUpstream, models.KindOf(err))
	assert.Contains(t, err.Error(), "429")
}

func TestMalformedBodyIsParseError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Current(context.Background(), testCoord)
	require.Error(t, err)
	assert.Equal(t, models.KindParse, models.KindOf(err))
}

func TestSlowUpstreamIsTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(currentBody))
	}))
	defer ts.Close()

	client := NewClient(Config{
		ForecastBaseURL: ts.URL,
		Timeout:         20 * time.Millisecond,
	})

	_, err := client.Current(context.Background(), testCoord)
	require.Error(t, err)
	assert.Equal(t, models.KindTimeout, models.KindOf(err))
}

func TestUnreachableUpstreamIsNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing is listening anymore

	_, err := newTestClient(ts.URL).Current(context.Background(), testCoord)
	require.Error(t, err)
	assert.Equal(t, models.KindNetwork, models.KindOf(err))
}

func TestThrottledClientDelegates(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(currentBody))
	}))
	defer ts.Close()

	throttled := NewThrottledClient(newTestClient(ts.URL), 100, 1)
	for i := 0; i < 3; i++ {
		_, err := throttled.Current(context.Background(), testCoord)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
}

func TestThrottledClientHonorsContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(currentBody))
	}))
	defer ts.Close()

	// Burst of 1 at a very low rate: the second call has to wait far
	// longer than the context allows.
	throttled := NewThrottledClient(newTestClient(ts.URL), 0.001, 1)

	_, err := throttled.Current(context.Background(), testCoord)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = throttled.Current(ctx, testCoord)
	require.Error(t, err)
	assert.Equal(t, models.KindTimeout, models.KindOf(err))
}
