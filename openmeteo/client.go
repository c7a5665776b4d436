package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-mcp/models"
)

// API is the upstream surface the rest of the system depends on.
// Client implements it against the live Open-Meteo endpoints; tests
// substitute fakes.
type API interface {
	// Current fetches current conditions for a coordinate.
	Current(ctx context.Context, coord models.Coordinate) (*ForecastPayload, error)

	// DailyForecast fetches a daily forecast for the given day count.
	DailyForecast(ctx context.Context, coord models.Coordinate, days int) (*ForecastPayload, error)

	// Historical fetches daily aggregates for one past date (YYYY-MM-DD).
	Historical(ctx context.Context, coord models.Coordinate, date string) (*ForecastPayload, error)

	// Search looks up place candidates for a free-text name.
	Search(ctx context.Context, name string, count int) (*SearchPayload, error)
}

const (
	defaultForecastBaseURL  = "https://api.open-meteo.com/v1"
	defaultArchiveBaseURL   = "https://archive-api.open-meteo.com/v1"
	defaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1"

	// DefaultUserAgent identifies this client on every upstream request.
	DefaultUserAgent = "weather-mcp/1.0"

	// DefaultTimeout bounds every upstream call.
	DefaultTimeout = 30 * time.Second
)

// currentFields is the parameter list for current-conditions queries.
const currentFields = "temperature_2m,is_day,showers,cloud_cover,wind_speed_10m," +
	"wind_direction_10m,pressure_msl,snowfall,precipitation,relative_humidity_2m," +
	"apparent_temperature,rain,weather_code,surface_pressure,wind_gusts_10m"

// forecastFields is the daily parameter list for forecast queries.
const forecastFields = "weather_code,temperature_2m_max,temperature_2m_min," +
	"precipitation_sum,wind_speed_10m_max,wind_direction_10m_dominant"

// archiveFields is the daily parameter list for archive queries.
const archiveFields = "weather_code,temperature_2m_max,temperature_2m_min," +
	"precipitation_sum,wind_speed_10m_max"

// Config carries the overridable client settings. Zero values fall
// back to the live Open-Meteo endpoints and fixed defaults; overriding
// the base URLs is only intended for tests and self-hosted instances.
type Config struct {
	ForecastBaseURL  string
	ArchiveBaseURL   string
	GeocodingBaseURL string
	UserAgent        string
	Timeout          time.Duration
}

func (c Config) withDefaults() Config {
	if c.ForecastBaseURL == "" {
		c.ForecastBaseURL = defaultForecastBaseURL
	}
	if c.ArchiveBaseURL == "" {
		c.ArchiveBaseURL = defaultArchiveBaseURL
	}
	if c.GeocodingBaseURL == "" {
		c.GeocodingBaseURL = defaultGeocodingBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Client talks to the Open-Meteo forecast, archive and geocoding
// endpoints. It owns its *http.Client so the timeout applies to every
// request, and it never retries: a failed attempt surfaces immediately
// as a typed failure.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates an Open-Meteo client from the given configuration.
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Current fetches current conditions for a coordinate.
func (c *Client) Current(ctx context.Context, coord models.Coordinate) (*ForecastPayload, error) {
	params := coordParams(coord)
	params.Set("current", currentFields)

	var payload ForecastPayload
	if err := c.getJSON(ctx, c.cfg.ForecastBaseURL+"/forecast", params, &payload); err != nil {
		return nil, err
	}
	if payload.Current == nil {
		return nil, models.Parsef("forecast response is missing the current block")
	}
	return &payload, nil
}

// DailyForecast fetches a daily forecast. The day count is assumed to
// be validated by the caller; upstream accepts 1-16.
func (c *Client) DailyForecast(ctx context.Context, coord models.Coordinate, days int) (*ForecastPayload, error) {
	params := coordParams(coord)
	params.Set("daily", forecastFields)
	params.Set("forecast_days", strconv.Itoa(days))
	params.Set("timezone", "auto")

	var payload ForecastPayload
	if err := c.getJSON(ctx, c.cfg.ForecastBaseURL+"/forecast", params, &payload); err != nil {
		return nil, err
	}
	if payload.Daily == nil || len(payload.Daily.Time) == 0 {
		return nil, models.Parsef("forecast response is missing daily data")
	}
	return &payload, nil
}

// Historical fetches daily aggregates for a single past date.
func (c *Client) Historical(ctx context.Context, coord models.Coordinate, date string) (*ForecastPayload, error) {
	params := coordParams(coord)
	params.Set("start_date", date)
	params.Set("end_date", date)
	params.Set("daily", archiveFields)
	params.Set("timezone", "auto")

	var payload ForecastPayload
	if err := c.getJSON(ctx, c.cfg.ArchiveBaseURL+"/archive", params, &payload); err != nil {
		return nil, err
	}
	if payload.Daily == nil || len(payload.Daily.Time) == 0 {
		return nil, models.Parsef("archive response has no data for %s", date)
	}
	return &payload, nil
}

// Search looks up place candidates for a free-text name.
func (c *Client) Search(ctx context.Context, name string, count int) (*SearchPayload, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("count", strconv.Itoa(count))
	params.Set("language", "en")
	params.Set("format", "json")

	var payload SearchPayload
	if err := c.getJSON(ctx, c.cfg.GeocodingBaseURL+"/search", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// getJSON issues one GET request and decodes the body into out,
// mapping every way the call can go wrong onto the failure taxonomy.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.Network("failed to create request", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return models.Timeout(fmt.Sprintf("request to %s exceeded %s", endpoint, c.cfg.Timeout), err)
		}
		return models.Network(fmt.Sprintf("request to %s failed", endpoint), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Network("failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Upstream(fmt.Sprintf("API error (status %d): %s", resp.StatusCode, truncate(body, 200)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return models.Parsef("failed to parse response from %s: %v", endpoint, err)
	}
	return nil
}

func coordParams(coord models.Coordinate) url.Values {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	return params
}

// isTimeout reports whether the error chain indicates the fixed
// timeout fired rather than a general transport fault.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

var _ API = (*Client)(nil)
