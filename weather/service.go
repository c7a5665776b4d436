package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weather-mcp/models"
	"weather-mcp/openmeteo"
)

// searchLimit caps the candidate count for free-text place search.
const searchLimit = 5

// Service orchestrates the upstream client, the geocoder and the
// normalizers. It holds no mutable state, so concurrent tool calls
// share one instance safely.
type Service struct {
	api openmeteo.API
}

// NewService creates a weather service backed by the given upstream API.
func NewService(api openmeteo.API) *Service {
	return &Service{api: api}
}

// Resolve geocodes a free-text city name to its best-match place.
// Blank input is a validation failure; an empty result set is
// not_found. No network call happens for invalid input.
func (s *Service) Resolve(ctx context.Context, name string) (models.Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Place{}, models.Validationf("city name must not be empty")
	}

	payload, err := s.api.Search(ctx, name, 1)
	if err != nil {
		return models.Place{}, err
	}
	if len(payload.Results) == 0 {
		return models.Place{}, models.NotFoundf("no location found for %q", name)
	}
	return placeFromResult(payload.Results[0]), nil
}

// SearchPlaces returns up to five candidate places for a query, in
// upstream relevance order.
func (s *Service) SearchPlaces(ctx context.Context, query string) ([]models.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.Validationf("search query must not be empty")
	}

	payload, err := s.api.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, models.NotFoundf("no locations found for %q", query)
	}

	places := make([]models.Place, 0, len(payload.Results))
	for _, r := range payload.Results {
		places = append(places, placeFromResult(r))
	}
	return places, nil
}

// Current fetches and normalizes current conditions for a coordinate.
func (s *Service) Current(ctx context.Context, coord models.Coordinate) (models.WeatherRecord, error) {
	payload, err := s.api.Current(ctx, coord)
	if err != nil {
		return models.WeatherRecord{}, err
	}
	return NormalizeCurrent(payload)
}

// Forecast fetches and normalizes a daily forecast. The day count is
// validated before any network call.
func (s *Service) Forecast(ctx context.Context, coord models.Coordinate, days int) (models.ForecastSeries, error) {
	if err := ValidateForecastDays(days); err != nil {
		return models.ForecastSeries{}, err
	}

	payload, err := s.api.DailyForecast(ctx, coord, days)
	if err != nil {
		return models.ForecastSeries{}, err
	}
	return NormalizeForecast(payload, days)
}

// Historical fetches and normalizes archive data for one past date.
// Malformed and non-past dates are rejected before any network call.
func (s *Service) Historical(ctx context.Context, coord models.Coordinate, date string) (models.DailySummary, error) {
	if err := ValidateHistoricalDate(date, time.Now()); err != nil {
		return models.DailySummary{}, err
	}

	payload, err := s.api.Historical(ctx, coord, date)
	if err != nil {
		return models.DailySummary{}, err
	}
	return NormalizeHistorical(payload, date)
}

// CityWeather resolves a city name and fetches its current weather.
func (s *Service) CityWeather(ctx context.Context, city string) (models.Place, models.WeatherRecord, error) {
	place, err := s.Resolve(ctx, city)
	if err != nil {
		return models.Place{}, models.WeatherRecord{}, err
	}

	record, err := s.Current(ctx, place.Coordinate)
	if err != nil {
		return models.Place{}, models.WeatherRecord{}, attributeTo(place.Name, err)
	}
	return place, record, nil
}

// Compare resolves two cities sequentially and compares their current
// weather. The first city that fails to resolve or fetch aborts the
// comparison, with the failure attributed to that city. The delta is
// first minus second; a tie reports "equal".
func (s *Service) Compare(ctx context.Context, city1, city2 string) (models.ComparisonResult, error) {
	first, firstWeather, err := s.CityWeather(ctx, city1)
	if err != nil {
		return models.ComparisonResult{}, attributeTo(city1, err)
	}

	second, secondWeather, err := s.CityWeather(ctx, city2)
	if err != nil {
		return models.ComparisonResult{}, attributeTo(city2, err)
	}

	if firstWeather.Temperature == nil {
		return models.ComparisonResult{}, models.Parsef("temperature unavailable for %s", first.Name)
	}
	if secondWeather.Temperature == nil {
		return models.ComparisonResult{}, models.Parsef("temperature unavailable for %s", second.Name)
	}

	delta := *firstWeather.Temperature - *secondWeather.Temperature
	warmer := "equal"
	switch {
	case delta > 0:
		warmer = first.Name
	case delta < 0:
		warmer = second.Name
	}

	return models.ComparisonResult{
		First:         first,
		Second:        second,
		FirstWeather:  firstWeather,
		SecondWeather: secondWeather,
		Delta:         delta,
		Warmer:        warmer,
	}, nil
}

func placeFromResult(r openmeteo.GeoResult) models.Place {
	return models.Place{
		Name:    r.Name,
		Country: r.Country,
		Admin1:  r.Admin1,
		Coordinate: models.Coordinate{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		},
	}
}

// attributeTo prefixes a failure with the city it belongs to while
// preserving the failure kind. Messages already naming the city pass
// through unchanged.
func attributeTo(city string, err error) error {
	msg := models.FailureMessage(err)
	if strings.Contains(msg, city) {
		return err
	}
	return &models.Failure{
		Kind:    models.KindOf(err),
		Message: fmt.Sprintf("%s: %s", city, msg),
		Err:     err,
	}
}
