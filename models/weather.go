package models

import (
	"fmt"
	"time"
)

// Coordinate is a validated latitude/longitude pair
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate validates and constructs a coordinate.
// Out-of-range values are rejected before any network call is made.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if lat < -90 || lat > 90 {
		return Coordinate{}, Validationf("latitude %.4f out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinate{}, Validationf("longitude %.4f out of range [-180, 180]", lon)
	}
	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

// Place is a geocoded location. Produced only by the geocoder and
// never mutated afterwards.
type Place struct {
	Name       string     `json:"name"`
	Country    string     `json:"country"`
	Admin1     string     `json:"admin1,omitempty"`
	Coordinate Coordinate `json:"coordinate"`
}

// DisplayName formats the place as "Name, Admin1, Country", skipping
// empty parts.
func (p Place) DisplayName() string {
	s := p.Name
	if p.Admin1 != "" {
		s += ", " + p.Admin1
	}
	if p.Country != "" {
		s += ", " + p.Country
	}
	return s
}

// WeatherRecord is the uniform internal representation of one weather
// observation, independent of upstream field naming. Numeric fields
// are pointers because the upstream source omits them for some query
// types; absence propagates as nil, never as zero.
type WeatherRecord struct {
	Timestamp           time.Time `json:"timestamp"`
	Temperature         *float64  `json:"temperature"`         // °C
	ApparentTemperature *float64  `json:"apparentTemperature"` // °C
	Humidity            *float64  `json:"humidity"`            // %
	WindSpeed           *float64  `json:"windSpeed"`           // km/h
	WindDirection       *float64  `json:"windDirection"`       // degrees
	Pressure            *float64  `json:"pressure"`            // hPa
	CloudCover          *float64  `json:"cloudCover"`          // %
	Precipitation       *float64  `json:"precipitation"`       // mm
	Rain                *float64  `json:"rain"`                // mm
	Snowfall            *float64  `json:"snowfall"`            // mm
	WeatherCode         *int      `json:"weatherCode"`
	Condition           string    `json:"condition"` // decoded label for WeatherCode
}

// DailySummary is one day's aggregate weather: a forecast day within a
// series, or a single archived day from the historical endpoint.
type DailySummary struct {
	Date             string   `json:"date"` // YYYY-MM-DD, upstream local time
	TemperatureMin   *float64 `json:"temperatureMin"`   // °C
	TemperatureMax   *float64 `json:"temperatureMax"`   // °C
	PrecipitationSum *float64 `json:"precipitationSum"` // mm
	WindSpeedMax     *float64 `json:"windSpeedMax"`     // km/h
	WeatherCode      *int     `json:"weatherCode"`
	Condition        string   `json:"condition"`
}

// ForecastSeries is a chronological run of daily summaries; day 0 is
// the query date and the length equals the requested day count.
type ForecastSeries struct {
	Days []DailySummary `json:"days"`
}

// AlertKind identifies one of the fixed alert rules.
type AlertKind string

const (
	AlertHeat          AlertKind = "heat"
	AlertCold          AlertKind = "cold"
	AlertWind          AlertKind = "wind"
	AlertPrecipitation AlertKind = "precipitation"
	AlertThunderstorm  AlertKind = "thunderstorm"
)

// AlertSignal is one triggered threshold rule over a weather record.
type AlertSignal struct {
	Kind     AlertKind `json:"kind"`
	Severity string    `json:"severity"`
	Value    float64   `json:"value"` // the value that crossed the threshold
}

// ComparisonResult pairs two resolved places with their current
// weather and the derived delta.
type ComparisonResult struct {
	First         Place         `json:"first"`
	Second        Place         `json:"second"`
	FirstWeather  WeatherRecord `json:"firstWeather"`
	SecondWeather WeatherRecord `json:"secondWeather"`
	Delta         float64       `json:"delta"`  // First.Temperature - Second.Temperature
	Warmer        string        `json:"warmer"` // place name, or "equal" on a tie
}

// FormatMetric renders a nullable metric with its unit, using "N/A"
// for values the upstream source did not report.
func FormatMetric(v *float64, unit string) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%s", *v, unit)
}
