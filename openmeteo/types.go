package openmeteo

// Raw response shapes for the Open-Meteo endpoints. Field names follow
// the upstream JSON contract exactly; they are mapped into the uniform
// models by the weather package. Numeric fields are pointers so a
// field the upstream omits stays distinguishable from a zero value.

// CurrentBlock is the "current" object of a forecast response.
type CurrentBlock struct {
	Time                string   `json:"time"`
	Temperature2m       *float64 `json:"temperature_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	RelativeHumidity2m  *float64 `json:"relative_humidity_2m"`
	WindSpeed10m        *float64 `json:"wind_speed_10m"`
	WindGusts10m        *float64 `json:"wind_gusts_10m"`
	WindDirection10m    *float64 `json:"wind_direction_10m"`
	PressureMSL         *float64 `json:"pressure_msl"`
	SurfacePressure     *float64 `json:"surface_pressure"`
	CloudCover          *float64 `json:"cloud_cover"`
	Precipitation       *float64 `json:"precipitation"`
	Rain                *float64 `json:"rain"`
	Showers             *float64 `json:"showers"`
	Snowfall            *float64 `json:"snowfall"`
	WeatherCode         *int     `json:"weather_code"`
	IsDay               *int     `json:"is_day"`
}

// DailyBlock is the "daily" object of forecast and archive responses.
// All arrays are parallel, indexed by day; individual entries may be
// null in archive responses for dates with missing station data.
type DailyBlock struct {
	Time                     []string   `json:"time"`
	WeatherCode              []*int     `json:"weather_code"`
	Temperature2mMax         []*float64 `json:"temperature_2m_max"`
	Temperature2mMin         []*float64 `json:"temperature_2m_min"`
	PrecipitationSum         []*float64 `json:"precipitation_sum"`
	WindSpeed10mMax          []*float64 `json:"wind_speed_10m_max"`
	WindDirection10mDominant []*float64 `json:"wind_direction_10m_dominant"`
}

// ForecastPayload is the top-level shape shared by the forecast and
// archive endpoints; which block is populated depends on the query.
type ForecastPayload struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timezone  string        `json:"timezone"`
	Current   *CurrentBlock `json:"current"`
	Daily     *DailyBlock   `json:"daily"`
}

// GeoResult is one candidate from the geocoding search endpoint.
type GeoResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
}

// SearchPayload is the geocoding search response. An absent "results"
// key means no match, not a malformed body.
type SearchPayload struct {
	Results []GeoResult `json:"results"`
}
