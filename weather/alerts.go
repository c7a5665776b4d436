package weather

import (
	"weather-mcp/models"
)

// Alert thresholds. All boundaries are inclusive.
const (
	HeatThreshold          = 35.0  // °C
	ColdThreshold          = -20.0 // °C
	WindThreshold          = 60.0  // km/h
	PrecipitationThreshold = 20.0  // mm
)

// EvaluateAlerts applies the fixed threshold rules to a normalized
// record. Rules are independent and evaluated in a fixed order (heat,
// cold, wind, precipitation, thunderstorm) so identical input always
// yields the identical signal sequence. Fields the upstream source
// omitted trigger nothing. An empty result means "no alerts" and is a
// valid outcome, not an error.
func EvaluateAlerts(record models.WeatherRecord) []models.AlertSignal {
	var signals []models.AlertSignal

	if t := record.Temperature; t != nil {
		if *t >= HeatThreshold {
			signals = append(signals, models.AlertSignal{
				Kind:     models.AlertHeat,
				Severity: "HEAT WARNING: Extreme temperature detected",
				Value:    *t,
			})
		}
		if *t <= ColdThreshold {
			signals = append(signals, models.AlertSignal{
				Kind:     models.AlertCold,
				Severity: "COLD WARNING: Extreme cold temperature detected",
				Value:    *t,
			})
		}
	}

	if w := record.WindSpeed; w != nil && *w >= WindThreshold {
		signals = append(signals, models.AlertSignal{
			Kind:     models.AlertWind,
			Severity: "WIND WARNING: High wind speeds detected",
			Value:    *w,
		})
	}

	if p := record.Precipitation; p != nil && *p >= PrecipitationThreshold {
		signals = append(signals, models.AlertSignal{
			Kind:     models.AlertPrecipitation,
			Severity: "PRECIPITATION WARNING: Heavy precipitation detected",
			Value:    *p,
		})
	}

	if ConditionCategoryOf(record.WeatherCode) == CategoryThunderstorm {
		signals = append(signals, models.AlertSignal{
			Kind:     models.AlertThunderstorm,
			Severity: "THUNDERSTORM WARNING: Thunderstorm conditions detected",
			Value:    float64(*record.WeatherCode),
		})
	}

	return signals
}
