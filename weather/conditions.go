package weather

// ConditionCategory groups WMO weather codes into coarse buckets. The
// alert evaluator keys thunderstorm detection off the category rather
// than individual codes.
type ConditionCategory string

const (
	CategoryClear        ConditionCategory = "clear"
	CategoryCloud        ConditionCategory = "cloud"
	CategoryFog          ConditionCategory = "fog"
	CategoryDrizzle      ConditionCategory = "drizzle"
	CategoryRain         ConditionCategory = "rain"
	CategorySnow         ConditionCategory = "snow"
	CategoryThunderstorm ConditionCategory = "thunderstorm"
	CategoryUnknown      ConditionCategory = "unknown"
)

// UnknownCondition is the label for codes not in the table.
const UnknownCondition = "Unknown"

type condition struct {
	label    string
	category ConditionCategory
}

// conditionTable maps WMO present-weather codes to labels and
// categories. It carries the interpretation codes Open-Meteo documents
// plus the surrounding WMO 4677 codes its source models can emit.
var conditionTable = map[int]condition{
	0:  {"Clear sky", CategoryClear},
	1:  {"Mainly clear", CategoryClear},
	2:  {"Partly cloudy", CategoryCloud},
	3:  {"Overcast", CategoryCloud},
	4:  {"Smoke", CategoryFog},
	5:  {"Haze", CategoryFog},
	10: {"Mist", CategoryFog},
	11: {"Shallow fog patches", CategoryFog},
	12: {"Continuous shallow fog", CategoryFog},
	17: {"Thunderstorm without precipitation", CategoryThunderstorm},
	20: {"Recent drizzle", CategoryDrizzle},
	21: {"Recent rain", CategoryRain},
	22: {"Recent snow", CategorySnow},
	23: {"Recent rain and snow", CategorySnow},
	24: {"Recent freezing drizzle", CategoryDrizzle},
	25: {"Recent rain showers", CategoryRain},
	26: {"Recent snow showers", CategorySnow},
	27: {"Recent hail showers", CategoryRain},
	28: {"Recent fog", CategoryFog},
	29: {"Recent thunderstorm", CategoryThunderstorm},
	40: {"Fog at a distance", CategoryFog},
	41: {"Fog in patches", CategoryFog},
	42: {"Thinning fog", CategoryFog},
	44: {"Steady fog", CategoryFog},
	45: {"Fog", CategoryFog},
	48: {"Depositing rime fog", CategoryFog},
	51: {"Light drizzle", CategoryDrizzle},
	53: {"Moderate drizzle", CategoryDrizzle},
	55: {"Dense drizzle", CategoryDrizzle},
	56: {"Light freezing drizzle", CategoryDrizzle},
	57: {"Dense freezing drizzle", CategoryDrizzle},
	58: {"Light drizzle and rain", CategoryDrizzle},
	59: {"Heavy drizzle and rain", CategoryDrizzle},
	60: {"Slight intermittent rain", CategoryRain},
	61: {"Slight rain", CategoryRain},
	62: {"Moderate intermittent rain", CategoryRain},
	63: {"Moderate rain", CategoryRain},
	64: {"Heavy intermittent rain", CategoryRain},
	65: {"Heavy rain", CategoryRain},
	66: {"Light freezing rain", CategoryRain},
	67: {"Heavy freezing rain", CategoryRain},
	68: {"Light rain and snow", CategorySnow},
	69: {"Heavy rain and snow", CategorySnow},
	70: {"Slight intermittent snow fall", CategorySnow},
	71: {"Slight snow fall", CategorySnow},
	72: {"Moderate intermittent snow fall", CategorySnow},
	73: {"Moderate snow fall", CategorySnow},
	74: {"Heavy intermittent snow fall", CategorySnow},
	75: {"Heavy snow fall", CategorySnow},
	77: {"Snow grains", CategorySnow},
	79: {"Ice pellets", CategorySnow},
	80: {"Slight rain showers", CategoryRain},
	81: {"Moderate rain showers", CategoryRain},
	82: {"Violent rain showers", CategoryRain},
	83: {"Slight rain and snow showers", CategorySnow},
	84: {"Heavy rain and snow showers", CategorySnow},
	85: {"Slight snow showers", CategorySnow},
	86: {"Heavy snow showers", CategorySnow},
	87: {"Slight graupel showers", CategorySnow},
	88: {"Heavy graupel showers", CategorySnow},
	89: {"Slight hail showers", CategoryRain},
	90: {"Heavy hail showers", CategoryRain},
	91: {"Slight rain after thunderstorm", CategoryThunderstorm},
	92: {"Heavy rain after thunderstorm", CategoryThunderstorm},
	95: {"Thunderstorm", CategoryThunderstorm},
	96: {"Thunderstorm with slight hail", CategoryThunderstorm},
	97: {"Heavy thunderstorm", CategoryThunderstorm},
	99: {"Thunderstorm with heavy hail", CategoryThunderstorm},
}

// ConditionLabel decodes a WMO weather code into a human-readable
// label. Unmapped codes decode to "Unknown" rather than failing; a nil
// code means the upstream source omitted the field.
func ConditionLabel(code *int) string {
	if code == nil {
		return UnknownCondition
	}
	if c, ok := conditionTable[*code]; ok {
		return c.label
	}
	return UnknownCondition
}

// ConditionCategoryOf classifies a WMO weather code.
func ConditionCategoryOf(code *int) ConditionCategory {
	if code == nil {
		return CategoryUnknown
	}
	if c, ok := conditionTable[*code]; ok {
		return c.category
	}
	return CategoryUnknown
}
