package weather

// Snapshot is the normalized weather view returned to callers. It is built
// once by Normalize on a cache miss and never mutated afterwards; a re-fetch
// replaces the cached value wholesale.
type Snapshot struct {
	City      string            `json:"city"`
	Country   string            `json:"country"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Timezone  string            `json:"timezone"`
	Current   CurrentConditions `json:"current"`
	Forecast  []ForecastDay     `json:"forecast"`
}

// CurrentConditions holds the present-moment readings. Both temperature units
// are carried as reported upstream; neither is derived from the other.
type CurrentConditions struct {
	TempC         float64 `json:"tempC"`
	TempF         float64 `json:"tempF"`
	Condition     string  `json:"condition"`
	ConditionIcon string  `json:"conditionIcon"`
	WindKph       float64 `json:"windKph"`
	Humidity      int     `json:"humidity"`
	FeelsLikeC    float64 `json:"feelsLikeC"`
}

// ForecastDay is one day of the forecast, ordered as given upstream.
// PrecipChance is the worst case of the day's rain and snow chances.
type ForecastDay struct {
	Date          string  `json:"date"` // ISO "YYYY-MM-DD"
	MinC          float64 `json:"minC"`
	MaxC          float64 `json:"maxC"`
	MinF          float64 `json:"minF"`
	MaxF          float64 `json:"maxF"`
	Condition     string  `json:"condition"`
	ConditionIcon string  `json:"conditionIcon"`
	PrecipChance  int     `json:"precipChance"`
}
