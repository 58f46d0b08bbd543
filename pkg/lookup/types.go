package lookup

// Wire types for the weather lookup service's public API. Field names match
// the service's JSON responses.

type Snapshot struct {
	City      string        `json:"city"`
	Country   string        `json:"country"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timezone  string        `json:"timezone"`
	Current   Current       `json:"current"`
	Forecast  []ForecastDay `json:"forecast"`
}

type Current struct {
	TempC         float64 `json:"tempC"`
	TempF         float64 `json:"tempF"`
	Condition     string  `json:"condition"`
	ConditionIcon string  `json:"conditionIcon"`
	WindKph       float64 `json:"windKph"`
	Humidity      int     `json:"humidity"`
	FeelsLikeC    float64 `json:"feelsLikeC"`
}

type ForecastDay struct {
	Date          string  `json:"date"`
	MinC          float64 `json:"minC"`
	MaxC          float64 `json:"maxC"`
	MinF          float64 `json:"minF"`
	MaxF          float64 `json:"maxF"`
	Condition     string  `json:"condition"`
	ConditionIcon string  `json:"conditionIcon"`
	PrecipChance  int     `json:"precipChance"`
}
