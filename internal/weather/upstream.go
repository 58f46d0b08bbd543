package weather

// Types mirroring the relevant subset of the WeatherAPI.com forecast.json
// response. Only the fields the normalizer consumes are declared; the
// provider's hour/astro sub-objects are ignored by the decoder.

type upstreamPayload struct {
	Location upstreamLocation `json:"location"`
	Current  upstreamCurrent  `json:"current"`
	Forecast upstreamForecast `json:"forecast"`
}

type upstreamLocation struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	TzID    string  `json:"tz_id"`
}

type upstreamCondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

type upstreamCurrent struct {
	TempC      float64           `json:"temp_c"`
	TempF      float64           `json:"temp_f"`
	Condition  upstreamCondition `json:"condition"`
	WindKph    float64           `json:"wind_kph"`
	Humidity   int               `json:"humidity"`
	FeelslikeC float64           `json:"feelslike_c"`
}

type upstreamForecast struct {
	ForecastDay []upstreamForecastDay `json:"forecastday"`
}

type upstreamForecastDay struct {
	Date string      `json:"date"`
	Day  upstreamDay `json:"day"`
}

type upstreamDay struct {
	MinTempC          float64           `json:"mintemp_c"`
	MaxTempC          float64           `json:"maxtemp_c"`
	MinTempF          float64           `json:"mintemp_f"`
	MaxTempF          float64           `json:"maxtemp_f"`
	DailyChanceOfRain int               `json:"daily_chance_of_rain"`
	DailyChanceOfSnow int               `json:"daily_chance_of_snow"`
	Condition         upstreamCondition `json:"condition"`
}

// upstreamErrorEnvelope is the provider's structured error body, returned
// alongside non-2xx statuses.
type upstreamErrorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Provider error code for "no matching location found".
const upstreamCodeNoLocation = 1006
