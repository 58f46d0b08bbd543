package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLocationAndCurrent(t *testing.T) {
	p := upstreamPayload{}
	p.Location.Name = "Sydney"
	p.Location.Country = "Australia"
	p.Location.Lat = -33.87
	p.Location.Lon = 151.21
	p.Location.TzID = "Australia/Sydney"
	p.Current.TempC = 18.3
	p.Current.TempF = 64.9
	p.Current.Condition = upstreamCondition{Text: "Partly cloudy", Icon: "//cdn.weatherapi.com/day/116.png"}
	p.Current.WindKph = 24.1
	p.Current.Humidity = 62
	p.Current.FeelslikeC = 17.5

	snap := normalize(p)

	assert.Equal(t, "Sydney", snap.City)
	assert.Equal(t, "Australia", snap.Country)
	assert.Equal(t, -33.87, snap.Latitude)
	assert.Equal(t, 151.21, snap.Longitude)
	assert.Equal(t, "Australia/Sydney", snap.Timezone)

	// Both units are copied verbatim, never derived from one another.
	assert.Equal(t, 18.3, snap.Current.TempC)
	assert.Equal(t, 64.9, snap.Current.TempF)
	assert.Equal(t, "Partly cloudy", snap.Current.Condition)
	assert.Equal(t, "//cdn.weatherapi.com/day/116.png", snap.Current.ConditionIcon)
	assert.Equal(t, 24.1, snap.Current.WindKph)
	assert.Equal(t, 62, snap.Current.Humidity)
	assert.Equal(t, 17.5, snap.Current.FeelsLikeC)
}

func TestNormalizePrecipChanceIsMax(t *testing.T) {
	p := upstreamPayload{}
	p.Forecast.ForecastDay = []upstreamForecastDay{
		{
			Date: "2024-06-01",
			Day: upstreamDay{
				DailyChanceOfRain: 10,
				DailyChanceOfSnow: 35,
			},
		},
		{
			Date: "2024-06-02",
			Day: upstreamDay{
				DailyChanceOfRain: 80,
				DailyChanceOfSnow: 0,
			},
		},
	}

	snap := normalize(p)

	require.Len(t, snap.Forecast, 2)
	assert.Equal(t, 35, snap.Forecast[0].PrecipChance)
	assert.Equal(t, 80, snap.Forecast[1].PrecipChance)
}

func TestNormalizePreservesForecastOrder(t *testing.T) {
	p := upstreamPayload{}
	dates := []string{"2024-06-03", "2024-06-01", "2024-06-02"}
	for _, d := range dates {
		p.Forecast.ForecastDay = append(p.Forecast.ForecastDay, upstreamForecastDay{
			Date: d,
			Day:  upstreamDay{MinTempC: 1, MaxTempC: 9, MinTempF: 33.8, MaxTempF: 48.2},
		})
	}

	snap := normalize(p)

	require.Len(t, snap.Forecast, 3)
	for i, d := range dates {
		assert.Equal(t, d, snap.Forecast[i].Date)
		assert.Equal(t, 1.0, snap.Forecast[i].MinC)
		assert.Equal(t, 9.0, snap.Forecast[i].MaxC)
		assert.Equal(t, 33.8, snap.Forecast[i].MinF)
		assert.Equal(t, 48.2, snap.Forecast[i].MaxF)
	}
}
