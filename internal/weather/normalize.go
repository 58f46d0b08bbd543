package weather

// normalize maps a provider payload into the service's stable Snapshot shape.
// It is a pure mapping: numeric fields pass through unchanged and both
// temperature units are copied as-is, since the provider's C and F figures are
// not guaranteed to be mutually consistent. The caller has already verified a
// non-error response, so no validation happens here.
func normalize(p upstreamPayload) Snapshot {
	forecast := make([]ForecastDay, 0, len(p.Forecast.ForecastDay))
	for _, fd := range p.Forecast.ForecastDay {
		forecast = append(forecast, ForecastDay{
			Date:          fd.Date,
			MinC:          fd.Day.MinTempC,
			MaxC:          fd.Day.MaxTempC,
			MinF:          fd.Day.MinTempF,
			MaxF:          fd.Day.MaxTempF,
			Condition:     fd.Day.Condition.Text,
			ConditionIcon: fd.Day.Condition.Icon,
			// Worst-case precipitation probability, not an average.
			PrecipChance: maxInt(fd.Day.DailyChanceOfRain, fd.Day.DailyChanceOfSnow),
		})
	}

	return Snapshot{
		City:      p.Location.Name,
		Country:   p.Location.Country,
		Latitude:  p.Location.Lat,
		Longitude: p.Location.Lon,
		Timezone:  p.Location.TzID,
		Current: CurrentConditions{
			TempC:         p.Current.TempC,
			TempF:         p.Current.TempF,
			Condition:     p.Current.Condition.Text,
			ConditionIcon: p.Current.Condition.Icon,
			WindKph:       p.Current.WindKph,
			Humidity:      p.Current.Humidity,
			FeelsLikeC:    p.Current.FeelslikeC,
		},
		Forecast: forecast,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
