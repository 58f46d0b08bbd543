// Package format holds the pure string-formatting helpers used by
// presentation surfaces. Nothing here touches the network or the cache.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// roundHalfUp rounds to the nearest integer, with .5 rounding up.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// FormatTemperature renders a Celsius temperature, e.g. 20.5 -> "21°C".
func FormatTemperature(c float64) string {
	return fmt.Sprintf("%d°C", roundHalfUp(c))
}

// FormatTemperatureF renders a Fahrenheit temperature, e.g. 68.9 -> "69°F".
func FormatTemperatureF(f float64) string {
	return fmt.Sprintf("%d°F", roundHalfUp(f))
}

// FormatWindSpeed renders a wind speed in km/h, rounded to an integer.
func FormatWindSpeed(kph float64) string {
	return fmt.Sprintf("%d km/h", roundHalfUp(kph))
}

// FormatPercentage renders an integer percentage, e.g. 35 -> "35%".
func FormatPercentage(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// FormatCoordinates renders latitude/longitude with hemisphere suffixes and
// two decimals, e.g. (-33.87, 151.21) -> "33.87°S, 151.21°E".
func FormatCoordinates(lat, lon float64) string {
	latSuffix := "N"
	if lat < 0 {
		latSuffix = "S"
	}
	lonSuffix := "E"
	if lon < 0 {
		lonSuffix = "W"
	}
	return fmt.Sprintf("%.2f°%s, %.2f°%s",
		math.Abs(lat), latSuffix, math.Abs(lon), lonSuffix)
}

// FormatRelativeDay names an ISO "YYYY-MM-DD" date relative to now: "Today",
// "Tomorrow", or the weekday abbreviation. Unparseable input is returned
// unchanged.
func FormatRelativeDay(dateISO string, now time.Time) string {
	parsed, err := time.Parse(isoDate, dateISO)
	if err != nil {
		return dateISO
	}

	switch dateISO {
	case now.Format(isoDate):
		return "Today"
	case now.AddDate(0, 0, 1).Format(isoDate):
		return "Tomorrow"
	}
	return parsed.Format("Mon")
}

// IconURL completes a protocol-relative provider icon path.
func IconURL(icon string) string {
	if strings.HasPrefix(icon, "//") {
		return "https:" + icon
	}
	return icon
}
