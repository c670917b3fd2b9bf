package weather

import "math"

// compassPoints lists the 16 compass-point abbreviations clockwise from north.
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirectionName maps a wind-direction degree value to a compass-point
// abbreviation. Each point owns a 22.5°-wide bucket centered on it, so "N"
// covers [348.75, 360) and [0, 11.25). Negative input means the station
// reports no direction and yields the empty string.
func WindDirectionName(degrees float64) string {
	if degrees < 0 {
		return ""
	}
	idx := int(math.Mod(degrees/22.5+0.5, 16))
	return compassPoints[idx]
}
