package schools

import (
	"math"
	"sort"
)

// earthRadiusKm is the mean Earth radius used by the Haversine formula.
const earthRadiusKm = 6371

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Distance returns the great-circle distance in kilometers between two
// points given in degrees, using the Haversine formula. It is symmetric,
// non-negative, and zero exactly when the points coincide. Inputs are
// assumed to be within valid geographic range; callers validate upstream.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// RankByDistance annotates every school with its distance from the query
// point and returns them in ascending-distance order. The sort is stable, so
// equidistant schools keep their store order. An empty input yields an empty
// (non-nil) result.
func RankByDistance(query Location, records []School) []RankedSchool {
	ranked := make([]RankedSchool, 0, len(records))
	for _, s := range records {
		ranked = append(ranked, RankedSchool{
			School:   s,
			Distance: Distance(query.Latitude, query.Longitude, s.Latitude, s.Longitude),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked
}
