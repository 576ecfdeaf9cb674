// Package geodist provides great-circle distance math for catalog points.
package geodist

import "math"

// earthRadiusMeters is the mean earth radius used for haversine distance.
const earthRadiusMeters = 6371000.0

// metersPerMile converts statute miles to meters.
const metersPerMile = 1609.344

// Meters returns the haversine great-circle distance in meters between two
// lat/lng pairs. The formula is numerically stable for the distances that
// matter here (tens of meters to thousands of kilometers).
func Meters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lng2 - lng1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)

	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	// Clamp guards against a sliver of floating-point overshoot for
	// antipodal points before the Asin.
	a = math.Min(1, a)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(a))
}

// Miles returns the haversine distance in statute miles.
func Miles(lat1, lng1, lat2, lng2 float64) float64 {
	return Meters(lat1, lng1, lat2, lng2) / metersPerMile
}

// MetersToMiles converts a distance in meters to statute miles.
func MetersToMiles(m float64) float64 {
	return m / metersPerMile
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ValidCoordinate reports whether lat/lng are finite and inside the valid
// geographic range.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
