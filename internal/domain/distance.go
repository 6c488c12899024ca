package domain

import "math"

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometres between two points.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// routeFactor approximates road and footpath detours over the straight line.
var routeFactor = map[DistanceType]float64{
	DistanceAir:     1.0,
	DistanceWalking: 1.25,
	DistanceDriving: 1.4,
}

// DistanceTo returns the distance from the volunteer to the call measured with
// the volunteer's distance type. ok is false when the volunteer is not located.
func (v Volunteer) DistanceTo(c Call) (km float64, ok bool) {
	if !v.Located() {
		return 0, false
	}
	f, found := routeFactor[v.DistanceType]
	if !found {
		f = 1.0
	}
	return Distance(*v.Latitude, *v.Longitude, c.Latitude, c.Longitude) * f, true
}

// Reaches reports whether the call lies within the volunteer's maximum distance.
// A volunteer without a maximum distance reaches every call.
func (v Volunteer) Reaches(c Call) bool {
	if v.MaxDistance == nil {
		return true
	}
	d, ok := v.DistanceTo(c)
	return ok && d <= *v.MaxDistance
}
