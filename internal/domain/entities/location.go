package entities

import "geocentroid/internal/geo"

// Location is an unvalidated weighted coordinate as it arrives from a caller.
// Weight is a pointer so an omitted weight can default to 1 while an explicit
// zero still means "no contribution".
//
// Go Learning Note — Pointer Fields for Optional JSON Values:
// With a plain float64, `{"lat":1,"long":2}` and `{"lat":1,"long":2,"weight":0}`
// decode to the same struct. A *float64 stays nil when the key is absent, which
// is the idiomatic way to tell "not provided" apart from the zero value.
type Location struct {
	Latitude  float64  `json:"lat"`
	Longitude float64  `json:"long"`
	Altitude  float64  `json:"alt"`
	Weight    *float64 `json:"weight,omitempty"`
}

// NewLocation creates a Location with the default weight.
func NewLocation(lat, long, alt float64) Location {
	return Location{
		Latitude:  lat,
		Longitude: long,
		Altitude:  alt,
	}
}

// ToGeoPoint validates the location and converts it to a GeoPoint.
func (l Location) ToGeoPoint() (geo.GeoPoint, error) {
	weight := 1.0
	if l.Weight != nil {
		weight = *l.Weight
	}
	return geo.NewGeoPoint(l.Latitude, l.Longitude, l.Altitude, weight)
}
