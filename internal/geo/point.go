// Package geo implements weighted geographic points and the center-of-mass
// computation over them.
//
// Every point is placed on a spherical Earth of radius EarthRadiusMeters and
// converted to Earth-centered Cartesian coordinates (x, y, z) in meters. Averaging
// happens in that Euclidean space, where a weighted mean is meaningful, and the
// result is projected back to latitude/longitude/altitude. Naively averaging
// latitude and longitude breaks down near the poles and across the antimeridian;
// the Cartesian round trip does not.
//
// The centroid of points spread over the globe lies inside the Earth, so the
// resulting altitude can be strongly negative. That is a property of the model.
package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// EarthRadiusMeters is the mean Earth radius used as the spherical model.
const EarthRadiusMeters = 6_371_000.0

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0 // exclusive

	// Positions closer than this to the Earth's center have no usable direction;
	// sin(π) rounding leaves antipodal sums around 1e-9 m rather than 0.
	degenerateRadius = 1e-6
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be in range [-90, 90]")
	ErrInvalidLongitude = errors.New("longitude must be in range [-180, 180)")
	ErrInvalidAltitude  = errors.New("altitude must be a finite number")
	ErrInvalidWeight    = errors.New("weight must be a finite, non-negative number")
)

// GeoPoint is a weighted location. It is immutable: the Cartesian position is
// computed once in NewGeoPoint and always agrees with the geographic fields.
//
// Go Learning Note — Unexported Fields for Immutability:
// Go has no "readonly" keyword. Keeping every field lowercase means code outside
// the package can only read a GeoPoint through its accessor methods, so the only
// way to obtain one is through the validating constructor. The zero value is
// still constructible (GeoPoint{}), but it never comes out of this package.
type GeoPoint struct {
	lat    float64
	long   float64
	alt    float64
	weight float64

	theta  float64 // colatitude, radians
	phi    float64 // azimuth, radians
	radius float64
	pos    r3.Vec
}

// NewGeoPoint validates the inputs and builds a GeoPoint. Latitude and longitude
// are in degrees, altitude in meters above the mean Earth radius.
func NewGeoPoint(lat, long, alt, weight float64) (GeoPoint, error) {
	// Written as negated ranges so NaN falls through to the error.
	if !(lat >= minLatitude && lat <= maxLatitude) {
		return GeoPoint{}, fmt.Errorf("%w: got %v", ErrInvalidLatitude, lat)
	}
	if !(long >= minLongitude && long < maxLongitude) {
		return GeoPoint{}, fmt.Errorf("%w: got %v", ErrInvalidLongitude, long)
	}
	if math.IsNaN(alt) || math.IsInf(alt, 0) {
		return GeoPoint{}, fmt.Errorf("%w: got %v", ErrInvalidAltitude, alt)
	}
	if !(weight >= 0) || math.IsInf(weight, 1) {
		return GeoPoint{}, fmt.Errorf("%w: got %v", ErrInvalidWeight, weight)
	}

	theta := degToRad(90 - lat)
	phi := degToRad(long)
	radius := EarthRadiusMeters + alt

	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)

	return GeoPoint{
		lat:    lat,
		long:   long,
		alt:    alt,
		weight: weight,
		theta:  theta,
		phi:    phi,
		radius: radius,
		pos: r3.Vec{
			X: radius * sinTheta * cosPhi,
			Y: radius * sinTheta * sinPhi,
			Z: radius * cosTheta,
		},
	}, nil
}

// NewPoint builds a GeoPoint with the default weight of 1.
func NewPoint(lat, long, alt float64) (GeoPoint, error) {
	return NewGeoPoint(lat, long, alt, 1)
}

// FromCartesian is the inverse of the construction transform: it projects an
// Earth-centered position back to latitude, longitude and altitude. A position
// at (or within a micrometer of) the origin has no direction and yields
// ErrDegenerateCenter.
func FromCartesian(v r3.Vec, weight float64) (GeoPoint, error) {
	r := r3.Norm(v)
	if r < degenerateRadius {
		return GeoPoint{}, ErrDegenerateCenter
	}

	theta := math.Acos(clamp(v.Z/r, -1, 1))
	phi := math.Atan2(v.Y, v.X)

	lat := 90 - radToDeg(theta)
	long := radToDeg(phi)
	if long >= maxLongitude {
		// atan2 returns +π on the negative x axis; the range is half-open.
		long -= 360
	}

	return NewGeoPoint(lat, long, r-EarthRadiusMeters, weight)
}

func (p GeoPoint) Latitude() float64  { return p.lat }
func (p GeoPoint) Longitude() float64 { return p.long }
func (p GeoPoint) Altitude() float64  { return p.alt }
func (p GeoPoint) Weight() float64    { return p.weight }

// PolarAngle returns the colatitude in radians, measured from the North Pole.
func (p GeoPoint) PolarAngle() float64 { return p.theta }

// Azimuth returns the longitude in radians.
func (p GeoPoint) Azimuth() float64 { return p.phi }

// Radius returns the distance from the Earth's center in meters.
func (p GeoPoint) Radius() float64 { return p.radius }

// Cartesian returns the Earth-centered position in meters.
func (p GeoPoint) Cartesian() r3.Vec { return p.pos }

// Mass returns the point as a point mass: its position scaled by its weight.
func (p GeoPoint) Mass() Mass {
	return Mass{Moment: r3.Scale(p.weight, p.pos), Weight: p.weight}
}

// Add combines two points as point masses in Cartesian space. The result is a
// Mass, not a GeoPoint: summed positions are meters, never degrees, and only
// Mass.Centroid maps them back onto geographic coordinates.
func (p GeoPoint) Add(other GeoPoint) Mass {
	return p.Mass().Add(other.Mass())
}

// String renders the original geographic fields as (lat, long, alt, weight).
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", p.lat, p.long, p.alt, p.weight)
}

// FormatFixed renders the point like String but with a fixed number of decimals.
func (p GeoPoint) FormatFixed(precision int) string {
	if precision < 0 {
		return p.String()
	}
	return fmt.Sprintf("(%.*f, %.*f, %.*f, %.*f)",
		precision, p.lat, precision, p.long, precision, p.alt, precision, p.weight)
}

type pointJSON struct {
	Lat    float64 `json:"lat"`
	Long   float64 `json:"long"`
	Alt    float64 `json:"alt"`
	Weight float64 `json:"weight"`
}

// MarshalJSON exposes the geographic fields; the derived ones are recomputable.
func (p GeoPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointJSON{Lat: p.lat, Long: p.long, Alt: p.alt, Weight: p.weight})
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
