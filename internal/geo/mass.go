package geo

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	ErrZeroTotalWeight  = errors.New("total weight is zero, center of mass is undefined")
	ErrDegenerateCenter = errors.New("center of mass coincides with the Earth's center")
	ErrWeightOverflow   = errors.New("weighted sum overflows float64")
)

// Mass is a point mass in Earth-centered Cartesian space. Moment is the
// weighted sum of positions (meters times weight); Weight is the total weight.
// Masses add component-wise, which is what makes the center of mass a simple
// division at the end.
type Mass struct {
	Moment r3.Vec
	Weight float64
}

// Add returns the combined mass of m and o.
func (m Mass) Add(o Mass) Mass {
	return Mass{Moment: r3.Add(m.Moment, o.Moment), Weight: m.Weight + o.Weight}
}

// Position returns the weighted mean position, Moment / Weight. Weights large
// enough to overflow the moment or the total return ErrWeightOverflow.
func (m Mass) Position() (r3.Vec, error) {
	if !finite(m.Weight) || !finite(m.Moment.X) || !finite(m.Moment.Y) || !finite(m.Moment.Z) {
		return r3.Vec{}, ErrWeightOverflow
	}
	if m.Weight == 0 {
		return r3.Vec{}, ErrZeroTotalWeight
	}
	return r3.Vec{
		X: m.Moment.X / m.Weight,
		Y: m.Moment.Y / m.Weight,
		Z: m.Moment.Z / m.Weight,
	}, nil
}

// Centroid projects the mean position back to geographic coordinates. The
// returned point carries the total weight, so it can be accumulated again
// with the correct relative influence.
func (m Mass) Centroid() (GeoPoint, error) {
	pos, err := m.Position()
	if err != nil {
		return GeoPoint{}, err
	}
	return FromCartesian(pos, m.Weight)
}

// CenterOf returns the weighted center of points, or (nil, nil) for an empty
// slice. It is the lock-free core of Accumulator.CenterOfMass.
func CenterOf(points []GeoPoint) (*GeoPoint, error) {
	if len(points) == 0 {
		return nil, nil
	}

	center, err := sumMasses(points).Centroid()
	if err != nil {
		return nil, err
	}
	return &center, nil
}

func sumMasses(points []GeoPoint) Mass {
	var total Mass
	for _, p := range points {
		total = total.Add(p.Mass())
	}
	return total
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
