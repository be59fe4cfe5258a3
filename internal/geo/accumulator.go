package geo

import (
	"sync"
)

// Accumulator collects weighted points and computes their center of mass.
// Points are only ever appended. Order does not affect the result because the
// aggregate is a symmetric weighted sum.
//
// Go Learning Note — Embedding a Mutex by Value:
// The zero value of sync.RWMutex is an unlocked mutex, so NewAccumulator does
// not need to initialize it. The flip side is that an Accumulator must not be
// copied after first use (go vet's copylocks check catches this), which is why
// every method has a pointer receiver and NewAccumulator returns a pointer.
type Accumulator struct {
	mu     sync.RWMutex
	points []GeoPoint
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add appends a point. GeoPoint's constructor already validated it.
func (a *Accumulator) Add(p GeoPoint) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.points = append(a.points, p)
}

// AddAll appends several points in order.
func (a *Accumulator) AddAll(ps ...GeoPoint) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.points = append(a.points, ps...)
}

// Len returns the number of accumulated points.
func (a *Accumulator) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.points)
}

// Points returns a copy of the accumulated points in insertion order.
func (a *Accumulator) Points() []GeoPoint {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]GeoPoint, len(a.points))
	copy(out, a.points)
	return out
}

// TotalWeight returns the sum of all accumulated weights.
func (a *Accumulator) TotalWeight() float64 {
	return a.Mass().Weight
}

// Mass returns the combined point mass of everything accumulated so far.
func (a *Accumulator) Mass() Mass {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return sumMasses(a.points)
}

// CenterOfMass returns the weighted center of the accumulated points, or
// (nil, nil) when nothing has been added. A zero total weight returns
// ErrZeroTotalWeight; a centroid exactly at the Earth's center (for example two
// equal antipodal points) returns ErrDegenerateCenter, and weights whose
// weighted sum overflows return ErrWeightOverflow.
func (a *Accumulator) CenterOfMass() (*GeoPoint, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return CenterOf(a.points)
}
