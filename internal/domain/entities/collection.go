package entities

import (
	"time"

	"geocentroid/internal/geo"
)

// Collection is a named, append-only set of weighted points whose center of
// mass can be queried at any time. The accumulator carries its own lock, so a
// Collection can be shared between concurrent requests.
type Collection struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"created_at"`
	Points    *geo.Accumulator `json:"-"`
}

// NewCollection creates an empty collection stamped with the current time.
func NewCollection(id, name string) *Collection {
	return &Collection{
		ID:        id,
		Name:      name,
		CreatedAt: time.Now(),
		Points:    geo.NewAccumulator(),
	}
}

// CollectionSummary is the read model returned for a collection.
type CollectionSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	PointCount  int       `json:"point_count"`
	TotalWeight float64   `json:"total_weight"`
}

// Summary snapshots the collection's counters.
func (c *Collection) Summary() CollectionSummary {
	return CollectionSummary{
		ID:          c.ID,
		Name:        c.Name,
		CreatedAt:   c.CreatedAt,
		PointCount:  c.Points.Len(),
		TotalWeight: c.Points.TotalWeight(),
	}
}
