package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"geocentroid/internal/config"
	"geocentroid/internal/domain/entities"
	"geocentroid/internal/geo"
	"geocentroid/internal/repository"
	"geocentroid/internal/repository/memory"
	"geocentroid/pkg/utils"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrEmptyCollection    = errors.New("no points to compute a center from")
)

type CenterService struct {
	repo   repository.CollectionRepository
	config *config.Config
}

func NewCenterService(repo repository.CollectionRepository, cfg *config.Config) *CenterService {
	return &CenterService{
		repo:   repo,
		config: cfg,
	}
}

// CenterSummary describes a computed center of mass. SpreadKm is the largest
// surface distance from the center to any contributing point.
type CenterSummary struct {
	Center     geo.GeoPoint `json:"center"`
	Geohash    string       `json:"geohash"`
	SpreadKm   float64      `json:"spread_km"`
	PointCount int          `json:"point_count"`
}

// IsInvalidPoint reports whether err came from rejecting a point's coordinates
// or weight.
func IsInvalidPoint(err error) bool {
	return errors.Is(err, geo.ErrInvalidLatitude) ||
		errors.Is(err, geo.ErrInvalidLongitude) ||
		errors.Is(err, geo.ErrInvalidAltitude) ||
		errors.Is(err, geo.ErrInvalidWeight)
}

// ComputeCenter computes the center of an ad-hoc list of locations without
// storing anything. The first invalid location fails the whole request.
func (s *CenterService) ComputeCenter(ctx context.Context, locations []entities.Location) (*CenterSummary, error) {
	points := make([]geo.GeoPoint, 0, len(locations))
	for i, loc := range locations {
		p, err := loc.ToGeoPoint()
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		points = append(points, p)
	}

	summary, err := s.summarize(points)
	if err != nil {
		return nil, err
	}

	log.Printf("[CENTROID] Computed center of %d points at %s", summary.PointCount, summary.Geohash)
	return summary, nil
}

// CreateCollection creates an empty named collection.
func (s *CenterService) CreateCollection(ctx context.Context, name string) (*entities.Collection, error) {
	collection := entities.NewCollection(utils.GenerateID(), strings.TrimSpace(name))
	if err := s.repo.Create(ctx, collection); err != nil {
		return nil, err
	}

	log.Printf("[CENTROID] Created collection %s (%q)", collection.ID, collection.Name)
	return collection, nil
}

// GetCollection returns a collection by ID.
func (s *CenterService) GetCollection(ctx context.Context, id string) (*entities.Collection, error) {
	collection, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err)
	}
	return collection, nil
}

// ListCollections returns every collection, oldest first.
func (s *CenterService) ListCollections(ctx context.Context) ([]*entities.Collection, error) {
	return s.repo.List(ctx)
}

// DeleteCollection removes a collection and its points.
func (s *CenterService) DeleteCollection(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateRepoError(err)
	}

	log.Printf("[CENTROID] Deleted collection %s", id)
	return nil
}

// AddPoint validates a location and appends it to a collection.
func (s *CenterService) AddPoint(ctx context.Context, id string, loc entities.Location) (geo.GeoPoint, error) {
	collection, err := s.GetCollection(ctx, id)
	if err != nil {
		return geo.GeoPoint{}, err
	}

	p, err := loc.ToGeoPoint()
	if err != nil {
		return geo.GeoPoint{}, err
	}
	collection.Points.Add(p)

	return p, nil
}

// CollectionCenter computes the current center of a collection.
func (s *CenterService) CollectionCenter(ctx context.Context, id string) (*CenterSummary, error) {
	collection, err := s.GetCollection(ctx, id)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarize(collection.Points.Points())
	if err != nil {
		log.Printf("[CENTROID] No center for collection %s: %v", id, err)
		return nil, err
	}
	return summary, nil
}

// summarize works on a snapshot of points so the center, count and spread
// agree even while other requests keep appending to the same accumulator.
func (s *CenterService) summarize(points []geo.GeoPoint) (*CenterSummary, error) {
	center, err := geo.CenterOf(points)
	if err != nil {
		return nil, err
	}
	if center == nil {
		return nil, ErrEmptyCollection
	}

	spread := 0.0
	for _, p := range points {
		d := utils.HaversineDistance(center.Latitude(), center.Longitude(), p.Latitude(), p.Longitude())
		spread = math.Max(spread, d)
	}

	return &CenterSummary{
		Center:     *center,
		Geohash:    center.Geohash(s.config.Geo.GeohashPrecision),
		SpreadKm:   utils.RoundTo(spread, 3),
		PointCount: len(points),
	}, nil
}

func translateRepoError(err error) error {
	if errors.Is(err, memory.ErrCollectionNotFound) {
		return ErrCollectionNotFound
	}
	return err
}
