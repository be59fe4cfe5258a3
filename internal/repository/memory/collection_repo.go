package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"geocentroid/internal/domain/entities"
	"geocentroid/internal/repository"
)

var ErrCollectionNotFound = errors.New("collection not found")

var _ repository.CollectionRepository = (*CollectionRepository)(nil)

// CollectionRepository keeps collections in memory, keyed by ID. The map is
// guarded by the repository's lock; each collection's points are guarded by the
// collection's own accumulator, so appending points never blocks lookups.
type CollectionRepository struct {
	mu          sync.RWMutex
	collections map[string]*entities.Collection
}

func NewCollectionRepository() *CollectionRepository {
	return &CollectionRepository{
		collections: make(map[string]*entities.Collection),
	}
}

func (r *CollectionRepository) Create(ctx context.Context, collection *entities.Collection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.collections[collection.ID] = collection
	return nil
}

func (r *CollectionRepository) GetByID(ctx context.Context, id string) (*entities.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	collection, exists := r.collections[id]
	if !exists {
		return nil, ErrCollectionNotFound
	}
	return collection, nil
}

func (r *CollectionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.collections[id]; !exists {
		return ErrCollectionNotFound
	}
	delete(r.collections, id)
	return nil
}

// List returns all collections, oldest first.
func (r *CollectionRepository) List(ctx context.Context) ([]*entities.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	collections := make([]*entities.Collection, 0, len(r.collections))
	for _, c := range r.collections {
		collections = append(collections, c)
	}
	sort.Slice(collections, func(i, j int) bool {
		return collections[i].CreatedAt.Before(collections[j].CreatedAt)
	})
	return collections, nil
}
