package repository

import (
	"context"

	"geocentroid/internal/domain/entities"
)

type CollectionRepository interface {
	Create(ctx context.Context, collection *entities.Collection) error
	GetByID(ctx context.Context, id string) (*entities.Collection, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.Collection, error)
}
