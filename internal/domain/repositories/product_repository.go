package repositories

import (
	"context"

	"github.com/rafabene/loja-backend/internal/domain/entities"
)

// ProductRepository define a persistência do catálogo
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	FindByID(ctx context.Context, id string) (*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, query ListQuery) (*ListResult[*entities.Product], error)
}
