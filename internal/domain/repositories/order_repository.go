package repositories

import (
	"context"

	"github.com/rafabene/loja-backend/internal/domain/entities"
)

// OrderFilters contém filtros para a listagem administrativa de pedidos
type OrderFilters struct {
	ListQuery
	Status string
}

// OrderRepository define a persistência de pedidos
type OrderRepository interface {
	// Create falha com ErrCartAlreadyCheckedOut se a chave de checkout repetir
	Create(ctx context.Context, order *entities.Order) error
	FindByID(ctx context.Context, id string) (*entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*entities.Order, error)
	List(ctx context.Context, filters OrderFilters) (*ListResult[*entities.Order], error)
	UpdateStatus(ctx context.Context, id, status string) (bool, error)
}
