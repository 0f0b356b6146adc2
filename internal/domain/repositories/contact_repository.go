package repositories

import (
	"context"

	"github.com/rafabene/loja-backend/internal/domain/entities"
)

// MessageFilters contém filtros para a listagem de mensagens
type MessageFilters struct {
	ListQuery
	Resolved *bool
}

// ContactRepository define a persistência da caixa de mensagens
type ContactRepository interface {
	Create(ctx context.Context, message *entities.ContactMessage) error
	FindByID(ctx context.Context, id string) (*entities.ContactMessage, error)
	SetResolved(ctx context.Context, id string, resolved bool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filters MessageFilters) (*ListResult[*entities.ContactMessage], error)
}
