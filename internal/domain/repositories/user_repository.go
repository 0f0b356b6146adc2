package repositories

import (
	"context"
	"time"

	"github.com/rafabene/loja-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Buscas retornam (nil, nil) quando o registro não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	// ExistsByEmailOrCPF ignora o usuário excludeID (vazio em cadastros)
	ExistsByEmailOrCPF(ctx context.Context, email, cpf, excludeID string) (bool, error)
	Update(ctx context.Context, user *entities.User) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, query ListQuery) (*ListResult[*entities.User], error)
}
