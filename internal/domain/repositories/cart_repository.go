package repositories

import (
	"context"

	"github.com/rafabene/loja-backend/internal/domain/entities"
)

// CartRepository define a persistência dos carrinhos.
// As alterações de item são operações atômicas por (carrinho, produto).
type CartRepository interface {
	// GetOrCreate devolve o carrinho do usuário com produtos populados
	GetOrCreate(ctx context.Context, userID string) (*entities.Cart, error)
	// LockForCheckout trava o carrinho até o fim da transação; nil se não existir
	LockForCheckout(ctx context.Context, userID string) (*entities.Cart, error)
	AddItem(ctx context.Context, cartID, productID string, quantity int) error
	SetQuantity(ctx context.Context, cartID, productID string, quantity int) (bool, error)
	RemoveItem(ctx context.Context, cartID, productID string) error
	// Clear remove os itens sem apagar o carrinho
	Clear(ctx context.Context, cartID string) error
}
