package services

import (
	"context"
	stderrors "errors"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
)

// CartService contém a lógica de negócio do carrinho
type CartService struct {
	cartRepo repositories.CartRepository
	logger   ports.Logger
}

// NewCartService cria um novo CartService
func NewCartService(cartRepo repositories.CartRepository, logger ports.Logger) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// GetCart devolve o carrinho do usuário, criando-o vazio na primeira vez
func (s *CartService) GetCart(ctx context.Context, userID string) (*entities.Cart, error) {
	return s.cartRepo.GetOrCreate(ctx, userID)
}

// AddItem soma a quantidade ao item existente ou cria uma nova linha
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*entities.Cart, error) {
	if quantity <= 0 {
		return nil, errors.NewValidationError("quantidade", errors.ErrInvalidQuantity)
	}
	if quantity > entities.MaxItemQuantity {
		return nil, errors.NewValidationError("quantidade", errors.ErrQuantityTooHigh)
	}
	if productID == "" {
		return nil, errors.NewValidationError("produtoId", errors.ErrRequiredField)
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.QuantityOf(productID)+quantity > entities.MaxItemQuantity {
		return nil, errors.NewValidationError("quantidade", errors.ErrQuantityTooHigh)
	}

	if err := s.cartRepo.AddItem(ctx, cart.ID, productID, quantity); err != nil {
		if stderrors.Is(err, errors.ErrProductNotFound) {
			s.logger.Warn("add of unknown product to cart", "user_id", userID, "product_id", productID)
			return nil, errors.NewValidationError("produtoId", errors.ErrProductNotFound)
		}
		return nil, err
	}

	s.logger.Debug("cart item added", "user_id", userID, "product_id", productID, "quantity", quantity)
	return s.cartRepo.GetOrCreate(ctx, userID)
}

// SetQuantity troca a quantidade de um item que já está no carrinho
func (s *CartService) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*entities.Cart, error) {
	if quantity <= 0 {
		return nil, errors.NewValidationError("quantidade", errors.ErrInvalidQuantity)
	}
	if quantity > entities.MaxItemQuantity {
		return nil, errors.NewValidationError("quantidade", errors.ErrQuantityTooHigh)
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.cartRepo.SetQuantity(ctx, cart.ID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, errors.ErrProductNotInCart
	}

	return s.cartRepo.GetOrCreate(ctx, userID)
}

// RemoveItem tira o produto do carrinho; remover algo ausente não é erro
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*entities.Cart, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, err
	}

	return s.cartRepo.GetOrCreate(ctx, userID)
}
