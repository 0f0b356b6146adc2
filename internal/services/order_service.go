package services

import (
	"context"
	"strings"
	"time"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
)

// OrderService contém a lógica de checkout e do histórico de pedidos
type OrderService struct {
	cartRepo  repositories.CartRepository
	orderRepo repositories.OrderRepository
	uow       ports.UnitOfWork
	events    ports.EventPublisher
	metrics   ports.Metrics
	logger    ports.Logger
	limits    repositories.PageLimits
}

// NewOrderService cria um novo OrderService
func NewOrderService(
	cartRepo repositories.CartRepository,
	orderRepo repositories.OrderRepository,
	uow ports.UnitOfWork,
	events ports.EventPublisher,
	metrics ports.Metrics,
	logger ports.Logger,
	limits repositories.PageLimits,
) *OrderService {
	return &OrderService{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		uow:       uow,
		events:    events,
		metrics:   metrics,
		logger:    logger,
		limits:    limits,
	}
}

// Checkout transforma o carrinho em pedido.
// Criar o pedido e esvaziar o carrinho acontecem na mesma transação.
func (s *OrderService) Checkout(ctx context.Context, userID string) (*entities.Order, error) {
	var order *entities.Order
	var units int

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		cart, err := s.cartRepo.LockForCheckout(txCtx, userID)
		if err != nil {
			return err
		}
		if cart == nil || cart.IsEmpty() {
			return errors.ErrEmptyCart
		}

		order, err = entities.NewOrderFromCart(cart, time.Now().UTC())
		if err != nil {
			return err
		}
		units = cart.ItemCount()

		if err := s.orderRepo.Create(txCtx, order); err != nil {
			return err
		}

		return s.cartRepo.Clear(txCtx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		"order_id", order.ID,
		"user_id", userID,
		"total", order.Total.StringFixed(2),
		"items", len(order.Items),
	)
	s.metrics.ObserveCheckout(order.Total, units)
	publishEvent(ctx, s.events, s.logger, ports.EventOrderCreated, map[string]any{
		"id":      order.ID,
		"usuario": order.UserID,
		"total":   order.Total.StringFixed(2),
		"itens":   units,
	})

	return order, nil
}

// ListForUser devolve os pedidos do usuário, mais recentes primeiro
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// GetOrder busca um pedido; quem não é dono nem admin recebe not found
func (s *OrderService) GetOrder(ctx context.Context, id string, requester *entities.User) (*entities.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil || (!requester.IsAdmin && order.UserID != requester.ID) {
		return nil, errors.ErrOrderNotFound
	}
	return order, nil
}

// ListOrders é a listagem administrativa com filtro opcional de status
func (s *OrderService) ListOrders(ctx context.Context, filters repositories.OrderFilters) (*Page[*entities.Order], error) {
	filters.ListQuery = filters.ListQuery.Normalize(s.limits)
	filters.Status = strings.TrimSpace(filters.Status)

	result, err := s.orderRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	return newPage(result, filters.ListQuery), nil
}

// UpdateStatus é a única alteração permitida em um pedido
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*entities.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, errors.NewValidationError("status", errors.ErrInvalidStatus)
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if !updated {
		s.logger.Warn("status change of nonexistent order", "order_id", id)
		return nil, errors.ErrOrderNotFound
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.ErrOrderNotFound
	}

	s.logger.Info("order status changed", "order_id", id, "status", status)
	publishEvent(ctx, s.events, s.logger, ports.EventOrderStatusChanged, map[string]any{
		"id":     id,
		"status": status,
	})

	return order, nil
}
