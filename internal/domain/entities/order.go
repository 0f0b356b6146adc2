package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafabene/loja-backend/internal/domain/errors"
)

// OrderStatusPending é o status inicial de todo pedido
const OrderStatusPending = "Pendente"

// Order é o retrato imutável de um carrinho no momento da compra
type Order struct {
	ID          string
	UserID      string
	Items       []OrderItem
	Total       decimal.Decimal
	Status      string
	CheckoutKey string
	CreatedAt   time.Time
}

// OrderItem guarda o preço unitário capturado na compra
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal do item ao preço da compra
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewOrderFromCart captura os preços atuais dos produtos do carrinho.
// O carrinho precisa vir com os produtos populados.
func NewOrderFromCart(cart *Cart, now time.Time) (*Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, errors.ErrEmptyCart
	}

	order := &Order{
		UserID:      cart.UserID,
		Items:       make([]OrderItem, 0, len(cart.Items)),
		Total:       decimal.Zero,
		Status:      OrderStatusPending,
		CheckoutKey: cart.CheckoutKey(),
		CreatedAt:   now,
	}

	for _, line := range cart.Items {
		if line.Product == nil {
			return nil, errors.ErrProductNotFound
		}
		if line.Quantity <= 0 {
			return nil, errors.ErrInvalidQuantity
		}

		item := OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.Price,
		}
		order.Items = append(order.Items, item)
		order.Total = order.Total.Add(item.Subtotal())
	}

	return order, nil
}
