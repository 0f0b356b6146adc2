package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainerrors "github.com/rafabene/loja-backend/internal/domain/errors"
)

func TestNewOrderFromCart(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("captura preço unitário e soma o total", func(t *testing.T) {
		p1 := &Product{ID: "p1", Name: "Brigadeiro", Price: decimal.RequireFromString("10.00")}
		p2 := &Product{ID: "p2", Name: "Beijinho", Price: decimal.RequireFromString("5.00")}
		cart := &Cart{
			ID:      "c1",
			UserID:  "u1",
			Version: 3,
			Items: []CartItem{
				{ProductID: "p1", Product: p1, Quantity: 2},
				{ProductID: "p2", Product: p2, Quantity: 1},
			},
		}

		order, err := NewOrderFromCart(cart, now)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		if !order.Total.Equal(decimal.RequireFromString("25.00")) {
			t.Errorf("esperava total 25.00, obteve %s", order.Total)
		}
		if len(order.Items) != 2 {
			t.Fatalf("esperava 2 itens, obteve %d", len(order.Items))
		}
		if !order.Items[0].UnitPrice.Equal(p1.Price) || !order.Items[1].UnitPrice.Equal(p2.Price) {
			t.Errorf("preços unitários não capturados: %+v", order.Items)
		}
		if order.Status != OrderStatusPending {
			t.Errorf("esperava status %s, obteve %s", OrderStatusPending, order.Status)
		}
		if order.CheckoutKey != "c1:3" {
			t.Errorf("esperava chave c1:3, obteve %s", order.CheckoutKey)
		}

		// alteração posterior de preço não afeta o pedido
		p1.Price = decimal.RequireFromString("99.90")
		if !order.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.00")) {
			t.Errorf("preço do pedido mudou para %s", order.Items[0].UnitPrice)
		}
	})

	t.Run("carrinho vazio", func(t *testing.T) {
		_, err := NewOrderFromCart(&Cart{ID: "c1", UserID: "u1"}, now)
		if !errors.Is(err, domainerrors.ErrEmptyCart) {
			t.Errorf("esperava ErrEmptyCart, obteve %v", err)
		}
	})

	t.Run("produto ausente", func(t *testing.T) {
		cart := &Cart{ID: "c1", UserID: "u1", Items: []CartItem{{ProductID: "p1", Quantity: 1}}}
		_, err := NewOrderFromCart(cart, now)
		if !errors.Is(err, domainerrors.ErrProductNotFound) {
			t.Errorf("esperava ErrProductNotFound, obteve %v", err)
		}
	})
}

func TestProductValidate(t *testing.T) {
	t.Run("preço zero é inválido", func(t *testing.T) {
		p := &Product{Name: "X", Price: decimal.Zero, Description: "d", ImageURL: "i.png"}
		err := p.Validate()
		if !errors.Is(err, domainerrors.ErrInvalidPrice) {
			t.Errorf("esperava ErrInvalidPrice, obteve %v", err)
		}
		if !errors.Is(err, domainerrors.ErrValidation) {
			t.Errorf("esperava ErrValidation, obteve %v", err)
		}
	})

	t.Run("preço com mais de duas casas decimais", func(t *testing.T) {
		for _, price := range []string{"0.001", "10.005"} {
			p := &Product{Name: "X", Price: decimal.RequireFromString(price), Description: "d", ImageURL: "i.png"}
			if err := p.Validate(); !errors.Is(err, domainerrors.ErrPricePrecision) {
				t.Errorf("%s: esperava ErrPricePrecision, obteve %v", price, err)
			}
		}
	})

	t.Run("zeros à direita não contam como casas decimais", func(t *testing.T) {
		p := &Product{Name: "X", Price: decimal.RequireFromString("10.500"), Description: "d", ImageURL: "i.png"}
		if err := p.Validate(); err != nil {
			t.Errorf("erro inesperado: %v", err)
		}
	})

	t.Run("preço acima do limite da coluna", func(t *testing.T) {
		p := &Product{Name: "X", Price: MaxPrice, Description: "d", ImageURL: "i.png"}
		if err := p.Validate(); !errors.Is(err, domainerrors.ErrPriceTooHigh) {
			t.Errorf("esperava ErrPriceTooHigh, obteve %v", err)
		}

		p.Price = decimal.RequireFromString("9999999999.99")
		if err := p.Validate(); err != nil {
			t.Errorf("erro inesperado: %v", err)
		}
	})

	t.Run("produto completo é válido", func(t *testing.T) {
		p := &Product{Name: "X", Price: decimal.NewFromInt(1), Description: "d", ImageURL: "i.png"}
		if err := p.Validate(); err != nil {
			t.Errorf("erro inesperado: %v", err)
		}
	})
}
