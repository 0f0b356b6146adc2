package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaxItemQuantity limita a quantidade de um produto no carrinho
const MaxItemQuantity = 10000

// Cart é o carrinho de um usuário; existe no máximo um por usuário.
// Version muda a cada alteração dos itens.
type Cart struct {
	ID        string
	UserID    string
	Items     []CartItem
	Version   int64
	UpdatedAt time.Time
}

// CartItem é uma linha do carrinho. Product vem populado nas leituras.
type CartItem struct {
	ProductID string
	Product   *Product
	Quantity  int
}

// Subtotal usa o preço atual do produto
func (i CartItem) Subtotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsEmpty indica se o carrinho não tem itens
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total soma os subtotais a preços atuais
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount soma as quantidades de todas as linhas
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// QuantityOf devolve a quantidade do produto no carrinho, zero se ausente
func (c *Cart) QuantityOf(productID string) int {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// CheckoutKey identifica o conteúdo atual do carrinho para deduplicar pedidos
func (c *Cart) CheckoutKey() string {
	return fmt.Sprintf("%s:%d", c.ID, c.Version)
}
