package dto

import (
	"github.com/shopspring/decimal"

	"github.com/rafabene/loja-backend/internal/domain/entities"
)

// AddCartItemRequest adiciona um produto ao carrinho
type AddCartItemRequest struct {
	ProdutoID  string `json:"produtoId" binding:"required"`
	Quantidade int    `json:"quantidade"`
}

// SetQuantityRequest troca a quantidade de um item
type SetQuantityRequest struct {
	Quantidade int `json:"quantidade"`
}

// CartLineResponse é uma linha do carrinho a preço atual
type CartLineResponse struct {
	Produto    ProductResponse `json:"produto"`
	Quantidade int             `json:"quantidade"`
	Subtotal   decimal.Decimal `json:"subtotal" swaggertype:"number"`
}

// CartResponse representa o carrinho do usuário
type CartResponse struct {
	ID       string             `json:"id"`
	Usuario  string             `json:"usuario"`
	Produtos []CartLineResponse `json:"produtos"`
	Total    decimal.Decimal    `json:"total" swaggertype:"number"`
}

// ToCartResponse converte o carrinho; linhas sem produto são omitidas
func ToCartResponse(cart *entities.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product == nil {
			continue
		}
		lines = append(lines, CartLineResponse{
			Produto:    ToProductResponse(item.Product),
			Quantidade: item.Quantity,
			Subtotal:   item.Subtotal(),
		})
	}

	return CartResponse{
		ID:       cart.ID,
		Usuario:  cart.UserID,
		Produtos: lines,
		Total:    cart.Total(),
	}
}
