package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/services"
)

// OrderLineResponse é uma linha do pedido com o preço da compra
type OrderLineResponse struct {
	Produto       string          `json:"produto"`
	Nome          string          `json:"nome"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"precoUnitario" swaggertype:"number"`
	Subtotal      decimal.Decimal `json:"subtotal" swaggertype:"number"`
}

// OrderResponse representa um pedido
type OrderResponse struct {
	ID         string              `json:"id"`
	Usuario    string              `json:"usuario"`
	Produtos   []OrderLineResponse `json:"produtos"`
	Total      decimal.Decimal     `json:"total" swaggertype:"number"`
	Status     string              `json:"status"`
	DataPedido time.Time           `json:"dataPedido"`
}

// OrderListResponse é uma página da listagem administrativa
type OrderListResponse struct {
	Pedidos      []OrderResponse `json:"pedidos"`
	TotalPaginas int             `json:"totalPaginas"`
	PaginaAtual  int             `json:"paginaAtual"`
	Total        int64           `json:"total"`
}

// UpdateOrderStatusRequest altera o status de um pedido
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,max=50"`
}

// ToOrderResponse converte uma entidade Order
func ToOrderResponse(order *entities.Order) OrderResponse {
	lines := make([]OrderLineResponse, len(order.Items))
	for i, item := range order.Items {
		lines[i] = OrderLineResponse{
			Produto:       item.ProductID,
			Nome:          item.ProductName,
			Quantidade:    item.Quantity,
			PrecoUnitario: item.UnitPrice,
			Subtotal:      item.Subtotal(),
		}
	}

	return OrderResponse{
		ID:         order.ID,
		Usuario:    order.UserID,
		Produtos:   lines,
		Total:      order.Total,
		Status:     order.Status,
		DataPedido: order.CreatedAt,
	}
}

// ToOrderResponses converte uma lista de pedidos
func ToOrderResponses(orders []*entities.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = ToOrderResponse(order)
	}
	return responses
}

// ToOrderListResponse monta a página de pedidos
func ToOrderListResponse(page *services.Page[*entities.Order]) OrderListResponse {
	return OrderListResponse{
		Pedidos:      ToOrderResponses(page.Items),
		TotalPaginas: page.TotalPages,
		PaginaAtual:  page.CurrentPage,
		Total:        page.Total,
	}
}
