package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
	"github.com/rafabene/loja-backend/internal/handlers/middleware"
	"github.com/rafabene/loja-backend/internal/services"
)

// OrderHandler lida com checkout, histórico e gestão de pedidos
type OrderHandler struct {
	orderService *services.OrderService
	logger       ports.Logger
}

// NewOrderHandler cria um novo OrderHandler
func NewOrderHandler(orderService *services.OrderService, logger ports.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// Checkout transforma o carrinho em pedido
//
//	@Summary		Finaliza a compra
//	@Tags			pedidos
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderResponse
//	@Failure		400	{object}	dto.ErrorResponse
//	@Router			/pedidos [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	order, err := h.orderService.Checkout(c.Request.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// ListMyOrders devolve o histórico do usuário
//
//	@Summary		Meus pedidos
//	@Tags			pedidos
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	dto.OrderResponse
//	@Router			/pedidos [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	orders, err := h.orderService.ListForUser(c.Request.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponses(orders))
}

// GetOrder busca um pedido do usuário; admins veem qualquer pedido
//
//	@Summary		Busca um pedido
//	@Tags			pedidos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do pedido"
//	@Success		200	{object}	dto.OrderResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/pedidos/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// ListOrders é a listagem administrativa
//
//	@Summary		Lista pedidos
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pagina			query		int		false	"Página"
//	@Param			itensPorPagina	query		int		false	"Itens por página"
//	@Param			ordenacao		query		string	false	"dataPedido, total ou status"
//	@Param			status			query		string	false	"Filtra pelo status"
//	@Success		200				{object}	dto.OrderListResponse
//	@Router			/admin/pedidos [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var params dto.OrderQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	page, err := h.orderService.ListOrders(c.Request.Context(), repositories.OrderFilters{
		ListQuery: params.ToListQuery(),
		Status:    params.Status,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderListResponse(page))
}

// UpdateStatus altera o status de um pedido
//
//	@Summary		Altera status
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"ID do pedido"
//	@Param			body	body		dto.UpdateOrderStatusRequest	true	"Novo status"
//	@Success		200		{object}	dto.OrderResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/admin/pedidos/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
