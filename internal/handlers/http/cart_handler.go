package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
	"github.com/rafabene/loja-backend/internal/handlers/middleware"
	"github.com/rafabene/loja-backend/internal/services"
)

// CartHandler lida com o carrinho do usuário autenticado
type CartHandler struct {
	cartService *services.CartService
	logger      ports.Logger
}

// NewCartHandler cria um novo CartHandler
func NewCartHandler(cartService *services.CartService, logger ports.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// GetCart devolve o carrinho com subtotais a preço atual
//
//	@Summary		Carrinho atual
//	@Tags			carrinho
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CartResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/carrinho [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Request.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// AddItem adiciona um produto; repetir o produto soma a quantidade
//
//	@Summary		Adiciona item
//	@Tags			carrinho
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		dto.AddCartItemRequest	true	"Produto e quantidade"
//	@Success		200		{object}	dto.CartResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/carrinho [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	cart, err := h.cartService.AddItem(c.Request.Context(), user.ID, req.ProdutoID, req.Quantidade)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("item added to cart", "email", user.Email.String())
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// SetQuantity troca a quantidade de um item
//
//	@Summary		Atualiza quantidade
//	@Tags			carrinho
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			produtoId	path		string					true	"ID do produto"
//	@Param			body		body		dto.SetQuantityRequest	true	"Nova quantidade"
//	@Success		200			{object}	dto.CartResponse
//	@Failure		400			{object}	dto.ErrorResponse
//	@Failure		404			{object}	dto.ErrorResponse
//	@Router			/carrinho/{produtoId} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req dto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	cart, err := h.cartService.SetQuantity(c.Request.Context(), middleware.CurrentUser(c).ID, c.Param("produtoId"), req.Quantidade)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// RemoveItem tira o produto do carrinho
//
//	@Summary		Remove item
//	@Tags			carrinho
//	@Produce		json
//	@Security		BearerAuth
//	@Param			produtoId	path		string	true	"ID do produto"
//	@Success		200			{object}	dto.CartResponse
//	@Router			/carrinho/{produtoId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.cartService.RemoveItem(c.Request.Context(), middleware.CurrentUser(c).ID, c.Param("produtoId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}
