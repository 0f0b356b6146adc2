package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
	"github.com/rafabene/loja-backend/internal/services"
)

// ProductHandler lida com o catálogo
type ProductHandler struct {
	productService *services.ProductService
	logger         ports.Logger
}

// NewProductHandler cria um novo ProductHandler
func NewProductHandler(productService *services.ProductService, logger ports.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// ListProducts lista o catálogo paginado
//
//	@Summary		Lista produtos
//	@Tags			produtos
//	@Produce		json
//	@Param			pagina			query		int		false	"Página (padrão 1)"
//	@Param			itensPorPagina	query		int		false	"Itens por página (padrão 10, máximo 100)"
//	@Param			busca			query		string	false	"Busca no nome"
//	@Param			ordenacao		query		string	false	"nome, preco ou dataCriacao; prefixo - inverte"
//	@Success		200				{object}	dto.ProductListResponse
//	@Failure		400				{object}	dto.ErrorResponse
//	@Router			/produtos [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var params dto.ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	page, err := h.productService.ListProducts(c.Request.Context(), params.ToListQuery())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("products listed", "page", page.CurrentPage, "search", params.Busca, "sort", params.Ordenacao)
	c.JSON(http.StatusOK, dto.ToProductListResponse(page))
}

// GetProduct busca um produto
//
//	@Summary		Busca um produto
//	@Tags			produtos
//	@Produce		json
//	@Param			id	path		string	true	"ID do produto"
//	@Success		200	{object}	dto.ProductResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/produtos/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// CreateProduct cadastra um produto
//
//	@Summary		Cria um produto
//	@Tags			produtos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		dto.CreateProductRequest	true	"Produto"
//	@Success		201		{object}	dto.ProductResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		403		{object}	dto.ErrorResponse
//	@Router			/produtos [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// UpdateProduct edita um produto
//
//	@Summary		Edita um produto
//	@Tags			produtos
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"ID do produto"
//	@Param			body	body		dto.UpdateProductRequest	true	"Campos alterados"
//	@Success		200		{object}	dto.ProductResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/produtos/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// DeleteProduct remove um produto
//
//	@Summary		Remove um produto
//	@Tags			produtos
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do produto"
//	@Success		200	{object}	dto.MessageResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/produtos/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "product.deleted")})
}
