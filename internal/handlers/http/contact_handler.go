package http

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
	"github.com/rafabene/loja-backend/internal/handlers/middleware"
	"github.com/rafabene/loja-backend/internal/services"
)

// ContactHandler lida com o formulário de contato e a caixa de mensagens
type ContactHandler struct {
	contactService *services.ContactService
	logger         ports.Logger
}

// NewContactHandler cria um novo ContactHandler
func NewContactHandler(contactService *services.ContactService, logger ports.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// CreateMessage recebe uma mensagem do site
//
//	@Summary		Envia mensagem de contato
//	@Tags			contato
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CreateMessageRequest	true	"Mensagem"
//	@Success		201		{object}	dto.MessageResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/contato [post]
func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	if _, err := h.contactService.CreateMessage(c.Request.Context(), req.ToInput()); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: dto.T(c, "message.sent")})
}

// ListMessages lista a caixa de mensagens
//
//	@Summary		Lista mensagens
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pagina			query		int		false	"Página"
//	@Param			itensPorPagina	query		int		false	"Itens por página"
//	@Param			ordenacao		query		string	false	"dataEnvio, nome, email ou respondida"
//	@Param			respondida		query		bool	false	"Filtra por respondida"
//	@Success		200				{object}	dto.MessageListResponse
//	@Router			/admin/mensagens [get]
func (h *ContactHandler) ListMessages(c *gin.Context) {
	var params dto.MessageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	page, err := h.contactService.ListMessages(c.Request.Context(), repositories.MessageFilters{
		ListQuery: params.ToListQuery(),
		Resolved:  params.Respondida,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageListResponse(page))
}

// GetMessage busca uma mensagem
//
//	@Summary		Busca mensagem
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID da mensagem"
//	@Success		200	{object}	dto.ContactMessageResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/admin/mensagens/{id} [get]
func (h *ContactHandler) GetMessage(c *gin.Context) {
	message, err := h.contactService.GetMessage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactMessageResponse(message))
}

// MarkResolved marca a mensagem como respondida; corpo vazio equivale a true
//
//	@Summary		Marca como respondida
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"ID da mensagem"
//	@Param			body	body		dto.MarkResolvedRequest	false	"Estado"
//	@Success		200		{object}	dto.ContactMessageResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/admin/mensagens/{id} [put]
func (h *ContactHandler) MarkResolved(c *gin.Context) {
	var req dto.MarkResolvedRequest
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		dto.AbortWithBindingError(c, err)
		return
	}

	message, err := h.contactService.MarkResolved(c.Request.Context(), c.Param("id"), req.Resolved())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("message marked by admin", "email", middleware.CurrentUser(c).Email.String())
	c.JSON(http.StatusOK, dto.ToContactMessageResponse(message))
}

// DeleteMessage remove uma mensagem
//
//	@Summary		Remove mensagem
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID da mensagem"
//	@Success		200	{object}	dto.MessageResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/admin/mensagens/{id} [delete]
func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	if err := h.contactService.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.deleted")})
}
