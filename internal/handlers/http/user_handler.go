package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
	"github.com/rafabene/loja-backend/internal/services"
)

// UserHandler lida com a gestão administrativa de usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers lista usuários com busca por nome ou email
//
//	@Summary		Lista usuários
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			pagina			query		int		false	"Página"
//	@Param			itensPorPagina	query		int		false	"Itens por página"
//	@Param			busca			query		string	false	"Busca em nome e email"
//	@Param			ordenacao		query		string	false	"nome, email, dataCriacao, ultimoLogin ou isAdmin"
//	@Success		200				{object}	dto.UserListResponse
//	@Failure		400				{object}	dto.ErrorResponse
//	@Router			/admin/usuarios [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var params dto.ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	page, err := h.userService.ListUsers(c.Request.Context(), params.ToListQuery())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(page))
}

// GetUser busca um usuário por ID
//
//	@Summary		Busca usuário
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do usuário"
//	@Success		200	{object}	dto.UserResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/admin/usuarios/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateUser edita dados e papel de um usuário
//
//	@Summary		Edita usuário
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"ID do usuário"
//	@Param			body	body		dto.UpdateUserRequest	true	"Campos alterados"
//	@Success		200		{object}	dto.UserResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/admin/usuarios/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove um usuário
//
//	@Summary		Remove usuário
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do usuário"
//	@Success		200	{object}	dto.MessageResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/admin/usuarios/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "user.deleted")})
}
