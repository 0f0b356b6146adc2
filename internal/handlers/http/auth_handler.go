package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
	"github.com/rafabene/loja-backend/internal/handlers/middleware"
	"github.com/rafabene/loja-backend/internal/services"
)

// AuthHandler lida com cadastro, login e sessão
type AuthHandler struct {
	authService *services.AuthService
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register cadastra um cliente e devolve o token
//
//	@Summary		Cadastra um cliente
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RegisterRequest	true	"Dados do cliente"
//	@Success		200		{object}	dto.AuthResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("registration with invalid data")
		dto.AbortWithBindingError(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Nome,
		Email:    req.Email,
		Password: req.Senha,
		Phone:    req.Telefone,
		CPF:      req.CPF,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: result.Token, IsAdmin: result.User.IsAdmin})
}

// Login autentica por email e senha
//
//	@Summary		Login
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.LoginRequest	true	"Credenciais"
//	@Success		200		{object}	dto.AuthResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: result.Token, IsAdmin: result.User.IsAdmin})
}

// Verify confirma o token atual
//
//	@Summary		Verifica o token
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.VerifyResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	user := middleware.CurrentUser(c)
	h.logger.Info("token verified", "email", user.Email.String())

	c.JSON(http.StatusOK, dto.VerifyResponse{IsValid: true, IsAdmin: user.IsAdmin})
}

// Logout encerra a sessão revogando o token
//
//	@Summary		Logout
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MessageResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.CurrentUser(c), middleware.CurrentClaims(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "auth.logout")})
}
