package middleware

import (
	"context"
	errs "errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
)

const (
	// UserContextKey guarda o usuário autenticado no contexto do Gin
	UserContextKey = "user"
	// ClaimsContextKey guarda as claims do token da requisição
	ClaimsContextKey = "token_claims"

	legacyTokenHeader = "x-auth-token"
)

// Authenticator resolve um token para o usuário atual
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entities.User, *ports.TokenClaims, error)
}

// AuthMiddleware protege as rotas que exigem login ou admin
type AuthMiddleware struct {
	auth   Authenticator
	logger ports.Logger
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(auth Authenticator, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		auth:   auth,
		logger: logger,
	}
}

// Authenticate exige um token válido em Authorization: Bearer ou x-auth-token
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return m.authenticate(false)
}

// AuthenticateWebSocket aceita também ?token=, já que browsers não enviam headers no upgrade
func (m *AuthMiddleware) AuthenticateWebSocket() gin.HandlerFunc {
	return m.authenticate(true)
}

func (m *AuthMiddleware) authenticate(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c, allowQuery)

		user, claims, err := m.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errs.Is(err, errors.ErrNoToken):
				m.logger.Warn("access without token", "path", c.Request.URL.Path)
				dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, errors.ErrNoToken.Error()))
			case errs.Is(err, errors.ErrInvalidToken):
				m.logger.Warn("access with invalid token", "path", c.Request.URL.Path, "error", err)
				dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, errors.ErrInvalidToken.Error()))
			case errs.Is(err, errors.ErrUserNotFound):
				m.logger.Warn("access with token of unknown user", "path", c.Request.URL.Path)
				dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, errors.ErrUserNotFound.Error()))
			default:
				m.logger.Error("failed to authenticate", "error", err)
				dto.Abort(c, dto.InternalErrorResponseI18n(c))
			}
			return
		}

		c.Set(UserContextKey, user)
		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// RequireAdmin deve vir depois de Authenticate
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			email := "desconhecido"
			if user != nil {
				email = user.Email.String()
			}
			m.logger.Warn("unauthorized admin access attempt", "email", email, "path", c.Request.URL.Path)
			dto.Abort(c, dto.ForbiddenErrorResponseI18n(c))
			return
		}

		c.Next()
	}
}

// CurrentUser retorna o usuário autenticado ou nil
func CurrentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil
	}
	user, _ := value.(*entities.User)
	return user
}

// CurrentClaims retorna as claims do token da requisição ou nil
func CurrentClaims(c *gin.Context) *ports.TokenClaims {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil
	}
	claims, _ := value.(*ports.TokenClaims)
	return claims
}

func tokenFromRequest(c *gin.Context, allowQuery bool) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}

	if token := c.GetHeader(legacyTokenHeader); token != "" {
		return strings.TrimSpace(token)
	}

	if allowQuery {
		return c.Query("token")
	}
	return ""
}
