package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerrors "github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
)

// DefaultAccessExpiry é a validade padrão do token de acesso
const DefaultAccessExpiry = time.Hour

type claims struct {
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// JWTService implementa ports.TokenIssuer com HS256
type JWTService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// JWTOption ajusta o JWTService
type JWTOption func(*JWTService)

// WithClock substitui o relógio usado para emitir e validar tokens
func WithClock(now func() time.Time) JWTOption {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewJWTService cria um novo JWTService
func NewJWTService(secret string, expiry time.Duration, opts ...JWTOption) (*JWTService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if expiry <= 0 {
		expiry = DefaultAccessExpiry
	}

	s := &JWTService{secret: []byte(secret), expiry: expiry, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue emite um token com sub, isAdmin, iat, exp e jti
func (s *JWTService) Issue(userID string, isAdmin bool) (string, error) {
	now := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	})

	return token.SignedString(s.secret)
}

// Verify valida assinatura, algoritmo e expiração.
// Qualquer falha vira ErrInvalidToken.
func (s *JWTService) Verify(tokenString string) (*ports.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Join(domainerrors.ErrInvalidToken, err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Subject == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	result := &ports.TokenClaims{
		UserID:    c.Subject,
		IsAdmin:   c.IsAdmin,
		TokenID:   c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}
	if c.IssuedAt != nil {
		result.IssuedAt = c.IssuedAt.Time
	}

	return result, nil
}
