package ports

import "time"

// TokenClaims é o conteúdo verificado de um token de acesso
type TokenClaims struct {
	UserID    string
	IsAdmin   bool
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Remaining retorna quanto falta para o token expirar
func (c TokenClaims) Remaining(now time.Time) time.Duration {
	if d := c.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// TokenIssuer emite e verifica tokens assinados
type TokenIssuer interface {
	Issue(userID string, isAdmin bool) (string, error)
	Verify(token string) (*TokenClaims, error)
}
