package ports

import (
	"context"
	"time"
)

// PasswordHasher gera e compara hashes de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenDenylist guarda tokens revogados até a expiração natural
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
