package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDenylistOptions configura a denylist em Redis
type RedisDenylistOptions struct {
	// URL de conexão (ex.: redis://localhost:6379/0)
	URL string

	// Prefix é adicionado a todas as chaves
	Prefix string

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// DefaultRedisDenylistOptions retorna valores padrão
func DefaultRedisDenylistOptions() RedisDenylistOptions {
	return RedisDenylistOptions{
		Prefix:         "loja:revoked:",
		ConnectTimeout: 5 * time.Second,
		ReadTimeout:    3 * time.Second,
		WriteTimeout:   3 * time.Second,
	}
}

// RedisDenylist compartilha tokens revogados entre instâncias; o TTL do Redis expira as chaves
type RedisDenylist struct {
	client *redis.Client
	prefix string
}

// NewRedisDenylist conecta ao Redis e valida a conexão
func NewRedisDenylist(ctx context.Context, opts RedisDenylistOptions) (*RedisDenylist, error) {
	if opts.URL == "" {
		return nil, errors.New("redis URL is required")
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, err
	}
	if opts.ConnectTimeout > 0 {
		redisOpts.DialTimeout = opts.ConnectTimeout
	}
	if opts.ReadTimeout > 0 {
		redisOpts.ReadTimeout = opts.ReadTimeout
	}
	if opts.WriteTimeout > 0 {
		redisOpts.WriteTimeout = opts.WriteTimeout
	}

	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisDenylist{client: client, prefix: opts.Prefix}, nil
}

func (d *RedisDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, d.prefix+tokenID, 1, ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.prefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close fecha a conexão
func (d *RedisDenylist) Close() error {
	return d.client.Close()
}
