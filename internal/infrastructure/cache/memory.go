package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryDenylist guarda jti revogados em memória; serve a uma única instância
type MemoryDenylist struct {
	mu      sync.RWMutex
	entries map[string]time.Time // jti -> expiração
	now     func() time.Time
}

// NewMemoryDenylist cria uma denylist vazia
func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{entries: make(map[string]time.Time), now: time.Now}
}

func (d *MemoryDenylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	d.mu.Lock()
	d.entries[tokenID] = d.now().Add(ttl)
	d.mu.Unlock()
	return nil
}

func (d *MemoryDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	d.mu.RLock()
	expiresAt, ok := d.entries[tokenID]
	d.mu.RUnlock()

	return ok && d.now().Before(expiresAt), nil
}

// Sweep remove entradas expiradas e retorna quantas saíram
func (d *MemoryDenylist) Sweep() int {
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()

	removed := 0
	for id, expiresAt := range d.entries {
		if !now.Before(expiresAt) {
			delete(d.entries, id)
			removed++
		}
	}
	return removed
}

// Len retorna o número de entradas guardadas
func (d *MemoryDenylist) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}
