package events

import (
	"context"
	"time"

	"github.com/rafabene/loja-backend/internal/domain/ports"
)

// Fanout entrega cada evento a todos os publishers.
// Falhas são registradas e nunca voltam para quem publicou.
type Fanout struct {
	publishers []ports.EventPublisher
	log        ports.Logger
	now        func() time.Time
}

// NewFanout cria um Fanout; publishers nil são ignorados
func NewFanout(log ports.Logger, publishers ...ports.EventPublisher) *Fanout {
	f := &Fanout{log: log, now: time.Now}
	for _, p := range publishers {
		if p != nil {
			f.publishers = append(f.publishers, p)
		}
	}
	return f
}

func (f *Fanout) Publish(ctx context.Context, event ports.Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = f.now().UTC()
	}

	for _, p := range f.publishers {
		if err := p.Publish(ctx, event); err != nil {
			f.log.Error("failed to publish event", "type", event.Type, "error", err)
		}
	}
	return nil
}
