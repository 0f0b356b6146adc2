package services

import (
	"context"

	"github.com/rafabene/loja-backend/internal/domain/ports"
)

// publishEvent é chamado só depois da gravação confirmada; falhas apenas geram log
func publishEvent(ctx context.Context, events ports.EventPublisher, logger ports.Logger, eventType string, payload any) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, ports.Event{Type: eventType, Payload: payload}); err != nil {
		logger.Error("failed to publish event", "type", eventType, "error", err)
	}
}
