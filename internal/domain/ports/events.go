package ports

import (
	"context"
	"time"
)

// Tipos de evento publicados pelos serviços
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventContactCreated     = "contact.created"
	EventUserRegistered     = "user.registered"
)

// Event é um fato de domínio já consolidado
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// EventPublisher entrega eventos a consumidores externos
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
