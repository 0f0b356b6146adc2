package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/infrastructure/events"
)

// EventsHandler conecta administradores ao feed ao vivo
type EventsHandler struct {
	hub    *events.Hub
	logger ports.Logger
}

// NewEventsHandler cria um novo EventsHandler
func NewEventsHandler(hub *events.Hub, logger ports.Logger) *EventsHandler {
	return &EventsHandler{hub: hub, logger: logger}
}

// Stream faz o upgrade para websocket. Aceita o token em ?token= pois
// navegadores não enviam cabeçalhos no handshake.
//
//	@Summary		Feed de eventos (websocket)
//	@Tags			admin
//	@Security		BearerAuth
//	@Param			token	query	string	false	"Token JWT"
//	@Success		101
//	@Router			/admin/eventos [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	if err := h.hub.ServeWS(c.Writer, c.Request); err != nil {
		// o upgrader já respondeu ao cliente
		h.logger.Warn("websocket upgrade failed", "error", err)
	}
}
