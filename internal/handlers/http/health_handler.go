package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
)

// Pinger é satisfeito por *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingerFunc adapta uma função a Pinger
type PingerFunc func(ctx context.Context) error

// PingContext chama f(ctx)
func (f PingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

// HealthResponse é o corpo das rotas de saúde
type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthHandler responde liveness e readiness
type HealthHandler struct {
	db      Pinger
	logger  ports.Logger
	timeout time.Duration
}

// NewHealthHandler cria um novo HealthHandler
func NewHealthHandler(db Pinger, logger ports.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		logger:  logger,
		timeout: 2 * time.Second,
	}
}

// Health responde sempre 200 enquanto o processo está de pé
//
//	@Summary		Liveness
//	@Tags			saude
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Message: dto.T(c, "health.ok"), Status: "ok"})
}

// Ready verifica o banco de dados
//
//	@Summary		Readiness
//	@Tags			saude
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse
//	@Router			/health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("readiness check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Message: dto.T(c, "health.unavailable"), Status: "unavailable"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Message: dto.T(c, "health.ok"), Status: "ok"})
}
