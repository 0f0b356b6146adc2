package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
	"github.com/rafabene/loja-backend/internal/handlers/middleware"
	"github.com/rafabene/loja-backend/internal/services"
)

// LogHandler recebe logs do frontend
type LogHandler struct {
	logService *services.ClientLogService
	logger     ports.Logger
}

// NewLogHandler cria um novo LogHandler
func NewLogHandler(logService *services.ClientLogService, logger ports.Logger) *LogHandler {
	return &LogHandler{
		logService: logService,
		logger:     logger,
	}
}

// SaveLogs grava um lote de logs do cliente
//
//	@Summary		Envia logs do frontend
//	@Tags			logs
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			body	body		dto.ClientLogRequest	true	"Lote de logs (máximo 500)"
//	@Success		200		{object}	dto.MessageResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/logs [post]
func (h *LogHandler) SaveLogs(c *gin.Context) {
	var req dto.ClientLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.AbortWithBindingError(c, err)
		return
	}

	if _, err := h.logService.Record(c.Request.Context(), middleware.CurrentUser(c), req.ToEntries()); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "logs.saved")})
}
