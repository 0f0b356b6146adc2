package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
)

// Recovery transforma panics em 500 genérico; o detalhe fica só no log
func Recovery(logger ports.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		dto.Abort(c, dto.InternalErrorResponseI18n(c))
	})
}
