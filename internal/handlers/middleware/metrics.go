package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver registra métricas de cada requisição
type RequestObserver interface {
	RequestStarted() func(method, route string, status int, elapsed time.Duration)
}

// Metrics alimenta contadores e histogramas por rota.
// Rotas sem match ficam agrupadas para não explodir a cardinalidade.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		done := observer.RequestStarted()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		done(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
