package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// contentSecurityPolicy libera inline e origens http(s) usados pelo frontend da loja
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"img-src 'self' data: https: http:",
	"script-src 'self' 'unsafe-inline' 'unsafe-eval' https: http:",
	"style-src 'self' 'unsafe-inline' https: http:",
	"font-src 'self' https: http:",
	"connect-src 'self' https: http:",
}, "; ")

// SecurityHeaders aplica os headers de segurança em todas as respostas
func SecurityHeaders(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		h.Set("X-DNS-Prefetch-Control", "off")
		if production {
			h.Set("Strict-Transport-Security", "max-age=15552000; includeSubDomains")
		}

		c.Next()
	}
}
