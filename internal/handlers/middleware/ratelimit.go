package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
)

// RateLimitObserver é notificado a cada requisição recusada
type RateLimitObserver interface {
	ObserveRateLimited()
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limita requisições por IP: no máximo requests por window
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	window   time.Duration
	observer RateLimitObserver
	logger   ports.Logger
	now      func() time.Time
}

// NewRateLimiter cria um limitador; observer pode ser nil
func NewRateLimiter(requests int, window time.Duration, observer RateLimitObserver, logger ports.Logger) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(requests) / window.Seconds()),
		burst:    requests,
		window:   window,
		observer: observer,
		logger:   logger,
		now:      time.Now,
	}
}

// Middleware recusa com 429 quando o IP esgota a cota
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := l.now()

		reservation := l.get(ip, now).ReserveN(now, 1)
		if delay := reservation.DelayFrom(now); delay > 0 {
			reservation.CancelAt(now)

			if l.observer != nil {
				l.observer.ObserveRateLimited()
			}
			l.logger.Warn("rate limit exceeded", "ip", ip, "path", c.Request.URL.Path)

			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			dto.Abort(c, dto.RateLimitedErrorResponseI18n(c))
			return
		}

		c.Next()
	}
}

// Sweep descarta IPs sem acesso há mais de uma janela e retorna quantos saíram
func (l *RateLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	removed := 0
	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
			removed++
		}
	}
	return removed
}

func (l *RateLimiter) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}
