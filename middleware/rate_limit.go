package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/Artur-creator-1/blogapp/config"
)

const clientTTL = 5 * time.Minute

// limiterPool keeps a token bucket per client IP. Entries not seen for
// clientTTL are dropped on the next lookup.
type limiterPool struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
}

type client struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

func newLimiterPool(perMinute int) *limiterPool {
	if perMinute < 1 {
		perMinute = 1
	}
	burst := perMinute / 2
	if burst < 1 {
		burst = 1
	}
	return &limiterPool{
		clients: map[string]*client{},
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   burst,
	}
}

func (p *limiterPool) allow(ip string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	for key, c := range p.clients {
		if now.Sub(c.lastSeen) > clientTTL {
			delete(p.clients, key)
		}
	}

	c, ok := p.clients[ip]
	if !ok {
		c = &client{bucket: rate.NewLimiter(p.limit, p.burst)}
		p.clients[ip] = c
	}
	c.lastSeen = now
	return c.bucket.Allow()
}

// RateLimitMiddleware throttles requests per client IP using the
// configured per-minute budget.
func RateLimitMiddleware() gin.HandlerFunc {
	pool := newLimiterPool(config.Get().RateLimitPerMinute)

	return func(ctx *gin.Context) {
		if !pool.allow(ctx.ClientIP()) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Rate limit exceeded",
			})
			return
		}
		ctx.Next()
	}
}
