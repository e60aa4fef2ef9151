package mw

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiters stores a rate limiter per client key.
type clientLimiters struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	r       rate.Limit
	b       int
}

func (cl *clientLimiters) get(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	limiter, ok := cl.clients[key]
	if !ok {
		limiter = rate.NewLimiter(cl.r, cl.b)
		cl.clients[key] = limiter
	}
	return limiter
}

// RateLimiter limits requests per client IP. When ipHeader is non-empty the
// client address is taken from that header (for deployments behind a proxy),
// otherwise from the connection.
func RateLimiter(r rate.Limit, burst int, ipHeader string) gin.HandlerFunc {
	limiters := &clientLimiters{
		clients: make(map[string]*rate.Limiter),
		r:       r,
		b:       burst,
	}

	return func(c *gin.Context) {
		key := ""
		if ipHeader != "" {
			key = c.GetHeader(ipHeader)
		}
		if key == "" {
			key = c.ClientIP()
		}

		if !limiters.get(key).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
