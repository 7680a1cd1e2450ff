// Package ratelimit provides per-client request limiting for the API.
package ratelimit

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxClients bounds the per-client limiter map; when exceeded the map is
// reset rather than evicted piecemeal, which at worst briefly refills a few
// buckets.
const maxClients = 10000

// ClientLimiter hands out a token bucket per client IP.
type ClientLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// PerMinute creates a limiter allowing n requests per minute per client.
func PerMinute(n int) *ClientLimiter {
	return &ClientLimiter{
		clients: make(map[string]*rate.Limiter),
		limit:   rate.Limit(float64(n) / 60.0),
		burst:   n,
	}
}

// Allow reports whether the client may proceed.
func (cl *ClientLimiter) Allow(client string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if len(cl.clients) >= maxClients {
		cl.clients = make(map[string]*rate.Limiter)
	}
	limiter, ok := cl.clients[client]
	if !ok {
		limiter = rate.NewLimiter(cl.limit, cl.burst)
		cl.clients[client] = limiter
	}
	return limiter.Allow()
}

// Middleware rejects over-limit requests with 429.
func (cl *ClientLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
