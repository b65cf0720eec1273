// Package middleware provides gin middleware for the hub's HTTP
// surface: rate limiting and request metrics.
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jjohnson-47/blackboard-content-hub-dev-sub001/internal/infrastructure/monitoring"
)

// RateLimit enforces a per-client token bucket. Limiters are kept per
// remote IP; idle entries are dropped lazily on sweep.
func RateLimit(rps, burst int) gin.HandlerFunc {
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	sweep := func(now time.Time) {
		for ip, c := range clients {
			if now.Sub(c.lastSeen) > 3*time.Minute {
				delete(clients, ip)
			}
		}
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		entry, ok := clients[ip]
		if !ok {
			entry = &client{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			clients[ip] = entry
			if len(clients)%256 == 0 {
				sweep(now)
			}
		}
		entry.lastSeen = now
		mu.Unlock()

		if !entry.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// Metrics records request counts and latency per route.
func Metrics(m *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
