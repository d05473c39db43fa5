package http

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"notion-share-sync/pkg/response"
)

// GuardConfig restricts who may hit the trigger and how often.
type GuardConfig struct {
	AllowedIPs      []string // exact IPs or CIDR ranges; empty allows any
	RateLimitPerMin int      // per client IP; 0 disables
}

// Guard validates trigger requests.
type Guard struct {
	config      GuardConfig
	rateLimiter *rateLimiter
}

func NewGuard(config GuardConfig) *Guard {
	g := &Guard{config: config}
	if config.RateLimitPerMin > 0 {
		g.rateLimiter = newRateLimiter(config.RateLimitPerMin)
	}
	return g
}

// Middleware rejects requests from non-allowlisted IPs (403) or over the rate limit (429).
func (g *Guard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// ClientIP honours forwarding headers only from the engine's trusted proxies.
		ip := c.ClientIP()

		if err := g.ValidateIPAddress(ip); err != nil {
			response.Forbidden(c)
			return
		}
		if err := g.CheckRateLimit(ip); err != nil {
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// ValidateIPAddress checks if ip is allowlisted.
func (g *Guard) ValidateIPAddress(ip string) error {
	if len(g.config.AllowedIPs) == 0 {
		return nil
	}

	for _, allowedIP := range g.config.AllowedIPs {
		if ip == allowedIP {
			return nil
		}

		if strings.Contains(allowedIP, "/") {
			_, ipNet, err := net.ParseCIDR(allowedIP)
			if err != nil {
				continue
			}
			if parsed := net.ParseIP(ip); parsed != nil && ipNet.Contains(parsed) {
				return nil
			}
		}
	}

	return fmt.Errorf("IP %s not allowlisted", ip)
}

// CheckRateLimit enforces the per-source rate limit.
func (g *Guard) CheckRateLimit(source string) error {
	if g.rateLimiter == nil {
		return nil
	}
	return g.rateLimiter.Allow(source)
}

// rateLimiter keeps one token bucket per source, evicting idle sources.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max unique sources
			nil,           // no eviction callback
			time.Minute*5, // idle TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
