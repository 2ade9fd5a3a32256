package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// Rate limit tiers.
const (
	// checkout / auth endpoints
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// everything else
	limitGeneral = rate.Limit(10)
	burstGeneral = 20
)

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

func init() {
	go cleanupVisitors()
}

// getVisitor retrieves or creates a rate limiter for the given bucket key.
func getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors removes stale entries so the map does not grow unbounded.
func cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		mu.Lock()
		for key, v := range visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(visitors, key)
			}
		}
		mu.Unlock()
	}
}

// RateLimit returns a Fiber middleware enforcing a per-client token bucket.
// Checkout and auth endpoints get the strict tier; clients are keyed by IP.
func RateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, burst, tier := limitGeneral, burstGeneral, "general"
		if c.Method() == fiber.MethodPost && (c.Path() == "/api/orders" || c.Path() == "/api/users/login" || c.Path() == "/api/users/register") {
			limit, burst, tier = limitStrict, burstStrict, "strict"
		}

		key := "ip:" + c.IP() + ":" + tier
		if !getVisitor(key, limit, burst).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"detail": "too many requests"})
		}
		return c.Next()
	}
}
