package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the per-IP limiter table so a scanner cycling
// source addresses cannot grow it without limit.
const maxTrackedClients = 1024

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiterTable struct {
	mu      sync.Mutex
	rps     int
	burst   int
	clients map[string]*clientLimiter
}

func newLimiterTable(rps, burst int) *limiterTable {
	return &limiterTable{
		rps:     rps,
		burst:   burst,
		clients: make(map[string]*clientLimiter),
	}
}

func (t *limiterTable) limiterFor(ip string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	client, ok := t.clients[ip]
	if !ok {
		if len(t.clients) >= maxTrackedClients {
			t.evictOldestLocked()
		}
		client = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(t.rps), t.burst)}
		t.clients[ip] = client
	}
	client.lastSeen = time.Now()
	return client.limiter
}

// evictOldestLocked drops the least recently seen client. Callers hold t.mu.
func (t *limiterTable) evictOldestLocked() {
	var (
		oldestIP   string
		oldestSeen time.Time
	)
	for ip, client := range t.clients {
		if oldestIP == "" || client.lastSeen.Before(oldestSeen) {
			oldestIP = ip
			oldestSeen = client.lastSeen
		}
	}
	if oldestIP != "" {
		delete(t.clients, oldestIP)
	}
}

func (t *limiterTable) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.clients)
}

// RateLimit applies a per-client-IP token bucket. Used on the auth group to
// slow down credential guessing.
func RateLimit(rps int, burst int) echo.MiddlewareFunc {
	table := newLimiterTable(rps, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !table.limiterFor(c.RealIP()).Allow() {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "Too Many Requests"})
			}
			return next(c)
		}
	}
}
