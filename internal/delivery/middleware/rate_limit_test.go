package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitRejectsOverBudgetBurst(t *testing.T) {
	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RateLimit(1, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
}

func TestRateLimitIsPerClient(t *testing.T) {
	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RateLimit(1, 1))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234"))
}

func TestLimiterTableCapsTrackedClients(t *testing.T) {
	table := newLimiterTable(1, 1)

	for i := 0; i < maxTrackedClients*2; i++ {
		table.limiterFor(fmt.Sprintf("10.%d.%d.%d", i/65536, i/256%256, i%256))
	}

	assert.Equal(t, maxTrackedClients, table.size())
}

func TestLimiterTableEvictsLeastRecentlySeen(t *testing.T) {
	table := newLimiterTable(1, 1)

	addr := func(i int) string { return fmt.Sprintf("10.0.%d.%d", i/256, i%256) }
	for i := 0; i < maxTrackedClients; i++ {
		table.limiterFor(addr(i))
	}

	// Refresh every entry except the first so it is strictly the oldest.
	stale := addr(0)
	time.Sleep(time.Millisecond)
	for i := 1; i < maxTrackedClients; i++ {
		table.limiterFor(addr(i))
	}

	table.limiterFor("192.168.0.1")

	table.mu.Lock()
	_, staleKept := table.clients[stale]
	_, freshKept := table.clients[addr(1)]
	table.mu.Unlock()
	assert.False(t, staleKept)
	assert.True(t, freshKept)
	assert.Equal(t, maxTrackedClients, table.size())
}
