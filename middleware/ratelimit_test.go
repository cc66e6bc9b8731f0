package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(rate.Limit(1), 2)

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(rate.Limit(1), 1)

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.1:1000"))
	// A different client has its own bucket.
	assert.Equal(t, http.StatusOK, send("203.0.113.2:1000"))
}
