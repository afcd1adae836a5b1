package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimit allows each client IP `burst` requests at once, refilled at
// every per request. Idle limiters are dropped after ten minutes.
func RateLimit(every time.Duration, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := gocache.New(10*time.Minute, 20*time.Minute)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if v, ok := limiters.Get(ip); ok {
			limiters.SetDefault(ip, v)
			return v.(*rate.Limiter)
		}
		l := rate.NewLimiter(rate.Every(every), burst)
		limiters.SetDefault(ip, l)
		return l
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiterFor(ip).Allow() {
			log.Printf("[ratelimit] ip=%s path=%s throttled", ip, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "too many requests",
			})
			return
		}
		c.Next()
	}
}
