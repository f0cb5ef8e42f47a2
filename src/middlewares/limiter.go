package middlewares

import (
	"net/http"
	"os"
	"strconv"
	"sync"

	"shareit/src/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type rateLimiter struct {
	limiters sync.Map
	rps      float64
	burst    int
}

func newRateLimiter() *rateLimiter {
	rps := 25.0
	if v, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64); err == nil && v > 0 {
		rps = v
	}
	burst := 50
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST")); err == nil && v > 0 {
		burst = v
	}
	return &rateLimiter{rps: rps, burst: burst}
}

func (l *rateLimiter) getLimiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}
	lim := rate.NewLimiter(rate.Limit(l.rps), l.burst)
	actual, _ := l.limiters.LoadOrStore(key, lim)
	return actual.(*rate.Limiter)
}

// RateLimit throttles per caller identity, falling back to the remote address
// for requests that carry no identity header.
func RateLimit() gin.HandlerFunc {
	l := newRateLimiter()
	return func(ctx *gin.Context) {
		key := ctx.GetHeader(config.SharerUserHeader)
		if key == "" {
			key = ctx.ClientIP()
		}
		if !l.getLimiter(key).Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		ctx.Next()
	}
}
