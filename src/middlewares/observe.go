package middlewares

import (
	"strconv"
	"time"

	"shareit/src/lib"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SecureHeaders sets a conservative set of response headers.
func SecureHeaders(ctx *gin.Context) {
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Header("X-Frame-Options", "DENY")
	ctx.Header("Referrer-Policy", "no-referrer")
	ctx.Next()
}

// RequestID tags every request with a uuid, echoed back as X-Request-Id.
func RequestID(ctx *gin.Context) {
	id := ctx.GetHeader("X-Request-Id")
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Set("request_id", id)
	ctx.Header("X-Request-Id", id)
	ctx.Next()
}

// Observe logs each request through zerolog and feeds the Prometheus
// collectors. Registered after RequestID so the id is available.
func Observe(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()
	elapsed := time.Since(start)

	route := ctx.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := ctx.Writer.Status()
	lib.ObserveHTTP(ctx.Request.Method, route, strconv.Itoa(status), elapsed.Seconds())

	evt := lib.Logger().Info()
	if status >= 500 {
		evt = lib.Logger().Error()
	}
	evt.
		Str("request_id", ctx.GetString("request_id")).
		Str("method", ctx.Request.Method).
		Str("path", ctx.Request.URL.Path).
		Int("status", status).
		Dur("elapsed", elapsed).
		Uint("uid", ctx.GetUint("uid")).
		Msg("request")
}
