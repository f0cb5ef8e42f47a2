package middlewares

import (
	"net/http"
	"strconv"

	"shareit/src/config"

	"github.com/gin-gonic/gin"
)

// Identity extracts the caller id from the X-Sharer-User-Id header and stores
// it under "uid". A missing or malformed header is a request-validation
// failure, not a business error.
func Identity(ctx *gin.Context) {
	raw := ctx.GetHeader(config.SharerUserHeader)
	if raw == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing X-Sharer-User-Id header"})
		return
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid X-Sharer-User-Id header"})
		return
	}
	ctx.Set("uid", uint(id))
}
