package utils

import (
	"net/http"
	"strconv"
	"time"

	"shareit/src/apperr"
	"shareit/src/config"
	"shareit/src/lib"

	"github.com/gin-gonic/gin"
)

// AbortWithError is the single boundary translator: error kind to HTTP status
// plus a JSON error body.
func AbortWithError(ctx *gin.Context, err error) {
	status := apperr.StatusOf(err)
	if status == http.StatusInternalServerError {
		lib.Logger().Error().
			Err(err).
			Str("request_id", ctx.GetString("request_id")).
			Str("path", ctx.Request.URL.Path).
			Msg("request failed")
		ctx.AbortWithStatusJSON(status, gin.H{"error": "internal error"})
		return
	}
	ctx.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

type Page struct {
	From int
	Size int
}

// ParsePage reads from/size query params. Returns nil when neither is set, so
// callers can fall back to the unpaginated variant.
func ParsePage(ctx *gin.Context) (*Page, error) {
	fromRaw, hasFrom := ctx.GetQuery("from")
	sizeRaw, hasSize := ctx.GetQuery("size")
	if !hasFrom && !hasSize {
		return nil, nil
	}
	page := Page{From: 0, Size: 10}
	if hasFrom {
		from, err := strconv.Atoi(fromRaw)
		if err != nil || from < 0 {
			return nil, apperr.BadRequest("from must be a non-negative integer")
		}
		page.From = from
	}
	if hasSize {
		size, err := strconv.Atoi(sizeRaw)
		if err != nil || size <= 0 {
			return nil, apperr.BadRequest("size must be a positive integer")
		}
		page.Size = size
	}
	return &page, nil
}

func ParseDateTime(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(config.TIME_PARSE_FORMAT, raw, time.Local)
	if err != nil {
		return time.Time{}, apperr.BadRequest("invalid date: %s", raw)
	}
	return t, nil
}
