package main

import (
	"net/http"
	"time"

	"shareit/src/boot"
	"shareit/src/config"
	"shareit/src/lib"
	"shareit/src/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// bookabledate rejects dates already in the past at creation time.
var bookableDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	datetime, err := time.ParseInLocation(config.TIME_PARSE_FORMAT, date, time.Local)
	if err != nil {
		return false
	}
	return !datetime.Before(time.Now())
}

// gtdate requires the field to be strictly after the named sibling field.
var gtdate validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	datetime, err := time.ParseInLocation(config.TIME_PARSE_FORMAT, date, time.Local)
	if err != nil {
		return false
	}
	field := fl.Parent().FieldByName(fl.Param())
	fieldValue, ok := field.Interface().(string)
	if !ok {
		return false
	}
	fielddatetime, err := time.ParseInLocation(config.TIME_PARSE_FORMAT, fieldValue, time.Local)
	if err != nil {
		return false
	}
	return datetime.After(fielddatetime)
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("bookabledate", bookableDateValidatorFunc)
		v.RegisterValidation("gtdate", gtdate)
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID)
	router.Use(middlewares.SecureHeaders)
	router.Use(middlewares.Observe)
	router.Use(middlewares.RateLimit())
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// User CRUD carries no identity header; it is how identities come to be.
	userHandlers(router.Group(""))

	protected := router.Group("", middlewares.Identity)
	itemHandlers(protected)
	requestHandlers(protected)
	bookingHandlers(protected)

	return router
}

func main() {
	registerValidators()
	lib.RegisterMetrics()
	boot.InitDb()

	router := setupRouter()
	addr := config.ServerAddr()
	lib.Logger().Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		lib.Logger().Fatal().Err(err).Msg("server stopped")
	}
}
