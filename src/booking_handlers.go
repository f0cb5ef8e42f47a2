package main

import (
	"net/http"
	"strconv"

	"shareit/src/apperr"
	"shareit/src/common"
	"shareit/src/types"
	"shareit/src/utils"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			start, err := utils.ParseDateTime(body.Start)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			end, err := utils.ParseDateTime(body.End)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			booking, err := common.CreateBooking(uid, body.ItemID, start, end)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, booking)
		}).
		PATCH("/bookings/:id", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			approved, err := strconv.ParseBool(ctx.Query("approved"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "approved must be a boolean"})
				return
			}
			booking, err := common.SetBookingStatus(params.ID, uid, approved)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, booking)
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := common.GetBookingByID(params.ID, uid)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, booking)
		}).
		GET("/bookings", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			page, err := utils.ParsePage(ctx)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			if page != nil {
				bookings, err := common.ListBookingsForBookerPage(uid, page.From, page.Size)
				if err != nil {
					utils.AbortWithError(ctx, err)
					return
				}
				ctx.JSON(http.StatusOK, bookings)
				return
			}
			state, ok := types.ParseBookingState(ctx.Query("state"))
			if !ok {
				utils.AbortWithError(ctx, apperr.UnsupportedState(ctx.Query("state")))
				return
			}
			bookings, err := common.ListBookingsForBooker(uid, state)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, bookings)
		}).
		GET("/bookings/owner", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			page, err := utils.ParsePage(ctx)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			if page != nil {
				bookings, err := common.ListBookingsForOwnerPage(uid, page.From, page.Size)
				if err != nil {
					utils.AbortWithError(ctx, err)
					return
				}
				ctx.JSON(http.StatusOK, bookings)
				return
			}
			state, ok := types.ParseBookingState(ctx.Query("state"))
			if !ok {
				utils.AbortWithError(ctx, apperr.UnsupportedState(ctx.Query("state")))
				return
			}
			bookings, err := common.ListBookingsForOwner(uid, state)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, bookings)
		})
	return g
}
