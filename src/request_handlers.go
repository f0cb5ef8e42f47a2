package main

import (
	"net/http"

	"shareit/src/common"
	"shareit/src/types"
	"shareit/src/utils"

	"github.com/gin-gonic/gin"
)

func requestHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/requests", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			var body types.CreateItemRequestBoardBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			request, err := common.CreateItemRequest(uid, body.Description)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, request)
		}).
		GET("/requests", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			requests, err := common.ListOwnRequests(uid)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, requests)
		}).
		GET("/requests/all", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			page, err := utils.ParsePage(ctx)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			if page == nil {
				page = &utils.Page{From: 0, Size: 10}
			}
			requests, err := common.ListOtherRequests(uid, page.From, page.Size)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, requests)
		}).
		GET("/requests/:id", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			request, err := common.GetItemRequest(uid, params.ID)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, request)
		})
	return g
}
