package main

import (
	"net/http"

	"shareit/src/common"
	"shareit/src/types"
	"shareit/src/utils"

	"github.com/gin-gonic/gin"
)

func itemHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/items", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			var body types.CreateItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := common.CreateItem(uid, &body)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, common.ItemToResponse(item))
		}).
		PATCH("/items/:id", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := common.UpdateItem(uid, params.ID, &body)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, common.ItemToResponse(item))
		}).
		GET("/items/:id", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			detail, err := common.GetItemDetail(uid, params.ID)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, detail)
		}).
		GET("/items", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			items, err := common.ListItemsByOwner(uid)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, items)
		}).
		GET("/items/search", func(ctx *gin.Context) {
			items, err := common.SearchItems(ctx.Query("text"))
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			out := make([]types.ItemResponse, 0, len(items))
			for i := range items {
				out = append(out, common.ItemToResponse(&items[i]))
			}
			ctx.JSON(http.StatusOK, out)
		}).
		POST("/items/:id/comment", func(ctx *gin.Context) {
			uid := ctx.GetUint("uid")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateCommentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			comment, err := common.CreateComment(uid, params.ID, body.Text)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, comment)
		})
	return g
}
