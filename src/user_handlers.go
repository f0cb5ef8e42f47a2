package main

import (
	"net/http"

	"shareit/src/common"
	"shareit/src/types"
	"shareit/src/utils"

	"github.com/gin-gonic/gin"
)

func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/users", func(ctx *gin.Context) {
			var body types.CreateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			user, err := common.CreateUser(&body)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, user)
		}).
		PATCH("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			user, err := common.UpdateUser(params.ID, &body)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, user)
		}).
		GET("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			user, err := common.GetUserByID(params.ID)
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, user)
		}).
		GET("/users", func(ctx *gin.Context) {
			users, err := common.ListUsers()
			if err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, users)
		}).
		DELETE("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := common.DeleteUser(params.ID); err != nil {
				utils.AbortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusOK)
		})
	return g
}
