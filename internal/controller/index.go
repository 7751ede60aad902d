package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"name": util.GetAppName(),
		"env":  ic.app.Config.ENV,
	})
}
