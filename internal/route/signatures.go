package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/controller"
	"github.com/hankosign/hankosign/internal/middleware"
)

func V1_Signatures(r *gin.RouterGroup, sc *controller.SignatureController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/signatures")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", sc.SignDocument)
	}
}
