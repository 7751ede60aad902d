package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/controller"
	"github.com/hankosign/hankosign/internal/middleware"
)

func V1_Hankos(r *gin.RouterGroup, hc *controller.HankoController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/hankos")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", hc.GetOwnHankos)
		v1.POST("", hc.CreateHanko)
		v1.DELETE("/:hankoId", hc.DeleteHanko)
	}
}
