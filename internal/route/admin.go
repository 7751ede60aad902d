package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/controller"
	"github.com/hankosign/hankosign/internal/middleware"
)

func V1_Admin(r *gin.RouterGroup, adc *controller.AdminController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/admin")
	v1.Use(middleware.AuthMiddleware, middleware.AdminMiddleware)
	{
		v1.GET("/users", adc.GetUsers)
		v1.PATCH("/users/:userId/role", adc.UpdateUserRole)
		v1.GET("/audit-logs", adc.GetAuditLogs)
	}
}
