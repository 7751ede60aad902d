package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/controller"
	"github.com/hankosign/hankosign/internal/middleware"
)

func V1_Users(r *gin.RouterGroup, uc *controller.UserController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/users")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("/me", uc.GetMe)
		v1.PATCH("/me/profile", uc.UpdateProfile)
		v1.PATCH("/me/company", uc.UpdateCompanyInfo)
		v1.PATCH("/me/password", uc.ChangePassword)
		v1.PATCH("/me/preferences", uc.UpdatePreferences)
	}
}
