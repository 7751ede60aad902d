package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/controller"
)

func V1_Contact(r *gin.RouterGroup, cc *controller.ContactController) {
	v1 := r.Group("/v1/contact")
	{
		v1.POST("", cc.SubmitContact)
	}
}
