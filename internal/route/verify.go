package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/controller"
)

// Public verification routes, no auth on purpose.
func V1_Verify(r *gin.RouterGroup, vc *controller.VerificationController) {
	v1 := r.Group("/v1/verify")
	{
		v1.GET("/:code", vc.VerifyDocument)
		v1.GET("/:code/qr", vc.VerifyDocumentQR)
	}
}
