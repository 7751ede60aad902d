package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/controller"
	"github.com/hankosign/hankosign/internal/middleware"
)

func V1_Approvals(r *gin.RouterGroup, wc *controller.WorkflowController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/approvals")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", wc.GetOwnApprovals)
		v1.POST("/:approvalId/approve", wc.ApproveApproval)
		v1.POST("/:approvalId/reject", wc.RejectApproval)
	}
}
