package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/controller"
	"github.com/hankosign/hankosign/internal/middleware"
)

func V1_Documents(r *gin.RouterGroup, dc *controller.DocumentController, wc *controller.WorkflowController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/documents")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", dc.GetOwnDocuments)
		v1.POST("", dc.UploadDocument)
		v1.GET("/:documentId", dc.GetDocumentById)
		v1.DELETE("/:documentId", dc.DeleteDocument)
		v1.PATCH("/:documentId/status", dc.UpdateDocumentStatus)
		v1.GET("/:documentId/workflow", wc.GetDocumentWorkflow)
		v1.POST("/:documentId/workflow", wc.CreateWorkflow)
	}
}
