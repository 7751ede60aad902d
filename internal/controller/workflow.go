package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/mailer"
	"github.com/hankosign/hankosign/internal/model"
	"github.com/hankosign/hankosign/internal/repository"
	"github.com/hankosign/hankosign/internal/util"
	"gorm.io/gorm"
)

type WorkflowController struct {
	*baseController
}

func (wc WorkflowController) CreateWorkflow(ctx *gin.Context) {
	type Step struct {
		ApproverID string     `json:"approverId" binding:"required,strNotEmpty"`
		Order      int        `json:"order" binding:"required,gte=1"`
		DueDate    *time.Time `json:"dueDate"`
	}
	type Request struct {
		Name          string         `json:"name" binding:"required,strNotEmpty,cmax=100"`
		IsSequential  *bool          `json:"isSequential"`
		Steps         []Step         `json:"steps" binding:"required,min=1,dive"`
		Configuration map[string]any `json:"configuration"`
	}
	var body Request

	documentId := ctx.Param("documentId")

	user, err := wc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	isSequential := true
	if body.IsSequential != nil {
		isSequential = *body.IsSequential
	}

	steps := make([]repository.ApprovalStep, 0, len(body.Steps))
	for _, step := range body.Steps {
		steps = append(steps, repository.ApprovalStep{
			ApproverID: step.ApproverID,
			Order:      step.Order,
			DueDate:    step.DueDate,
		})
	}

	workflow, err := wc.app.Repository.Workflow.CreateWithApprovals(ctx, nil, documentId, user.ID, body.Name, isSequential, steps, model.JSONMap(body.Configuration))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", util.GenerateErrorMessages(err, "documentId"), nil)
		case errors.Is(err, repository.ErrStepsNotSequential):
			util.ResponseFailed(ctx, http.StatusBadRequest, "Approval steps must be numbered 1..N without gaps", util.GenerateErrorMessages(err, "steps"), nil)
		case errors.Is(err, repository.ErrDocumentNotSignable):
			util.ResponseFailed(ctx, http.StatusBadRequest, "Document is in a terminal status", util.GenerateErrorMessages(err, "documentId"), nil)
		case errors.Is(err, repository.ErrWorkflowExists):
			util.ResponseFailed(ctx, http.StatusBadRequest, "Document already has a workflow", util.GenerateErrorMessages(err, "documentId"), nil)
		default:
			wc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create workflow", util.GenerateErrorMessages(err), nil)
		}
		return
	}

	wc.notifyApprovers(ctx, workflow, user.Name)

	util.ResponseCreated(ctx, gin.H{
		"workflow": workflow,
	})
}

func (wc WorkflowController) GetDocumentWorkflow(ctx *gin.Context) {
	documentId := ctx.Param("documentId")

	user, err := wc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := wc.app.Repository.Document.GetOwned(ctx, nil, documentId, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Document not found", util.GenerateErrorMessages(err, "documentId"), nil)
			return
		}
		wc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load workflow", util.GenerateErrorMessages(err), nil)
		return
	}

	workflow, err := wc.app.Repository.Workflow.GetByDocumentId(ctx, nil, documentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Document has no workflow", util.GenerateErrorMessages(err, "documentId"), nil)
			return
		}
		wc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load workflow", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"workflow": workflow,
	})
}

func (wc WorkflowController) GetOwnApprovals(ctx *gin.Context) {
	user, err := wc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	page, pageSize := readPagination(ctx)

	status := constant.ApprovalStatus(ctx.DefaultQuery("status", string(constant.ApprovalStatusPending)))

	approvals, total, err := wc.app.Repository.Approval.ListByApprover(ctx, nil, user.ID, status, page, pageSize)
	if err != nil {
		wc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list approvals", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"approvals": approvals,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}

func (wc WorkflowController) ApproveApproval(ctx *gin.Context) {
	wc.decide(ctx, true)
}

func (wc WorkflowController) RejectApproval(ctx *gin.Context) {
	wc.decide(ctx, false)
}

func (wc WorkflowController) decide(ctx *gin.Context, approve bool) {
	type Request struct {
		Comment string `json:"comment" form:"comment" binding:"omitempty,cmax=2000"`
	}
	var body Request

	approvalId := ctx.Param("approvalId")

	user, err := wc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	result, err := wc.app.Repository.Approval.Decide(ctx, nil, approvalId, user.ID, approve, body.Comment)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.ResponseFailed(ctx, http.StatusNotFound, "Approval not found", util.GenerateErrorMessages(err, "approvalId"), nil)
		case errors.Is(err, repository.ErrNotApprover):
			util.ResponseFailed(ctx, http.StatusForbidden, "Approval is assigned to another user", util.GenerateErrorMessages(err, "approvalId"), nil)
		case errors.Is(err, repository.ErrApprovalAlreadyDecided):
			util.ResponseFailed(ctx, http.StatusBadRequest, "Approval has already been decided", util.GenerateErrorMessages(err, "approvalId"), nil)
		case errors.Is(err, repository.ErrNotYourTurn):
			util.ResponseFailed(ctx, http.StatusBadRequest, "Earlier approval steps are still pending", util.GenerateErrorMessages(err, "approvalId"), nil)
		default:
			wc.app.Logger.Error(err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to record decision", util.GenerateErrorMessages(err), nil)
		}
		return
	}

	wc.invalidateVerifyCache(ctx, result.Document.VerificationCode)

	if result.DocumentCompleted {
		wc.notifyDocumentCompleted(ctx, result.Document)
	}

	util.ResponseSuccess(ctx, gin.H{
		"approval": result.Approval,
		"document": result.Document,
	})
}

// notifyApprovers emails the approvers whose turn can come first. For a
// sequential workflow that is step one only, otherwise everyone.
func (wc WorkflowController) notifyApprovers(ctx *gin.Context, workflow *model.Workflow, requesterName string) {
	doc, err := wc.app.Repository.Document.GetById(ctx, nil, workflow.DocumentID)
	if err != nil {
		wc.app.Logger.Errorf("Failed to load document for approval emails: %v", err)
		return
	}

	for _, approval := range workflow.Approvals {
		if workflow.IsSequential && approval.Order != workflow.CurrentStep {
			continue
		}

		approver, err := wc.app.Repository.User.GetById(ctx, nil, approval.ApproverID)
		if err != nil {
			wc.app.Logger.Errorf("Failed to load approver %s: %v", approval.ApproverID, err)
			continue
		}

		dueDate := ""
		if approval.DueDate != nil {
			dueDate = approval.DueDate.Format("2006-01-02")
		}

		vars := struct {
			ApproverName  string
			RequesterName string
			DocumentTitle string
			ApprovalURL   string
			DueDate       string
		}{
			ApproverName:  approver.Name,
			RequesterName: requesterName,
			DocumentTitle: doc.Title,
			ApprovalURL:   wc.app.Config.FrontURL + "/approvals",
			DueDate:       dueDate,
		}

		go func(name, email string) {
			if _, err := wc.app.Mailer.Send(mailer.APPROVAL_REQUEST_TEMPLATE, name, email, vars); err != nil {
				wc.app.Logger.Errorf("Failed to send approval request email: %v", err)
			}
		}(approver.Name, approver.Email)
	}
}

func (wc WorkflowController) notifyDocumentCompleted(ctx *gin.Context, doc *model.Document) {
	owner, err := wc.app.Repository.User.GetById(ctx, nil, doc.CreatedByID)
	if err != nil {
		wc.app.Logger.Errorf("Failed to load document owner: %v", err)
		return
	}

	vars := struct {
		OwnerName        string
		DocumentTitle    string
		VerificationCode string
		VerifyURL        string
	}{
		OwnerName:        owner.Name,
		DocumentTitle:    doc.Title,
		VerificationCode: doc.VerificationCode,
		VerifyURL:        wc.app.Config.FrontURL + "/verify/" + doc.VerificationCode,
	}

	go func() {
		if _, err := wc.app.Mailer.Send(mailer.DOCUMENT_COMPLETED_TEMPLATE, owner.Name, owner.Email, vars); err != nil {
			wc.app.Logger.Errorf("Failed to send document completed email: %v", err)
		}
	}()
}
