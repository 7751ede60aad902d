package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/repository"
	"github.com/hankosign/hankosign/internal/util"
	"gorm.io/gorm"
)

type AdminController struct {
	*baseController
}

func (adc AdminController) GetUsers(ctx *gin.Context) {
	page, pageSize := readPagination(ctx)

	users, total, err := adc.app.Repository.User.List(ctx, nil, page, pageSize)
	if err != nil {
		adc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list users", util.GenerateErrorMessages(err), nil)
		return
	}

	sanitized := make([]map[string]any, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}

	util.ResponseSuccess(ctx, gin.H{
		"users":     sanitized,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}

func (adc AdminController) UpdateUserRole(ctx *gin.Context) {
	type Request struct {
		Role string `json:"role" form:"role" binding:"required,oneof=USER ADMIN SUPER_ADMIN"`
	}
	var body Request

	targetId := ctx.Param("userId")

	actor, err := adc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	newRole := constant.UserRole(body.Role)

	if err := util.ValidateRoleChange(actor.ID, actor.Role, targetId, newRole); err != nil {
		switch {
		case errors.Is(err, util.ErrRoleChangeForbidden), errors.Is(err, util.ErrSuperAdminAssignment):
			util.ResponseFailed(ctx, http.StatusForbidden, "", util.GenerateErrorMessages(err, "role"), nil)
		default:
			util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err, "role"), nil)
		}
		return
	}

	target, err := adc.app.Repository.User.GetById(ctx, nil, targetId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(err, "userId"), nil)
			return
		}
		adc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to change role", util.GenerateErrorMessages(err), nil)
		return
	}

	// The audit entry commits in the same transaction as the role change.
	if err := adc.app.Repository.User.UpdateRole(ctx, nil, actor.ID, targetId, target.Role, newRole); err != nil {
		adc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to change role", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"userId": targetId,
		"role":   newRole,
	})
}

// GetAuditLogs requires the audit capability, which only SUPER_ADMIN carries.
func (adc AdminController) GetAuditLogs(ctx *gin.Context) {
	actor, err := adc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if !util.Can(actor.Role, constant.CanViewAuditLogs) {
		util.ResponseFailed(ctx, http.StatusForbidden, "Audit log access required", util.GenerateErrorMessages(errors.New("audit log access required"), "role"), nil)
		return
	}

	page, pageSize := readPagination(ctx)

	filter := repository.AuditLogFilter{
		UserID:     ctx.Query("userId"),
		Action:     constant.AuditAction(ctx.Query("action")),
		EntityType: ctx.Query("entityType"),
	}

	logs, total, err := adc.app.Repository.AuditLog.List(ctx, nil, filter, page, pageSize)
	if err != nil {
		adc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list audit logs", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"auditLogs": logs,
		"total":     total,
		"page":      page,
		"pageSize":  pageSize,
		"totalPage": util.CalculateTotalPage(total, pageSize),
	})
}
