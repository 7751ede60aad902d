package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/model"
	"github.com/hankosign/hankosign/internal/util"
)

type UserController struct {
	*baseController
}

func (uc UserController) GetMe(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load profile", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user":        user.Sanitized(),
		"preferences": user.Preferences,
	})
}

func (uc UserController) UpdateProfile(ctx *gin.Context) {
	type Request struct {
		Name     string `json:"name" form:"name" binding:"required,strNotEmpty,cmax=100"`
		NameKana string `json:"nameKana" form:"nameKana" binding:"omitempty,cmax=100"`
	}
	var body Request

	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := uc.app.Repository.User.UpdateProfile(ctx, nil, authUser.ID, body.Name, body.NameKana); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update profile", util.GenerateErrorMessages(err), nil)
		return
	}

	_ = uc.app.Repository.AuditLog.Record(ctx, nil, model.AuditLog{
		UserID:     authUser.ID,
		Action:     constant.AuditProfileUpdated,
		EntityType: "user",
		EntityID:   authUser.ID,
	})

	util.ResponseSuccess(ctx, nil)
}

func (uc UserController) UpdateCompanyInfo(ctx *gin.Context) {
	type Request struct {
		CompanyName     string `json:"companyName" form:"companyName" binding:"omitempty,cmax=200"`
		CorporateNumber string `json:"corporateNumber" form:"corporateNumber" binding:"omitempty,len=13,numeric"`
		Department      string `json:"department" form:"department" binding:"omitempty,cmax=100"`
		Position        string `json:"position" form:"position" binding:"omitempty,cmax=100"`
	}
	var body Request

	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := uc.app.Repository.User.UpdateCompanyInfo(ctx, nil, authUser.ID, body.CompanyName, body.CorporateNumber, body.Department, body.Position); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update company info", util.GenerateErrorMessages(err), nil)
		return
	}

	_ = uc.app.Repository.AuditLog.Record(ctx, nil, model.AuditLog{
		UserID:     authUser.ID,
		Action:     constant.AuditCompanyInfoUpdated,
		EntityType: "user",
		EntityID:   authUser.ID,
	})

	util.ResponseSuccess(ctx, nil)
}

func (uc UserController) ChangePassword(ctx *gin.Context) {
	type Request struct {
		CurrentPassword string `json:"currentPassword" form:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" form:"newPassword" binding:"required"`
	}
	var body Request

	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if ok, reason := util.ValidatePasswordPolicy(body.NewPassword); !ok {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid password", util.GenerateErrorMessages(errors.New(reason), "newPassword"), nil)
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to change password", util.GenerateErrorMessages(err), nil)
		return
	}

	if !util.ComparePassword(user.Password, body.CurrentPassword) {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Current password is incorrect", util.GenerateErrorMessages(errors.New("current password is incorrect"), "currentPassword"), nil)
		return
	}

	hashed, err := util.HashPassword(body.NewPassword)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to change password", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := uc.app.Repository.User.UpdatePassword(ctx, nil, authUser.ID, hashed); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to change password", util.GenerateErrorMessages(err), nil)
		return
	}

	_ = uc.app.Repository.AuditLog.Record(ctx, nil, model.AuditLog{
		UserID:     authUser.ID,
		Action:     constant.AuditPasswordChanged,
		EntityType: "user",
		EntityID:   authUser.ID,
	})

	util.ResponseSuccess(ctx, nil)
}

func (uc UserController) UpdatePreferences(ctx *gin.Context) {
	var body map[string]any

	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := uc.app.Repository.User.UpdatePreferences(ctx, nil, authUser.ID, model.JSONMap(body)); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update preferences", util.GenerateErrorMessages(err), nil)
		return
	}

	_ = uc.app.Repository.AuditLog.Record(ctx, nil, model.AuditLog{
		UserID:     authUser.ID,
		Action:     constant.AuditPreferencesUpdated,
		EntityType: "user",
		EntityID:   authUser.ID,
	})

	util.ResponseSuccess(ctx, gin.H{
		"preferences": body,
	})
}
