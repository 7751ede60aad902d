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

type AuthController struct {
	*baseController
}

const resetTokenTTL = time.Hour

func (ac AuthController) Register(ctx *gin.Context) {
	type Request struct {
		Email       string `json:"email" form:"email" binding:"required,email"`
		Password    string `json:"password" form:"password" binding:"required"`
		Name        string `json:"name" form:"name" binding:"required,strNotEmpty,cmax=100"`
		NameKana    string `json:"nameKana" form:"nameKana" binding:"omitempty,cmax=100"`
		CompanyName string `json:"companyName" form:"companyName" binding:"omitempty,cmax=200"`
		Department  string `json:"department" form:"department" binding:"omitempty,cmax=100"`
		Position    string `json:"position" form:"position" binding:"omitempty,cmax=100"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if ok, reason := util.ValidatePasswordPolicy(body.Password); !ok {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid password", util.GenerateErrorMessages(errors.New(reason), "password"), nil)
		return
	}

	hashed, err := util.HashPassword(body.Password)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to register", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.Create(ctx, nil, model.User{
		Email:       body.Email,
		Password:    hashed,
		Name:        body.Name,
		NameKana:    body.NameKana,
		CompanyName: body.CompanyName,
		Department:  body.Department,
		Position:    body.Position,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Email is already registered", util.GenerateErrorMessages(err, "email"), nil)
			return
		}
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to register", util.GenerateErrorMessages(err), nil)
		return
	}

	_ = ac.app.Repository.AuditLog.Record(ctx, nil, model.AuditLog{
		UserID:     user.ID,
		Action:     constant.AuditUserRegistered,
		EntityType: "user",
		EntityID:   user.ID,
	})

	refreshToken, accessToken, err := ac.app.Repository.JWT.GenRefreshAndAccessToken(ctx, nil, *user)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate tokens", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseCreated(ctx, gin.H{
		"user":         user.Sanitized(),
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
	})
}

func (ac AuthController) Login(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" form:"email" binding:"required,email"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.GetByEmail(ctx, nil, body.Email)
	if err != nil {
		// Same response for unknown email and wrong password.
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid email or password", util.GenerateErrorMessages(errors.New("invalid credentials"), "email"), nil)
		return
	}

	if !util.ComparePassword(user.Password, body.Password) {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid email or password", util.GenerateErrorMessages(errors.New("invalid credentials"), "email"), nil)
		return
	}

	refreshToken, accessToken, err := ac.app.Repository.JWT.GenRefreshAndAccessToken(ctx, nil, *user)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to generate tokens", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user":         user.Sanitized(),
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
	})
}

func (ac AuthController) VerifyJwtAccessToken(ctx *gin.Context) {
	token := ctx.Param("token")

	// Keep in mind that verify jwt token does not check database.
	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), gin.H{
			"tokenValid": false,
		})
		return
	}

	if jwtClaims == nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("jwt claim empty")), gin.H{
			"tokenValid": false,
		})
		return
	}

	if jwtClaims.Type != constant.JWT_TYPE_ACCESS {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("invalid jwt token type")), gin.H{
			"tokenValid": false,
		})
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"tokenValid": true,
		"payload":    jwtClaims,
	})
}

func (ac AuthController) RefreshAccessToken(ctx *gin.Context) {
	refreshToken, err := util.ReadRefreshToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	jwtClaims, err := ac.app.JWTService.VerifyJwtToken(refreshToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if jwtClaims.Type != constant.JWT_TYPE_REFRESH {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("invalid jwt token type")), nil)
		return
	}

	newRefreshToken, newAccessToken, err := ac.app.Repository.JWT.RefreshToken(ctx, nil, refreshToken)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if newRefreshToken == nil || newAccessToken == nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(errors.New("failed to refresh token")), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"refreshToken": newRefreshToken,
		"accessToken":  newAccessToken,
	})
}

func (ac AuthController) Logout(ctx *gin.Context) {
	refreshToken, err := util.ReadRefreshToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ac.app.Repository.JWT.DeleteToken(ctx, nil, refreshToken); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to log out", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

// ForgotPassword always answers 200 so the endpoint cannot be used to probe
// which emails are registered.
func (ac AuthController) ForgotPassword(ctx *gin.Context) {
	type Request struct {
		Email string `json:"email" form:"email" binding:"required,email"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	response := gin.H{
		"message": "If the email is registered, a reset link has been sent",
	}

	user, err := ac.app.Repository.User.GetByEmail(ctx, nil, body.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			ac.app.Logger.Error(err)
		}
		util.ResponseSuccess(ctx, response)
		return
	}

	token, err := util.GenerateNChar(48)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseSuccess(ctx, response)
		return
	}

	expiry := time.Now().Add(resetTokenTTL)
	if err := ac.app.Repository.User.SetResetToken(ctx, nil, user.ID, util.HashToken(token), expiry); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseSuccess(ctx, response)
		return
	}

	_ = ac.app.Repository.AuditLog.Record(ctx, nil, model.AuditLog{
		UserID:     user.ID,
		Action:     constant.AuditPasswordResetRequested,
		EntityType: "user",
		EntityID:   user.ID,
	})

	vars := struct {
		Name             string
		ResetURL         string
		ExpiresInMinutes int
	}{
		Name:             user.Name,
		ResetURL:         ac.app.Config.FrontURL + "/reset-password?token=" + token,
		ExpiresInMinutes: int(resetTokenTTL.Minutes()),
	}

	go func() {
		if _, err := ac.app.Mailer.Send(mailer.PASSWORD_RESET_TEMPLATE, user.Name, user.Email, vars); err != nil {
			ac.app.Logger.Errorf("Failed to send password reset email: %v", err)
		}
	}()

	util.ResponseSuccess(ctx, response)
}

func (ac AuthController) ResetPassword(ctx *gin.Context) {
	type Request struct {
		Token    string `json:"token" form:"token" binding:"required,strNotEmpty"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if ok, reason := util.ValidatePasswordPolicy(body.Password); !ok {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid password", util.GenerateErrorMessages(errors.New(reason), "password"), nil)
		return
	}

	hashed, err := util.HashPassword(body.Password)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to reset password", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.ResetPassword(ctx, nil, util.HashToken(body.Token), hashed)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenInvalid) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Reset token is invalid or expired", util.GenerateErrorMessages(err, "token"), nil)
			return
		}
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to reset password", util.GenerateErrorMessages(err), nil)
		return
	}

	_ = ac.app.Repository.AuditLog.Record(ctx, nil, model.AuditLog{
		UserID:     user.ID,
		Action:     constant.AuditPasswordResetCompleted,
		EntityType: "user",
		EntityID:   user.ID,
	})

	util.ResponseSuccess(ctx, nil)
}
