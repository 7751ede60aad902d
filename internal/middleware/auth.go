package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/auth"
	"github.com/hankosign/hankosign/internal/constant"
	"github.com/hankosign/hankosign/internal/util"
)

func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, 401, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, 401, "Invalid token", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	if claim.Type != constant.JWT_TYPE_ACCESS {
		m.app.Logger.Debugf("Invalid token type: %s", claim.Type)
		util.ResponseFailed(ctx, 401, "Invalid access token type", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	ctx.Set("user", claim.User)
	ctx.Next()
}

// AdminMiddleware must run after AuthMiddleware.
func (m Middleware) AdminMiddleware(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		util.ResponseFailed(ctx, 401, "", util.GenerateErrorMessages(errors.New("user not found in context"), "unauthorized"), nil)
		ctx.Abort()
		return
	}

	payload, ok := user.(auth.JWTPayload)
	if !ok || !util.HasAdminAccess(payload.Role) {
		util.ResponseFailed(ctx, 403, "Admin access required", util.GenerateErrorMessages(errors.New("admin access required"), "forbidden"), nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
