package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	appcontext "github.com/hankosign/hankosign/internal/app_context"
	"github.com/hankosign/hankosign/internal/auth"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index        *IndexController
	Auth         *AuthController
	User         *UserController
	Hanko        *HankoController
	Document     *DocumentController
	Signature    *SignatureController
	Verification *VerificationController
	Workflow     *WorkflowController
	Admin        *AdminController
	Contact      *ContactController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:        &IndexController{baseController: bc},
		Auth:         &AuthController{baseController: bc},
		User:         &UserController{baseController: bc},
		Hanko:        &HankoController{baseController: bc},
		Document:     &DocumentController{baseController: bc},
		Signature:    &SignatureController{baseController: bc},
		Verification: &VerificationController{baseController: bc},
		Workflow:     &WorkflowController{baseController: bc},
		Admin:        &AdminController{baseController: bc},
		Contact:      &ContactController{baseController: bc},
	}
}

// invalidateVerifyCache drops the cached public view after a change to
// anything /verify returns. Best-effort, the entry expires on its own anyway.
func (b *baseController) invalidateVerifyCache(ctx context.Context, verificationCode string) {
	if verificationCode == "" {
		return
	}

	if err := b.app.Cache.Delete(ctx, verifyCacheKey(verificationCode)); err != nil {
		b.app.Logger.Errorf("Failed to invalidate verification cache for %s: %v", verificationCode, err)
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}
