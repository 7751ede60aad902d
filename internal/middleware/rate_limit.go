package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hankosign/hankosign/internal/util"
)

func (m Middleware) RateLimiterMiddleware(ctx *gin.Context) {
	allowed, retryAfter := m.rateLimiter.Allow(ctx.ClientIP())
	if !allowed {
		m.app.Logger.Debugf("Rate limit exceeded for ip: %s", ctx.ClientIP())
		ctx.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Too many requests", util.GenerateErrorMessages(errors.New("rate limit exceeded"), "rateLimit"), nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
