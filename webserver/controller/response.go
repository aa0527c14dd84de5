package controller

import (
	"errors"
	"net/http"

	"github.com/ed-builder/paintboard/common"
	"github.com/ed-builder/paintboard/model"
	"github.com/gin-gonic/gin"
)

// respondError maps core error kinds onto HTTP statuses and attaches the
// countdown fields clients need to schedule a retry.
func respondError(ctx *gin.Context, err error) {
	var rl *model.RateLimitedError
	var cd *model.CooldownError
	switch {
	case errors.As(err, &rl):
		common.ResponseError(ctx, http.StatusTooManyRequests, err, gin.H{
			"resetIn":   rl.ResetIn,
			"leftCount": rl.LeftCount,
		})
	case errors.As(err, &cd):
		common.ResponseError(ctx, http.StatusTooManyRequests, err, gin.H{
			"remainingSeconds": cd.RemainingSeconds,
		})
	case errors.Is(err, model.ErrInvalidCode), errors.Is(err, model.ErrInvalidToken):
		common.ResponseError(ctx, http.StatusForbidden, err, nil)
	case errors.Is(err, model.ErrCodeNotFound):
		common.ResponseError(ctx, http.StatusNotFound, err, nil)
	case errors.Is(err, model.ErrOutOfBounds),
		errors.Is(err, model.ErrBadColorFormat),
		errors.Is(err, model.ErrCodeExists):
		common.ResponseError(ctx, http.StatusBadRequest, err, nil)
	default:
		common.ResponseError(ctx, http.StatusInternalServerError, err, nil)
	}
}
