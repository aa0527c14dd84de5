package controller

import (
	"time"

	"github.com/ed-builder/paintboard/common"
	"github.com/ed-builder/paintboard/model"
	"github.com/ed-builder/paintboard/pkg/log"
	"github.com/ed-builder/paintboard/service"
	"github.com/gin-gonic/gin"
)

// PostGenerateToken exchanges an invitation code for a draw token.
func PostGenerateToken(ctx *gin.Context) {
	var req struct {
		InvitationCode string `json:"invitationCode" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.ResponseBadRequestError(ctx)
		return
	}
	issuance, err := service.IssueToken(req.InvitationCode, time.Now())
	if err != nil {
		respondError(ctx, err)
		return
	}
	log.Info("issued token for code %v to %v", req.InvitationCode, ctx.ClientIP())
	common.ResponseSuccess(ctx, gin.H{
		"token":     issuance.Token,
		"resetIn":   issuance.ResetIn,
		"leftCount": issuance.LeftCount,
	})
}

// PostValidateToken reports whether a token was ever issued.
func PostValidateToken(ctx *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.ResponseBadRequestError(ctx)
		return
	}
	if !service.ValidateToken(req.Token) {
		respondError(ctx, model.ErrInvalidToken)
		return
	}
	common.ResponseSuccess(ctx, gin.H{"valid": true})
}
