package controller

import (
	"net/http"

	"github.com/ed-builder/paintboard/common"
	"github.com/ed-builder/paintboard/model"
	"github.com/ed-builder/paintboard/pkg/log"
	"github.com/ed-builder/paintboard/service"
	"github.com/gin-gonic/gin"
)

// AdminAuth gates the admin group behind HTTP Basic auth checked against
// the stored credential hash.
func AdminAuth(ctx *gin.Context) {
	username, password, ok := ctx.Request.BasicAuth()
	if !ok || !service.CheckAdminAuth(username, password) {
		ctx.Header("WWW-Authenticate", `Basic realm="PaintBoard Admin"`)
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	ctx.Next()
}

// GetInvitationCodes lists all invitation code descriptors.
func GetInvitationCodes(ctx *gin.Context) {
	setting, err := service.GetSetting()
	if err != nil {
		respondError(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, gin.H{"invitationCodes": setting.InvitationCodes})
}

// PostInvitationCode adds a descriptor. The body may give just the code or
// a full descriptor; omitted window/max fields take the legacy defaults.
func PostInvitationCode(ctx *gin.Context) {
	var req struct {
		Code       string `json:"code" binding:"required"`
		TimeWindow int64  `json:"timeWindow"`
		MaxCount   int    `json:"maxCount"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.TimeWindow < 0 || req.MaxCount < 0 {
		common.ResponseBadRequestError(ctx)
		return
	}
	code := model.InvitationCode{
		Code:       req.Code,
		TimeWindow: req.TimeWindow,
		MaxCount:   req.MaxCount,
	}
	if code.TimeWindow == 0 {
		code.TimeWindow = model.DefaultInvitationWindow
	}
	if code.MaxCount == 0 {
		code.MaxCount = model.DefaultInvitationMaxCount
	}
	codes, err := service.AddInvitationCode(code)
	if err != nil {
		respondError(ctx, err)
		return
	}
	log.Info("admin added invitation code %v", code.Code)
	common.ResponseSuccess(ctx, gin.H{"invitationCodes": codes})
}

// DeleteInvitationCode removes the descriptor named in the path.
func DeleteInvitationCode(ctx *gin.Context) {
	code := ctx.Param("code")
	if code == "" {
		common.ResponseBadRequestError(ctx)
		return
	}
	codes, err := service.DeleteInvitationCode(code)
	if err != nil {
		respondError(ctx, err)
		return
	}
	log.Info("admin deleted invitation code %v", code)
	common.ResponseSuccess(ctx, gin.H{"invitationCodes": codes})
}

// PutCooldown updates the global draw cooldown.
func PutCooldown(ctx *gin.Context) {
	var req struct {
		CooldownSeconds *int64 `json:"cooldownSeconds" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || *req.CooldownSeconds < 0 {
		common.ResponseBadRequestError(ctx)
		return
	}
	if err := service.UpdateCooldown(*req.CooldownSeconds); err != nil {
		respondError(ctx, err)
		return
	}
	log.Info("admin set cooldown to %v seconds", *req.CooldownSeconds)
	common.ResponseSuccess(ctx, gin.H{"cooldownSeconds": *req.CooldownSeconds})
}
