package controller

import (
	"github.com/ed-builder/paintboard/common"
	"github.com/ed-builder/paintboard/service"
	"github.com/gin-gonic/gin"
)

// GetCanvas returns the full board snapshot.
func GetCanvas(ctx *gin.Context) {
	hub, err := service.DefaultHub()
	if err != nil {
		respondError(ctx, err)
		return
	}
	snap := hub.Board().Snapshot()
	common.ResponseSuccess(ctx, gin.H{
		"width":  snap.Width,
		"height": snap.Height,
		"pixels": snap.Pixels,
	})
}

// GetPublicConfig returns the non-admin subset of the setting.
func GetPublicConfig(ctx *gin.Context) {
	conf, err := service.PublicConfig()
	if err != nil {
		respondError(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, conf)
}
