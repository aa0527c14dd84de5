package controller

import (
	"time"

	"github.com/ed-builder/paintboard/common"
	"github.com/ed-builder/paintboard/service"
	"github.com/gin-gonic/gin"
)

// PostDraw places a single pixel. x and y bind as pointers so 0 is a valid
// coordinate but a missing field is still a bad request.
func PostDraw(ctx *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
		X     *int   `json:"x" binding:"required"`
		Y     *int   `json:"y" binding:"required"`
		Color string `json:"color" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.ResponseBadRequestError(ctx)
		return
	}
	hub, err := service.DefaultHub()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ack, err := service.Draw(hub, req.Token, *req.X, *req.Y, req.Color, time.Now())
	if err != nil {
		respondError(ctx, err)
		return
	}
	common.ResponseSuccess(ctx, gin.H{"nextDrawIn": ack.NextDrawIn})
}
