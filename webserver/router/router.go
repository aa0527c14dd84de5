package router

import (
	"github.com/ed-builder/paintboard/config"
	"github.com/ed-builder/paintboard/webserver/controller"
	"github.com/gin-gonic/gin"
)

func Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	api := engine.Group("/api")
	{
		api.POST("generate-token", controller.PostGenerateToken)
		api.POST("validate-token", controller.PostValidateToken)
		api.POST("draw", controller.PostDraw)
		api.GET("canvas", controller.GetCanvas)
		api.GET("config", controller.GetPublicConfig)
	}
	admin := api.Group("admin", controller.AdminAuth)
	{
		admin.GET("invitation-codes", controller.GetInvitationCodes)
		admin.POST("invitation-codes", controller.PostInvitationCode)
		admin.DELETE("invitation-codes/:code", controller.DeleteInvitationCode)
		admin.PUT("cooldown", controller.PutCooldown)
	}
	engine.GET("/ws", controller.GetStream)
	return engine
}

func Run() error {
	return Engine().Run(config.GetConfig().Address)
}
