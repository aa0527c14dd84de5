package main

import (
	"github.com/ed-builder/paintboard/config"
	"github.com/ed-builder/paintboard/pkg/log"
	"github.com/ed-builder/paintboard/service"
	"github.com/ed-builder/paintboard/webserver/router"
)

func main() {
	conf := config.GetConfig()
	if err := service.InitSetting(conf.CanvasWidth, conf.CanvasHeight); err != nil {
		log.Fatal("init setting: %v", err)
	}
	if err := service.InitPaintboard(); err != nil {
		log.Fatal("init paintboard: %v", err)
	}
	service.GoBackgrounds()
	log.Info("paintboard listening on %v", conf.Address)
	if err := router.Run(); err != nil {
		log.Fatal("%v", err)
	}
}
