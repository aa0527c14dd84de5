package config

import (
	log2 "log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ed-builder/paintboard/db"
	"github.com/ed-builder/paintboard/pkg/log"
	"github.com/stevenroose/gonfig"
)

type Params struct {
	Address         string `id:"address" short:"a" default:"0.0.0.0:3000" desc:"Listening address"`
	Config          string `id:"config" short:"c" default:"$HOME/.config/paintboard" desc:"Paintboard configuration directory"`
	CanvasWidth     int    `id:"canvas-width" default:"960" desc:"Canvas width used when the board is first created"`
	CanvasHeight    int    `id:"canvas-height" default:"540" desc:"Canvas height used when the board is first created"`
	LogLevel        string `id:"log-level" default:"info" desc:"Optional values: trace, debug, info, warn or error"`
	LogFile         string `id:"log-file" desc:"The path of log file"`
	LogMaxDays      int64  `id:"log-max-days" default:"3" desc:"Maximum number of days to keep log files"`
	LogDisableColor bool   `id:"log-disable-color"`
}

var params Params

func initFunc() {
	err := gonfig.Load(&params, gonfig.Conf{
		FileDisable:       true,
		FlagIgnoreUnknown: false,
		EnvPrefix:         "PB_",
	})
	if err != nil {
		if err.Error() != "unexpected word while parsing flags: '-test.v'" {
			log2.Fatal(err)
		}
	}
	// replace all dots of the filename with underlines
	params.Config = filepath.Join(
		filepath.Dir(params.Config),
		strings.ReplaceAll(filepath.Base(params.Config), ".", "_"),
	)
	if strings.Contains(params.Config, "$HOME") {
		if h, err := os.UserHomeDir(); err == nil {
			params.Config = strings.ReplaceAll(params.Config, "$HOME", h)
		}
	}
	if err := os.MkdirAll(params.Config, 0700); err != nil {
		log2.Fatal(err)
	}
	logWay := "console"
	if params.LogFile != "" {
		logWay = "file"
	}
	log.InitLog(logWay, params.LogFile, params.LogLevel, params.LogMaxDays, params.LogDisableColor)
	db.InitDB(params.Config)
}

var once sync.Once

func GetConfig() *Params {
	once.Do(initFunc)
	return &params
}
