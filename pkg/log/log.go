package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/v2rayA/beego/v2/core/logs"
)

func ParseLevel(level string) int {
	switch strings.ToLower(level) {
	case "trace":
		return logs.LevelDebug
	case "debug":
		return logs.LevelInfo
	case "info":
		return logs.LevelNotice
	case "warn", "warning":
		return logs.LevelWarning
	case "error":
		return logs.LevelError
	default:
		return logs.LevelNotice
	}
}

// InitLog initializes the global logger. logWay is "console" or "file";
// logFile is only used in the "file" way.
func InitLog(logWay string, logFile string, logLevel string, maxDays int64, disableColor bool) {
	logs.Reset()
	logs.EnableFuncCallDepth(false)
	if logWay == "file" {
		params := fmt.Sprintf(`{"filename": "%s", "maxdays": %d}`, logFile, maxDays)
		_ = logs.SetLogger("file", params)
	} else {
		params := fmt.Sprintf(`{"color": %v}`, !disableColor)
		_ = logs.SetLogger("console", params)
	}
	logs.SetLevel(ParseLevel(logLevel))
}

func Trace(format string, v ...interface{}) {
	logs.Debug(format, v...)
}

func Debug(format string, v ...interface{}) {
	logs.Info(format, v...)
}

func Info(format string, v ...interface{}) {
	logs.Notice(format, v...)
}

func Warn(format string, v ...interface{}) {
	logs.Warning(format, v...)
}

func Error(format string, v ...interface{}) {
	logs.Error(format, v...)
}

func Fatal(format string, v ...interface{}) {
	logs.Critical(format, v...)
	logs.GetBeeLogger().Flush()
	os.Exit(1)
}
