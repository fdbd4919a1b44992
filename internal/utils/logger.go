package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewApplicationLogger constructs the console logger repotxt uses for fatal
// failure reporting at the command entry point. Timestamps, levels, and caller
// annotations are stripped so the output reads like plain CLI text.
func NewApplicationLogger() (*zap.Logger, error) {
	loggerConfiguration := zap.NewProductionConfig()
	loggerConfiguration.Encoding = "console"
	loggerConfiguration.DisableCaller = true
	loggerConfiguration.DisableStacktrace = true

	encoderConfiguration := &loggerConfiguration.EncoderConfig
	encoderConfiguration.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfiguration.TimeKey = ""
	encoderConfiguration.LevelKey = ""
	encoderConfiguration.NameKey = ""
	encoderConfiguration.CallerKey = ""
	encoderConfiguration.MessageKey = "message"
	encoderConfiguration.StacktraceKey = ""

	return loggerConfiguration.Build()
}
