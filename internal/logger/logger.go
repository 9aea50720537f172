// Package logger holds the global structured logger. Output goes to a file
// under the config directory so log lines never tear the TUI.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log   *zap.Logger
	Sugar *zap.SugaredLogger
)

// Init initializes the global logger configuration, appending to path. A
// path that cannot be opened falls back to stderr.
func Init(path string) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)

	var writer zapcore.WriteSyncer
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		writer = zapcore.AddSync(os.Stderr)
	} else {
		writer = zapcore.AddSync(file)
	}

	core := zapcore.NewCore(encoder, writer, zapcore.InfoLevel)

	Log = zap.New(core, zap.AddCaller())
	Sugar = Log.Sugar()
}

// Nop installs a discarding logger; tests use it to keep packages quiet.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
