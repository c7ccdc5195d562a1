package logger

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. Console encoding to stdout plus
// a file sink so deployments behind a reverse proxy keep a local trail.
// When the logs directory cannot be created the file sink is skipped and
// the logger keeps running on stdout alone.
func NewLogger() *zap.Logger {
	outputs := []string{"stdout"}
	if err := os.MkdirAll("logs", 0o755); err == nil {
		outputs = append(outputs, "./logs/app.log")
	}

	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l
}
