package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global logger. Usable before Init as a no-op.
	Log = zap.NewNop()

	once sync.Once
)

// Init configures the global logger. Development gets colored console output,
// production gets JSON written to a rotated file and stdout. ENV and LOG_LEVEL
// environment variables drive the configuration.
func Init() error {
	var initErr error

	once.Do(func() {
		level := zapcore.InfoLevel
		if raw := os.Getenv("LOG_LEVEL"); raw != "" {
			parsed, err := zapcore.ParseLevel(raw)
			if err != nil {
				initErr = err
				return
			}
			level = parsed
		}

		if os.Getenv("ENV") == "production" {
			Log = newProductionLogger(level)
			return
		}

		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

		Log, initErr = cfg.Build()
	})

	return initErr
}

func newProductionLogger(level zapcore.Level) *zap.Logger {
	rotated := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logFile(),
		MaxSize:    50, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
		Compress:   true,
	})

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, rotated, level),
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	)

	return zap.New(core, zap.AddCaller())
}

func logFile() string {
	if path := os.Getenv("LOG_FILE"); path != "" {
		return path
	}
	return "logs/orderdesk.log"
}
