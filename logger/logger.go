package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is shared by every logger built with NewLogger, so the CLI can
// change verbosity after package level loggers exist.
var Level = zap.NewAtomicLevelAt(zap.InfoLevel)

func NewLogger() *zap.SugaredLogger {
	config := zap.NewDevelopmentConfig()
	config.Level = Level
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	logger, err := config.Build()
	if err != nil {
		log.Panic(err)
	}

	// flushes buffer, if any
	defer logger.Sync()

	return logger.Sugar()
}

// SetLevel parses level (debug, info, warn, error) and applies it to Level.
func SetLevel(level string) error {
	return Level.UnmarshalText([]byte(level))
}
