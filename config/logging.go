package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// setLogger picks the zap configuration for the given environment.
// Unknown environments get the production logger.
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "local":
		c := zap.NewDevelopmentConfig()
		c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		return c.Build()
	case "development":
		return zap.NewDevelopment()
	default:
		c := zap.NewProductionConfig()
		c.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		return c.Build()
	}
}
