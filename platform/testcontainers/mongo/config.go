package mongo

import (
	"context"

	"go.uber.org/zap"

	"github.com/you-humble/garage-ops/platform/logger"
	tcconst "github.com/you-humble/garage-ops/platform/testcontainers"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	NetworkName   string
	ContainerName string
	ImageName     string
	Database      string
	Username      string
	Password      string
	AuthDB        string
	Logger        Logger

	Host string
	Port string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: tcconst.MongoImage,
		Database:  "test",
		Username:  "root",
		Password:  "root",
		AuthDB:    "admin",
		Logger:    logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
