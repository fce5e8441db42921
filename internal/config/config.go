package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/garage-ops/internal/config/env"
)

var cfg *config

// Postgres, Kafka and Telegram stay nil unless their feature is enabled.
type config struct {
	Server   Server
	Logger   Logger
	Features Features
	Mongo    Mongo
	Postgres Postgres
	Kafka    Kafka
	Telegram Telegram
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	featuresCfg, err := envconfig.NewFeaturesConfig()
	if err != nil {
		return fmt.Errorf("%s Features: %w", op, err)
	}

	mongoCfg, err := envconfig.NewMongoConfig()
	if err != nil {
		return fmt.Errorf("%s Mongo: %w", op, err)
	}

	c := &config{
		Server:   serverCfg,
		Logger:   loggerCfg,
		Features: featuresCfg,
		Mongo:    mongoCfg,
	}

	if featuresCfg.AppointmentsStore() == envconfig.StorePostgres {
		pgCfg, err := envconfig.NewPostgresConfig()
		if err != nil {
			return fmt.Errorf("%s Postgres: %w", op, err)
		}
		c.Postgres = pgCfg
	}

	if featuresCfg.KafkaEnabled() {
		kafkaCfg, err := envconfig.NewKafkaConfig()
		if err != nil {
			return fmt.Errorf("%s Kafka: %w", op, err)
		}
		c.Kafka = kafkaCfg
	}

	if featuresCfg.NotifierEnabled() {
		tgCfg, err := envconfig.NewTelegramConfig()
		if err != nil {
			return fmt.Errorf("%s Telegram: %w", op, err)
		}
		c.Telegram = tgCfg
	}

	cfg = c

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
