package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

type featuresEnv struct {
	AppointmentsStore string `env:"APPOINTMENTS_STORE" envDefault:"mongo"`
	KafkaEnabled      bool   `env:"KAFKA_ENABLED" envDefault:"false"`
	NotifierEnabled   bool   `env:"NOTIFIER_ENABLED" envDefault:"false"`
}

type features struct {
	raw featuresEnv
}

func NewFeaturesConfig() (*features, error) {
	var raw featuresEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.AppointmentsStore {
	case StoreMongo, StorePostgres:
	default:
		return nil, fmt.Errorf("APPOINTMENTS_STORE must be %q or %q, got %q",
			StoreMongo, StorePostgres, raw.AppointmentsStore)
	}

	// The notifier reads from the events topic.
	if raw.NotifierEnabled && !raw.KafkaEnabled {
		return nil, fmt.Errorf("NOTIFIER_ENABLED requires KAFKA_ENABLED")
	}

	return &features{raw: raw}, nil
}

func (cfg *features) AppointmentsStore() string { return cfg.raw.AppointmentsStore }
func (cfg *features) KafkaEnabled() bool        { return cfg.raw.KafkaEnabled }
func (cfg *features) NotifierEnabled() bool     { return cfg.raw.NotifierEnabled }
