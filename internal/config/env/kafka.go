package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers         []string `env:"KAFKA_BROKERS,required"`
	EventsTopicName string   `env:"EVENTS_TOPIC_NAME" envDefault:"garage.events"`
	ConsumerGroupID string   `env:"EVENTS_CONSUMER_GROUP_ID" envDefault:"garage-notifier"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string       { return cfg.raw.Brokers }
func (cfg *kafka) EventsTopic() string     { return cfg.raw.EventsTopicName }
func (cfg *kafka) ConsumerGroupID() string { return cfg.raw.ConsumerGroupID }

func (cfg *kafka) EventsProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true

	return config
}

func (cfg *kafka) EventsConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}
