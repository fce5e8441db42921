package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Features interface {
	AppointmentsStore() string
	KafkaEnabled() bool
	NotifierEnabled() bool
}

type Mongo interface {
	DatabaseName() string
	PartsCollection() string
	SuppliersCollection() string
	PurchaseOrdersCollection() string
	QuotationsCollection() string
	AppointmentsCollection() string
	DSN() string
}

type Postgres interface {
	DSN() string
}

type Kafka interface {
	Brokers() []string
	EventsTopic() string
	ConsumerGroupID() string
	EventsProducerConfig() *sarama.Config
	EventsConsumerConfig() *sarama.Config
}

type Telegram interface {
	BotToken() string
}
