package kafka

import "time"

// HeaderEventType carries the domain event type of a record.
const HeaderEventType = "event_type"

type Header struct {
	Key   string
	Value []byte
}

// Message is a transport-neutral view of a consumed Kafka record.
type Message struct {
	Headers        map[string][]byte
	Timestamp      time.Time
	BlockTimestamp time.Time

	Key       []byte
	Value     []byte
	Topic     string
	Partition int32
	Offset    int64
}

func (m Message) Header(key string) string {
	return string(m.Headers[key])
}
