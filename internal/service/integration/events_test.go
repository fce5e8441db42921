//go:build integration

package integration

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/IBM/sarama"
	"github.com/brianvoe/gofakeit/v7"

	kafkaconv "github.com/you-humble/garage-ops/internal/converter/kafka"
	"github.com/you-humble/garage-ops/internal/model"
	evconsumer "github.com/you-humble/garage-ops/internal/service/consumer/event"
	evproducer "github.com/you-humble/garage-ops/internal/service/producer/event"
	"github.com/you-humble/garage-ops/platform/kafka/consumer"
	"github.com/you-humble/garage-ops/platform/kafka/middleware"
	"github.com/you-humble/garage-ops/platform/kafka/producer"
	"github.com/you-humble/garage-ops/platform/logger"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []model.Event
}

func (n *recordingNotifier) Notify(_ context.Context, event model.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if event.Type == "legacy.unknown" {
		return model.ErrUnknownEventType
	}
	n.events = append(n.events, event)
	return nil
}

func (n *recordingNotifier) received() []model.Event {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]model.Event(nil), n.events...)
}

var _ = Describe("Domain events over Kafka", func() {
	It("delivers published events to the notifier", func() {
		topic := "garage.events." + gofakeit.LetterN(8)
		conv := kafkaconv.NewKafkaConverter()

		producerCfg := sarama.NewConfig()
		producerCfg.Version = sarama.V3_6_0_0
		producerCfg.Producer.Return.Successes = true
		producerCfg.Producer.Retry.Max = 10

		syncProducer, err := sarama.NewSyncProducer(brokers, producerCfg)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(syncProducer.Close)

		publisher := evproducer.NewEventProducer(
			producer.NewProducer(syncProducer, topic, logger.L()),
			conv,
		)

		event := model.NewEvent(model.EventPartLowStock, gofakeit.UUID(), map[string]any{
			"partNumber": "PN-1",
			"quantity":   1,
		})
		unknown := model.NewEvent("legacy.unknown", gofakeit.UUID(), nil)

		Eventually(func() error {
			return publisher.Publish(ctx, unknown)
		}).WithTimeout(30 * time.Second).WithPolling(time.Second).Should(Succeed())
		Expect(publisher.Publish(ctx, event)).To(Succeed())

		consumerCfg := sarama.NewConfig()
		consumerCfg.Version = sarama.V3_6_0_0
		consumerCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

		group, err := sarama.NewConsumerGroup(brokers, "garage-it-"+gofakeit.LetterN(6), consumerCfg)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(group.Close)

		notifier := &recordingNotifier{}
		events := evconsumer.NewEventConsumer(
			consumer.NewConsumer(group, []string{topic}, logger.L(),
				middleware.Recovery(logger.L()),
				middleware.Logging(logger.L()),
			),
			conv,
			notifier,
		)

		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() { done <- events.RunEventsConsume(runCtx) }()
		DeferCleanup(func() {
			cancel()
			Eventually(done).WithTimeout(30 * time.Second).Should(Receive())
		})

		Eventually(notifier.received).WithTimeout(60 * time.Second).Should(HaveLen(1))

		got := notifier.received()[0]
		Expect(got.ID).To(Equal(event.ID))
		Expect(got.Type).To(Equal(model.EventPartLowStock))
		Expect(got.EntityID).To(Equal(event.EntityID))
		Expect(got.Payload).To(HaveKeyWithValue("partNumber", "PN-1"))
	})
})
