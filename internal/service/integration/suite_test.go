//go:build integration

package integration

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/you-humble/garage-ops/platform/logger"
)

const kafkaImage = "confluentinc/confluent-local:7.5.0"

var (
	ctx context.Context

	kafkaC  *tckafka.KafkaContainer
	brokers []string
)

func TestEvents(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Domain Events Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	By("starting kafka container")
	var err error
	kafkaC, err = tckafka.Run(ctx, kafkaImage, tckafka.WithClusterID("garage-it"))
	Expect(err).NotTo(HaveOccurred())

	brokers, err = kafkaC.Brokers(ctx)
	Expect(err).NotTo(HaveOccurred())
})

var _ = AfterSuite(func() {
	if kafkaC != nil {
		Expect(testcontainers.TerminateContainer(kafkaC)).To(Succeed())
	}
})
