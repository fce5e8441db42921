//go:build integration

package integration

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/stdlib"

	aptpostgres "github.com/you-humble/garage-ops/internal/repository/appointment/postgres"
	"github.com/you-humble/garage-ops/platform/db/migrator"
	"github.com/you-humble/garage-ops/platform/logger"
	tcmongo "github.com/you-humble/garage-ops/platform/testcontainers/mongo"
	"github.com/you-humble/garage-ops/platform/testcontainers/network"
	tcpostgres "github.com/you-humble/garage-ops/platform/testcontainers/postgres"
)

const projectName = "garage_repository_it"

var (
	ctx context.Context

	net       *network.Network
	mongoC    *tcmongo.Container
	postgresC *tcpostgres.Container
)

func TestRepositories(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Repository Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	gofakeit.Seed(0)
	logger.SetNopLogger()

	var err error

	By("creating isolated docker network")
	net, err = network.NewNetwork(ctx, projectName)
	Expect(err).NotTo(HaveOccurred())

	By("starting mongo container")
	mongoC, err = tcmongo.NewContainer(ctx,
		tcmongo.WithNetworkName(net.Name()),
		tcmongo.WithDatabase("garage"),
		tcmongo.WithAuth("garage", "garage-secret"),
	)
	Expect(err).NotTo(HaveOccurred())

	By("starting postgres container")
	postgresC, err = tcpostgres.NewContainer(ctx,
		tcpostgres.WithDatabase("garage"),
		tcpostgres.WithAuth("garage", "garage-secret"),
	)
	Expect(err).NotTo(HaveOccurred())

	By("applying embedded migrations")
	m := migrator.NewEmbeddedMigrator(
		stdlib.OpenDBFromPool(postgresC.Pool()),
		aptpostgres.Migrations,
		aptpostgres.MigrationsDir,
	)
	Expect(m.Up()).To(Succeed())
	Expect(m.Close()).To(Succeed())
})

var _ = AfterSuite(func() {
	if postgresC != nil {
		Expect(postgresC.Terminate(ctx)).To(Succeed())
	}
	if mongoC != nil {
		Expect(mongoC.Terminate(ctx)).To(Succeed())
	}
	Expect(net.Remove(ctx)).To(Succeed())
})
