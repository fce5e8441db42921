package mongo

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	tcconst "github.com/you-humble/garage-ops/platform/testcontainers"
)

func startMongoContainer(ctx context.Context, cfg *Config) (testcontainers.Container, error) {
	req := testcontainers.ContainerRequest{
		Name:  cfg.ContainerName,
		Image: cfg.ImageName,
		Env: map[string]string{
			tcconst.MongoUsernameKey: cfg.Username,
			tcconst.MongoPasswordKey: cfg.Password,
			tcconst.MongoDatabaseKey: cfg.Database,
		},
		ExposedPorts: []string{tcconst.MongoPort + "/tcp"},
		WaitingFor:   wait.ForListeningPort(tcconst.MongoPort + "/tcp").WithStartupTimeout(mongoStartupTimeout),
	}
	if cfg.NetworkName != "" {
		req.Networks = []string{cfg.NetworkName}
		req.NetworkAliases = map[string][]string{
			cfg.NetworkName: {tcconst.MongoContainerName},
		}
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "start mongo container")
	}

	return container, nil
}

func getContainerHostPort(ctx context.Context, container testcontainers.Container) (string, string, error) {
	host, err := container.Host(ctx)
	if err != nil {
		return "", "", errors.Wrap(err, "get container host")
	}

	port, err := container.MappedPort(ctx, tcconst.MongoPort+"/tcp")
	if err != nil {
		return "", "", errors.Wrap(err, "get mapped port")
	}

	return host, port.Port(), nil
}

func buildMongoURI(cfg *Config) string {
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s/%s?authSource=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.AuthDB,
	)
}
