package network

import (
	"context"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

const projectLabel = "garage-ops.project"

// Network is a bridge network shared by the containers of one test suite.
type Network struct {
	network *testcontainers.DockerNetwork
}

func NewNetwork(ctx context.Context, projectName string) (*Network, error) {
	net, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{
			projectLabel: projectName,
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create docker network")
	}

	return &Network{network: net}, nil
}

func (n *Network) Name() string {
	return n.network.Name
}

func (n *Network) Remove(ctx context.Context) error {
	if n == nil || n.network == nil {
		return nil
	}
	return n.network.Remove(ctx)
}
