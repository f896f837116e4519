package testutil

import (
	"context"
	"fmt"

	"github.com/fhuszti/studio-ms-go/internal/logger"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

// container is a throwaway docker resource started for one test binary.
type container struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
}

// startContainer runs image:tag and retries ready until it succeeds.
func startContainer(opts *dockertest.RunOptions, ready func(*dockertest.Resource) error) (*container, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	resource, err := pool.RunWithOptions(opts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start %s container: %w", opts.Repository, err)
	}

	if err := pool.Retry(func() error { return ready(resource) }); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("%s did not become ready: %w", opts.Repository, err)
	}

	return &container{pool: pool, resource: resource}, nil
}

func (c *container) port(id string) string {
	return c.resource.GetPort(id)
}

func (c *container) purge() {
	if err := c.pool.Purge(c.resource); err != nil {
		logger.Warnf(context.Background(), "could not purge %s container: %s", c.resource.Container.Config.Image, err)
	}
}
