package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/redis/go-redis/v9"
)

type RedisContainerInfo struct {
	Addr    string
	Cleanup func()
}

func StartRedisContainer() (*RedisContainerInfo, error) {
	const internalPort = "6379/tcp"

	c, err := startContainer(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	}, func(r *dockertest.Resource) error {
		rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("localhost:%s", r.GetPort(internalPort))})
		defer func() { _ = rdb.Close() }()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		return nil, err
	}

	return &RedisContainerInfo{
		Addr:    fmt.Sprintf("localhost:%s", c.port(internalPort)),
		Cleanup: c.purge,
	}, nil
}
