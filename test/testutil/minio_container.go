package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/ory/dockertest/v3"
)

const (
	minioUser     = "minioadmin"
	minioPassword = "minioadmin"
)

type MinIOContainerInfo struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Cleanup   func()
}

func StartMinIOContainer() (*MinIOContainerInfo, error) {
	const internalPort = "9000/tcp"

	c, err := startContainer(&dockertest.RunOptions{
		Repository: "minio/minio",
		Tag:        "latest",
		Env: []string{
			"MINIO_ROOT_USER=" + minioUser,
			"MINIO_ROOT_PASSWORD=" + minioPassword,
		},
		Cmd: []string{"server", "/data"},
	}, func(r *dockertest.Resource) error {
		client, err := NewMinioClient(fmt.Sprintf("localhost:%s", r.GetPort(internalPort)), minioUser, minioPassword)
		if err != nil {
			return err
		}
		// ListBuckets is a light operation to check health
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, err = client.ListBuckets(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &MinIOContainerInfo{
		Endpoint:  fmt.Sprintf("localhost:%s", c.port(internalPort)),
		AccessKey: minioUser,
		SecretKey: minioPassword,
		Cleanup:   c.purge,
	}, nil
}

// NewMinioClient is a raw client for assertions on stored objects.
func NewMinioClient(endpoint, accessKey, secretKey string) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
}
