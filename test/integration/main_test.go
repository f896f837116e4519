package integration

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fhuszti/studio-ms-go/internal/storage"
	"github.com/fhuszti/studio-ms-go/test/testutil"
	"github.com/minio/minio-go/v7"
)

var (
	GlobalStrg        *storage.Storage
	GlobalMinioClient *minio.Client
	RedisAddr         string
)

func TestMain(m *testing.M) {
	code := func() int {
		dbCleanup, err := setupMariaDB()
		if err != nil {
			fmt.Fprintf(os.Stderr, "DB setup failed: %v\n", err)
			return 1
		}
		defer dbCleanup()

		minioCleanup, err := setupMinIO()
		if err != nil {
			fmt.Fprintf(os.Stderr, "MinIO setup failed: %v\n", err)
			return 1
		}
		defer minioCleanup()

		redisCleanup, err := setupRedis()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Redis setup failed: %v\n", err)
			return 1
		}
		defer redisCleanup()

		return m.Run()
	}()

	os.Exit(code)
}

func setupMariaDB() (cleanup func(), err error) {
	if os.Getenv("TEST_DB_DSN") != "" {
		// CI provided it; nothing to clean up
		return func() {}, nil
	}

	mdb, err := testutil.StartMariaDBContainer()
	if err != nil {
		return nil, err
	}
	if err := os.Setenv("TEST_DB_DSN", mdb.DSN); err != nil {
		mdb.Cleanup()
		return nil, err
	}
	return mdb.Cleanup, nil
}

func setupMinIO() (cleanup func(), err error) {
	endpoint := os.Getenv("TEST_MINIO_ENDPOINT")
	access := os.Getenv("TEST_MINIO_ACCESS_KEY")
	secret := os.Getenv("TEST_MINIO_SECRET_KEY")
	cleanup = func() {}

	if endpoint == "" {
		mi, err := testutil.StartMinIOContainer()
		if err != nil {
			return nil, err
		}
		endpoint, access, secret, cleanup = mi.Endpoint, mi.AccessKey, mi.SecretKey, mi.Cleanup
	}

	GlobalStrg, err = storage.NewStorage(endpoint, access, secret, false)
	if err != nil {
		cleanup()
		return nil, err
	}
	GlobalMinioClient, err = testutil.NewMinioClient(endpoint, access, secret)
	if err != nil {
		cleanup()
		return nil, err
	}
	return cleanup, nil
}

func setupRedis() (cleanup func(), err error) {
	if addr := os.Getenv("TEST_REDIS_ADDR"); addr != "" {
		RedisAddr = addr
		return func() {}, nil
	}

	rc, err := testutil.StartRedisContainer()
	if err != nil {
		return nil, err
	}
	RedisAddr = rc.Addr
	return rc.Cleanup, nil
}

// bucketSuffix gives each test its own bucket names.
func bucketSuffix(t *testing.T) string {
	name := strings.ToLower(strings.NewReplacer("/", "-", "_", "-").Replace(t.Name()))
	if len(name) > 30 {
		name = name[:30]
	}
	return fmt.Sprintf("%s-%d", strings.Trim(name, "-"), time.Now().UnixNano()%1_000_000)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timeout waiting for condition")
		}
		time.Sleep(50 * time.Millisecond)
	}
}
