package testutil

import (
	"context"
	"testing"

	"github.com/go-redis/redis/v8"
)

// NewRedis connects to TEST_REDIS_ADDR and flushes the selected database
// before and after the test. Point it at a throwaway instance.
func NewRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: requireEnv(t, "TEST_REDIS_ADDR")})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Fatalf("testutil.NewRedis: ping: %v", err)
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		client.Close()
		t.Fatalf("testutil.NewRedis: flush: %v", err)
	}

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		client.Close()
	})
	return client
}
