package rediscache_test

import (
	"context"
	"fmt"
	"leadgen/pkg/cache"
	"leadgen/pkg/cache/rediscache"
	"leadgen/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var _ cache.Cache = (*rediscache.Redis)(nil)

func setupRedis(t *testing.T) (*rediscache.Redis, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	r, err := rediscache.New(ctx, rediscache.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})
	require.NoError(t, err)

	return r, func() {
		_ = r.Close()
		_ = container.Terminate(ctx)
	}
}

func TestRedis_Locations(t *testing.T) {
	r, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()

	got, err := r.Locations(ctx, []int{2840})
	require.NoError(t, err)
	require.Empty(t, got)

	us := domain.Location{Code: 2840, Name: "United States", CountryCode: "US", TargetType: "Country"}
	require.NoError(t, r.StoreLocations(ctx, []domain.Location{us}, time.Minute))

	got, err = r.Locations(ctx, []int{2840, 1})
	require.NoError(t, err)
	require.Equal(t, map[int]domain.Location{2840: us}, got)
}

func TestRedis_Lock(t *testing.T) {
	r, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()

	ok, err := r.Acquire(ctx, "search:acc", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.Acquire(ctx, "search:acc", time.Minute)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, r.Release(ctx, "search:acc"))

	ok, err = r.Acquire(ctx, "search:acc", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
}
