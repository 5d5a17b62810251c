// Package rediscache implements the cache interfaces on top of Redis.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"leadgen/pkg/domain"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	locationPrefix = "location:"
	lockPrefix     = "lock:"
)

// Options holds the Redis connection parameters.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Redis implements cache.Cache.
type Redis struct {
	Client *redis.Client
}

// New connects to Redis and verifies the connection with a PING.
func New(ctx context.Context, options Options) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     options.Addr,
		Password: options.Password,
		DB:       options.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return &Redis{Client: client}, nil
}

func (r *Redis) Close() error {
	if err := r.Client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}

func (r *Redis) Locations(ctx context.Context, codes []int) (map[int]domain.Location, error) {
	out := make(map[int]domain.Location, len(codes))
	if len(codes) == 0 {
		return out, nil
	}

	keys := make([]string, len(codes))
	for i, code := range codes {
		keys[i] = locationKey(code)
	}

	values, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("could not get locations from redis: %w", err)
	}

	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		var loc domain.Location
		if err := json.Unmarshal([]byte(raw), &loc); err != nil {
			// a corrupt entry is treated as a miss and overwritten later
			continue
		}
		out[loc.Code] = loc
	}

	return out, nil
}

func (r *Redis) StoreLocations(ctx context.Context, locations []domain.Location, ttl time.Duration) error {
	if len(locations) == 0 {
		return nil
	}

	_, err := r.Client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, loc := range locations {
			b, err := json.Marshal(loc)
			if err != nil {
				return fmt.Errorf("could not marshal location: %w", err)
			}
			pipe.Set(ctx, locationKey(loc.Code), b, ttl)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("could not store locations in redis: %w", err)
	}

	return nil
}

func (r *Redis) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.Client.SetNX(ctx, lockPrefix+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("could not acquire lock in redis: %w", err)
	}

	return ok, nil
}

func (r *Redis) Release(ctx context.Context, key string) error {
	if err := r.Client.Del(ctx, lockPrefix+key).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("could not release lock in redis: %w", err)
	}

	return nil
}

func locationKey(code int) string {
	return locationPrefix + strconv.Itoa(code)
}
