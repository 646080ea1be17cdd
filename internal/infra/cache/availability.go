package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"barbershop-api/internal/pkg/config"
	"barbershop-api/internal/usecase/queries"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// AvailabilityCache keys free-slot views by barber and calendar day.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	cleanup := func() {
		_ = client.Close()
	}

	return client, cleanup, nil
}

func availabilityKey(barberID uuid.UUID, day string) string {
	return "availability:" + barberID.String() + ":" + day
}

func (c *AvailabilityCache) Get(ctx context.Context, barberID uuid.UUID, day string) (*queries.AvailabilityView, error) {
	raw, err := c.client.Get(ctx, availabilityKey(barberID, day)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // miss
		}
		return nil, err
	}

	var view queries.AvailabilityView
	if err := json.Unmarshal([]byte(raw), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, barberID uuid.UUID, day string, view *queries.AvailabilityView) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, availabilityKey(barberID, day), raw, c.ttl).Err()
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, barberID uuid.UUID, day string) error {
	return c.client.Del(ctx, availabilityKey(barberID, day)).Err()
}
