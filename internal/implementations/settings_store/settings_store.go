package settingsstore

import (
	"context"
	"errors"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/reminder"

	"github.com/go-redis/redis/v9"
)

// Redis keeps the notification settings as one JSON document under a single key.
type Redis struct {
	redisClient *redis.Client
	key         string
}

func NewRedis(redisClient *redis.Client, key string) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if key == "" {
		panic("settings key must not be empty")
	}
	return &Redis{redisClient: redisClient, key: key}
}

// Get returns the stored settings or the defaults when nothing is stored.
func (r *Redis) Get(ctx context.Context) (reminder.Settings, error) {
	data, err := r.redisClient.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return reminder.DefaultSettings(), nil
	}
	if err != nil {
		return reminder.Settings{}, err
	}
	return reminder.UnmarshalSettings(data)
}

func (r *Redis) Save(ctx context.Context, s reminder.Settings) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return r.redisClient.Set(ctx, r.key, data, 0).Err()
}

func (r *Redis) Clear(ctx context.Context) error {
	return r.redisClient.Del(ctx, r.key).Err()
}
