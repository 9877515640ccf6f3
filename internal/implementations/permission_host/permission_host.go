package permissionhost

import (
	"context"
	"errors"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/notification"

	"github.com/go-redis/redis/v9"
)

// Prompter shows the native permission prompt on the notification host.
type Prompter interface {
	RequestPermission(ctx context.Context, current notification.Permission) error
}

// Redis stores the permission reported by the browser. An absent value
// means the user has not been asked yet.
type Redis struct {
	log         logging.Logger
	redisClient *redis.Client
	prompter    Prompter
	key         string
}

func NewRedis(log logging.Logger, redisClient *redis.Client, prompter Prompter, settingsKey string) *Redis {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if prompter == nil {
		panic(e.NewNilArgumentError("prompter"))
	}
	return &Redis{log: log, redisClient: redisClient, prompter: prompter, key: Key(settingsKey)}
}

func Key(settingsKey string) string {
	return settingsKey + ":permission"
}

func (r *Redis) Permission(ctx context.Context) (notification.Permission, error) {
	value, err := r.redisClient.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return notification.PermissionDefault, nil
	}
	if err != nil {
		return notification.PermissionUnknown, err
	}
	p, err := notification.ParsePermission(value)
	if err != nil {
		r.log.Warning(ctx, "Stored permission is invalid, treating it as default.", logging.Entry("value", value))
		return notification.PermissionDefault, nil
	}
	return p, nil
}

func (r *Redis) RequestPermission(ctx context.Context) (notification.Permission, error) {
	p, err := r.Permission(ctx)
	if err != nil {
		return notification.PermissionUnknown, err
	}
	if p != notification.PermissionDefault {
		return p, nil
	}
	if err := r.prompter.RequestPermission(ctx, p); err != nil {
		return notification.PermissionUnknown, err
	}
	r.log.Info(ctx, "Notification permission has been requested.")
	return p, nil
}

func (r *Redis) SetPermission(ctx context.Context, p notification.Permission) error {
	if p == notification.PermissionUnknown {
		return notification.ErrParsePermission
	}
	return r.redisClient.Set(ctx, r.key, p.String(), 0).Err()
}
