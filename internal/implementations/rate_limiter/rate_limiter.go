package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	e "nutritrack/internal/core/domain/errors"
	"nutritrack/internal/core/domain/logging"
	ratelimiter "nutritrack/internal/core/domain/rate_limiter"

	"github.com/go-redis/redis/v9"
)

// Redis is a fixed-window counter limiter. Windows are aligned to the minute
// or hour of the injected clock.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
	now         func() time.Time
	prefix      string
}

func NewRedis(redisClient *redis.Client, log logging.Logger, now func() time.Time, prefix string) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Redis{redisClient: redisClient, log: log, now: now, prefix: prefix}
}

func (r *Redis) windowKey(key string, interval ratelimiter.Interval) (string, time.Duration) {
	now := r.now()
	switch interval {
	case ratelimiter.Hour:
		return fmt.Sprintf("%s:rl:%s::h%d", r.prefix, key, now.Hour()), time.Hour
	case ratelimiter.Minute:
		return fmt.Sprintf("%s:rl:%s::m%d", r.prefix, key, now.Minute()), time.Minute
	default:
		panic("invalid rate limiting interval")
	}
}

func (r *Redis) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	k, d := r.windowKey(key, limit.Interval)

	cmds, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, d)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return ratelimiter.NotAllowed()
	}
	if err != nil {
		r.log.Error(ctx, "Could not check rate limit due to Redis client error.", logging.Entry("err", err))
		return ratelimiter.Allowed()
	}
	intCmd := cmds[0].(*redis.IntCmd)
	if intCmd.Val() > int64(limit.Value) {
		return ratelimiter.NotAllowed()
	}
	return ratelimiter.Allowed()
}
