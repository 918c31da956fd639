package dbrule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/formkit"
)

// RedisCommander is the slice of go-redis a rule needs. redis.Client
// satisfies it.
type RedisCommander interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
}

// NotRecentlySeen builds a rule that fails when the same value was validated
// within the ttl window, keyed by prefix. The check and the window refresh
// are one atomic SET NX, so concurrent submissions of the same value race
// safely: exactly one passes.
func NotRecentlySeen(c RedisCommander, prefix string, ttl time.Duration) formkit.RuleFunc {
	return func(ctx context.Context, in formkit.Input) error {
		key := fmt.Sprintf("%s:%v", prefix, in.Value)
		set, err := c.SetNX(ctx, key, 1, ttl).Result()
		if err != nil {
			return errors.Join(ErrQueryFailed, err)
		}
		if !set {
			return formkit.Fail("validation.recently_seen", "was used too recently", map[string]any{
				"field": in.Field,
			})
		}
		return nil
	}
}

// MemberOf builds a rule that fails unless the value is a member of the
// redis set at setKey, for allowlists maintained outside the process.
func MemberOf(c RedisCommander, setKey string) formkit.RuleFunc {
	return func(ctx context.Context, in formkit.Input) error {
		ok, err := c.SIsMember(ctx, setKey, fmt.Sprintf("%v", in.Value)).Result()
		if err != nil {
			return errors.Join(ErrQueryFailed, err)
		}
		if !ok {
			return formkit.Fail("validation.member_of", "is not allowed", map[string]any{
				"field": in.Field,
			})
		}
		return nil
	}
}

// RedisConfig configures the redis connection for rules owned here.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // ConnectionURL is in the form "redis://:password@localhost:6379/0".
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`                      // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`                     // RetryInterval is the interval between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`                   // ConnectTimeout bounds the whole connection phase.
}

// ConnectRedis establishes a redis client, retrying until the server answers
// a ping or the timeout elapses.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisURL, err)
	}

	for range cfg.RetryAttempts {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}
