package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"hotel-frontdesk/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const pingTimeout = 5 * time.Second

// NewRedisClient connects to the cache and checks that the server answers.
// Dial and command failures after startup are reported through log.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	client.AddHook(commandLogger{log: log})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis at %s: %w", addr, err)
	}

	log.WithFields(logrus.Fields{"addr": addr, "db": cfg.DB, "cache_ttl": cfg.CacheTTL}).Info("Connected to Redis")
	return client, nil
}

// commandLogger logs failed dials and commands. A cache miss (redis.Nil) is not a failure.
type commandLogger struct {
	log *logrus.Logger
}

func (h commandLogger) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			h.log.WithField("addr", addr).Warnf("Redis dial failed: %v", err)
		}
		return conn, err
	}
}

func (h commandLogger) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			h.log.WithField("command", cmd.Name()).Debugf("Redis command failed: %v", err)
		}
		return err
	}
}

func (h commandLogger) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			h.log.WithField("commands", len(cmds)).Debugf("Redis pipeline failed: %v", err)
		}
		return err
	}
}
