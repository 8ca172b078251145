// Package cache fournit l'adaptateur Redis du cache de reporting.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/atelier-ceremonie/location-api/internal/application/rapport"
	"github.com/atelier-ceremonie/location-api/pkg/config"
	"github.com/atelier-ceremonie/location-api/pkg/logger"
)

var _ rapport.Cache = (*RedisCache)(nil)

// RedisCache cache clé/valeur sur Redis. Les erreurs Redis sont loguées et
// avalées : un cache en panne dégrade les performances, pas le service.
type RedisCache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisCache ouvre la connexion et vérifie le ping.
func NewRedisCache(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{client: client, log: log}, nil
}

// Get lit une clé. (nil, false) en cas d'absence ou d'erreur.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("cle", key).Msg("lecture cache redis")
		}
		return nil, false
	}
	return raw, true
}

// Set écrit une clé avec TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("cle", key).Msg("écriture cache redis")
	}
}

// Close ferme la connexion.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
