package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ilm-med/internal/config"
	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/models"
	"github.com/redis/go-redis/v9"
)

const (
	roleCacheKeyPrefix = "ilm-med:user-role:"

	// invalidatedMarker replaces a dropped entry for invalidationHold.
	// SetUser only writes absent keys, so a lookup that read the store
	// before a role change cannot put the old role back while it is held.
	invalidatedMarker = "invalidated"
	invalidationHold  = 30 * time.Second
)

// cachedRole is the value stored per email.
type cachedRole struct {
	Role   string `json:"role"`
	Status string `json:"status"`
}

// redisRoleCache is a Redis-backed [RoleCache]. Entries expire after the
// ttl passed to SetUser and are replaced by an invalidation marker on every
// role or status change.
type redisRoleCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisClient connects to the cache described by cfg and pings it.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting role cache (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting role cache: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Str("addr", cfg.Address).Msg("connected to role cache successfully")

	return client, nil
}

func NewRoleCache(client *redis.Client, logger *logger.Logger) RoleCache {
	logger.Debug().Msg("creating role cache")
	return &redisRoleCache{client: client, logger: logger}
}

func roleCacheKey(email string) string {
	return roleCacheKeyPrefix + email
}

func (c *redisRoleCache) GetUser(ctx context.Context, email string) (models.User, error) {
	raw, err := c.client.Get(ctx, roleCacheKey(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.User{}, ErrCacheMiss
	}
	if err != nil {
		return models.User{}, fmt.Errorf("reading role cache: %w", err)
	}
	if string(raw) == invalidatedMarker {
		return models.User{}, ErrCacheMiss
	}

	var cached cachedRole
	if err = json.Unmarshal(raw, &cached); err != nil {
		return models.User{}, fmt.Errorf("decoding cached role: %w", err)
	}

	return models.User{Email: email, Role: cached.Role, Status: cached.Status}, nil
}

func (c *redisRoleCache) SetUser(ctx context.Context, user models.User, ttl time.Duration) error {
	raw, err := json.Marshal(cachedRole{Role: user.Role, Status: user.Status})
	if err != nil {
		return fmt.Errorf("encoding cached role: %w", err)
	}
	// NX: an existing entry or a fresh invalidation marker wins
	if err = c.client.SetNX(ctx, roleCacheKey(user.Email), raw, ttl).Err(); err != nil {
		return fmt.Errorf("writing role cache: %w", err)
	}
	return nil
}

func (c *redisRoleCache) Invalidate(ctx context.Context, email string) error {
	if err := c.client.Set(ctx, roleCacheKey(email), invalidatedMarker, invalidationHold).Err(); err != nil {
		return fmt.Errorf("invalidating role cache: %w", err)
	}
	return nil
}
