package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/ilm-med/internal/config"
	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCacheKey(t *testing.T) {
	assert.Equal(t, "ilm-med:user-role:a@b.com", roleCacheKey("a@b.com"))
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisClient(ctx, config.Cache{Address: "127.0.0.1:1"}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error connecting role cache")
}

func TestRedisRoleCache_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()
	cache := NewRoleCache(client, logger.Nop())
	ctx := context.Background()

	_, err := cache.GetUser(ctx, "a@b.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)

	assert.Error(t, cache.SetUser(ctx, models.User{Email: "a@b.com", Role: models.RoleAdmin}, time.Minute))
	assert.Error(t, cache.Invalidate(ctx, "a@b.com"))
}

func newMiniRoleCache(t *testing.T) (RoleCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRoleCache(client, logger.Nop()), mr
}

func TestRedisRoleCache_SetGet(t *testing.T) {
	cache, mr := newMiniRoleCache(t)
	ctx := context.Background()

	_, err := cache.GetUser(ctx, "a@b.com")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.SetUser(ctx, models.User{Email: "a@b.com", Role: models.RoleAdmin, Status: models.StatusActive}, time.Minute))

	got, err := cache.GetUser(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, models.User{Email: "a@b.com", Role: models.RoleAdmin, Status: models.StatusActive}, got)

	mr.FastForward(2 * time.Minute)
	_, err = cache.GetUser(ctx, "a@b.com")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

// A lookup that read the user before a role change and writes the cache
// after the invalidation must not bring the old role back.
func TestRedisRoleCache_StaleWriteAfterInvalidate(t *testing.T) {
	cache, mr := newMiniRoleCache(t)
	ctx := context.Background()
	stale := models.User{Email: "a@b.com", Role: models.RoleAdmin, Status: models.StatusActive}

	require.NoError(t, cache.Invalidate(ctx, "a@b.com"))
	require.NoError(t, cache.SetUser(ctx, stale, time.Hour))

	_, err := cache.GetUser(ctx, "a@b.com")
	require.ErrorIs(t, err, ErrCacheMiss)

	// once the hold is over, the next fresh read fills the cache again
	mr.FastForward(invalidationHold + time.Second)
	fresh := models.User{Email: "a@b.com", Role: models.RoleUser, Status: models.StatusActive}
	require.NoError(t, cache.SetUser(ctx, fresh, time.Hour))

	got, err := cache.GetUser(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, got.Role)
}

// A stale entry written before the invalidation is replaced by it.
func TestRedisRoleCache_InvalidateReplacesEntry(t *testing.T) {
	cache, _ := newMiniRoleCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetUser(ctx, models.User{Email: "a@b.com", Role: models.RoleAdmin}, time.Hour))
	require.NoError(t, cache.Invalidate(ctx, "a@b.com"))

	_, err := cache.GetUser(ctx, "a@b.com")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
