package professional

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wellnest/models"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned by a DirectoryCache when the key is absent.
var ErrCacheMiss = errors.New("directory cache miss")

// DirectoryCache stores professional id -> user id lookups.
type DirectoryCache interface {
	Get(ctx context.Context, id models.ProfessionalID) (models.ProfessionalUserID, error)
	Set(ctx context.Context, id models.ProfessionalID, userID models.ProfessionalUserID) error
}

type RedisDirectoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDirectoryCache(client *redis.Client, ttl time.Duration) DirectoryCache {
	return &RedisDirectoryCache{client: client, ttl: ttl}
}

const cacheKeyPrefix = "professional:user:"

func directoryKey(id models.ProfessionalID) string {
	return fmt.Sprintf("%s%s", cacheKeyPrefix, id)
}

func (c *RedisDirectoryCache) Get(ctx context.Context, id models.ProfessionalID) (models.ProfessionalUserID, error) {
	val, err := c.client.Get(ctx, directoryKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return models.ProfessionalUserID(val), nil
}

func (c *RedisDirectoryCache) Set(ctx context.Context, id models.ProfessionalID, userID models.ProfessionalUserID) error {
	return c.client.Set(ctx, directoryKey(id), string(userID), c.ttl).Err()
}
