package infrastructure

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"content-service/internal/config"
)

const unreadCountTTL = 10 * time.Minute

// RedisService caches per-user unread notification counts. When Redis is
// not configured or unreachable the service runs with a nil client and
// every operation is a no-op, so callers never branch on availability.
type RedisService struct {
	client *redis.Client
}

func NewRedisService(cfg config.RedisConfig) *RedisService {
	if !cfg.Configured() {
		return &RedisService{client: nil}
	}

	var client *redis.Client
	if cfg.URL != "" {
		opt, err := redis.ParseURL(cfg.URL)
		if err != nil {
			log.Printf("Invalid REDIS_URL, caching disabled: %v", err)
			return &RedisService{client: nil}
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection failed, caching disabled: %v", err)
		return &RedisService{client: nil}
	}

	log.Println("Connected to Redis")
	return &RedisService{client: client}
}

func (r *RedisService) Enabled() bool {
	return r.client != nil
}

// GetUnreadCount returns (count, true) on a cache hit and (0, false) on a
// miss or when caching is disabled.
func (r *RedisService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, bool) {
	if r.client == nil {
		return 0, false
	}
	value, err := r.client.Get(ctx, unreadCountKey(userID)).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

func (r *RedisService) SetUnreadCount(ctx context.Context, userID uuid.UUID, count int64) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, unreadCountKey(userID), count, unreadCountTTL).Err()
}

// InvalidateUnreadCount drops the cached count after any write that changes
// a user's notifications.
func (r *RedisService) InvalidateUnreadCount(ctx context.Context, userID uuid.UUID) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, unreadCountKey(userID)).Err()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

func unreadCountKey(userID uuid.UUID) string {
	return "unread:" + userID.String()
}
