package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/cache"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/config"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client    *redis.Client
	namespace string
}

func NewRedisStore(client *redis.Client, namespace string) *RedisStore {
	return &RedisStore{client: client, namespace: namespace}
}

// NewRedisClient connects and pings before returning.
func NewRedisClient(cfg *config.RedisConnect) (*redis.Client, error) {

	slog.Info("Connecting to Redis", slog.String("host", cfg.Host), slog.String("port", cfg.Port), slog.Int("db", cfg.DB))

	opt, err := redis.ParseURL(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")

	return client, nil
}

func (s *RedisStore) key(name string) string {
	return cache.Key(s.namespace, "session", name)
}

func (s *RedisStore) get(ctx context.Context, name string) (string, error) {
	val, err := s.client.Get(ctx, s.key(name)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to read %s from redis: %w", name, err)
	}

	return val, nil
}

func (s *RedisStore) Token(ctx context.Context) (string, error) {
	return s.get(ctx, TokenKey)
}

func (s *RedisStore) UserName(ctx context.Context) (string, error) {
	return s.get(ctx, UserNameKey)
}

func (s *RedisStore) Save(ctx context.Context, token, userName string) error {
	err := s.client.MSet(ctx, s.key(TokenKey), token, s.key(UserNameKey), userName).Err()
	if err != nil {
		return fmt.Errorf("failed to save session to redis: %w", err)
	}

	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key(TokenKey), s.key(UserNameKey)).Err(); err != nil {
		return fmt.Errorf("failed to clear session in redis: %w", err)
	}

	return nil
}
