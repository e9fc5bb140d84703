package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/cache"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/config"
	"github.com/redis/go-redis/v9"
)

// LoginLimiter counts login attempts per e-mail in a sliding window.
type LoginLimiter interface {
	// Allow records an attempt. When the window is full it reports false and how
	// long until the oldest attempt leaves the window.
	Allow(ctx context.Context, email string) (allowed bool, remaining int, retryAfter time.Duration, err error)
	Reset(ctx context.Context, email string) error
}

func limiterKey(email string) string {
	return "login_attempts:" + strings.ToLower(strings.TrimSpace(email))
}

type redisLoginLimiter struct {
	client    *redis.Client
	cfg       config.LoginLimit
	namespace string
	now       func() time.Time
}

func NewRedisLoginLimiter(client *redis.Client, cfg config.LoginLimit, namespace string) LoginLimiter {
	return &redisLoginLimiter{client: client, cfg: cfg, namespace: namespace, now: time.Now}
}

func (r *redisLoginLimiter) key(email string) string {
	return cache.Key(r.namespace, limiterKey(email))
}

func (r *redisLoginLimiter) Allow(ctx context.Context, email string) (bool, int, time.Duration, error) {
	if r.cfg.MaxAttempts <= 0 {
		return true, 0, 0, nil
	}

	key := r.key(email)
	now := r.now()

	// only attempts after windowStart are counted
	windowStart := now.Add(-r.cfg.Window).UnixNano()

	pipe := r.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		slog.Error("Redis pipeline execution failed for login limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for login limit check: %w", err)
	}

	attempts := int(count.Val())
	if attempts <= r.cfg.MaxAttempts {
		return true, r.cfg.MaxAttempts - attempts, 0, nil
	}

	scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).Result()
	if err != nil || len(scores) == 0 {
		slog.Error("Failed to get oldest login attempt", slog.String("key", key), slog.Any("error", err))
		return false, 0, r.cfg.Window, fmt.Errorf("failed to get oldest attempt time: %w", err)
	}

	oldest := time.Unix(0, int64(scores[0].Score))
	retryAfter := max(oldest.Add(r.cfg.Window).Sub(now), 0)

	slog.Warn("Login attempts exceeded", slog.String("key", key), slog.Int("attempts", attempts))

	return false, 0, retryAfter, nil
}

func (r *redisLoginLimiter) Reset(ctx context.Context, email string) error {
	if err := r.client.Del(ctx, r.key(email)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}

	return nil
}

type memoryLoginLimiter struct {
	mu       sync.Mutex
	cfg      config.LoginLimit
	attempts map[string][]time.Time
	now      func() time.Time
}

// NewMemoryLoginLimiter keeps attempts in process memory, for terminals without redis.
func NewMemoryLoginLimiter(cfg config.LoginLimit) LoginLimiter {
	return &memoryLoginLimiter{cfg: cfg, attempts: make(map[string][]time.Time), now: time.Now}
}

func (m *memoryLoginLimiter) Allow(_ context.Context, email string) (bool, int, time.Duration, error) {
	if m.cfg.MaxAttempts <= 0 {
		return true, 0, 0, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := limiterKey(email)
	now := m.now()
	windowStart := now.Add(-m.cfg.Window)

	kept := m.attempts[key][:0]
	for _, at := range m.attempts[key] {
		if at.After(windowStart) {
			kept = append(kept, at)
		}
	}

	kept = append(kept, now)
	m.attempts[key] = kept

	if len(kept) <= m.cfg.MaxAttempts {
		return true, m.cfg.MaxAttempts - len(kept), 0, nil
	}

	return false, 0, max(kept[0].Add(m.cfg.Window).Sub(now), 0), nil
}

func (m *memoryLoginLimiter) Reset(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.attempts, limiterKey(email))

	return nil
}
