package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const Version = "1.0.0"

// Pinger is satisfied by the backend API client.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Endpoints struct {
	Backend Pinger
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {
	checks := []health.Config{
		{
			Name:      "backend",
			Timeout:   5 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if endpoints == nil || endpoints.Backend == nil {
					return fmt.Errorf("backend client is not initialized")
				}

				if err := endpoints.Backend.Ping(ctx); err != nil {
					return fmt.Errorf("failed to reach backend: %w", err)
				}

				return nil
			},
		},
	}

	if cfg.UsesRedis() {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: cfg.Session.Backend != "redis",
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: Version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
