package cmd

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/april2040/singularity-calendar/internal/api"
	"github.com/april2040/singularity-calendar/internal/config"
	"github.com/april2040/singularity-calendar/internal/content"
	"github.com/april2040/singularity-calendar/internal/coordinator"
)

// app holds the process-wide collaborators. There is exactly one per run.
type app struct {
	cfg    *config.Config
	client *api.Client
	coord  *coordinator.Coordinator
}

var (
	appOnce sync.Once
	appInst *app
	appErr  error
)

// getApp builds the app on first use and returns the same instance after.
func getApp() (*app, error) {
	appOnce.Do(func() {
		appInst, appErr = newApp(flagConfig, logger)
	})
	return appInst, appErr
}

func newApp(configPath string, log *zap.Logger) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	client := api.New(clientConfig(cfg), api.WithLogger(log.Named("api")))
	coord := coordinator.New(client, content.NewGenerator(),
		coordinator.WithLogger(log.Named("coordinator")),
		coordinator.WithHistoryType(cfg.GetHistoryType()))

	return &app{cfg: cfg, client: client, coord: coord}, nil
}

func clientConfig(cfg *config.Config) api.Config {
	return api.Config{
		BaseURL: cfg.API.BaseURL,
		Endpoints: api.Endpoints{
			Today:   cfg.API.Endpoints.Today,
			History: cfg.API.Endpoints.History,
			Weekly:  cfg.API.Endpoints.Weekly,
			News:    cfg.API.Endpoints.News,
		},
		Timeout:    cfg.TimeoutDuration(),
		MaxRetries: cfg.RetryCount(),
		Breaker: api.BreakerConfig{
			Enabled:      cfg.API.Breaker.Enabled,
			MinRequests:  cfg.API.Breaker.MinRequests,
			FailureRatio: cfg.API.Breaker.FailureRatio,
			OpenTimeout:  cfg.BreakerOpenTimeout(),
		},
	}
}
