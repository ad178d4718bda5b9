package weather

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/weather-outfit/pkg/errors"
)

// Service resolves current weather for a location, consulting the cache
// before the upstream provider.
type Service interface {
	Current(ctx context.Context, location string) (Observation, error)
}

type service struct {
	cfg    Config
	client Client
	store  Store
	logger *slog.Logger
}

// NewService is a wire provider for the weather domain.
func NewService(cfg Config, client Client, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		client: client,
		store:  store,
		logger: logger.With("component", "weather.service"),
	}
}

func (s *service) Current(ctx context.Context, location string) (Observation, error) {
	key := canonicalLocation(location)
	if key == "" {
		return Observation{}, apperrors.Wrap("invalid_input", "location cannot be empty", nil)
	}

	if cached, ok, err := s.store.Get(ctx, key); err != nil {
		s.logger.Warn("weather cache lookup failed", "location", key, "error", err)
	} else if ok {
		s.logger.Debug("weather cache hit", "location", key)
		return cached, nil
	}

	obs, err := s.client.Fetch(ctx, key)
	if err != nil {
		return Observation{}, apperrors.Wrap("weather_error", "failed to fetch weather data", err)
	}

	if err := s.store.Save(ctx, key, obs, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("weather cache save failed", "location", key, "error", err)
	}
	s.logger.Info("weather fetched", "location", key, "condition", obs.Condition)
	return obs, nil
}

func canonicalLocation(location string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(location)), " "))
}
