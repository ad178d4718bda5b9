package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/weather-outfit/internal/domain/outfit"
	"github.com/yanqian/weather-outfit/internal/domain/wardrobe"
	"github.com/yanqian/weather-outfit/internal/domain/weather"
	"github.com/yanqian/weather-outfit/internal/infra/config"
	"github.com/yanqian/weather-outfit/internal/infra/wardroberepo"
	"github.com/yanqian/weather-outfit/internal/infra/weather/openweather"
	"github.com/yanqian/weather-outfit/internal/infra/weathercache"
)

func provideEngineConfig(cfg *config.Config) outfit.Config {
	return outfit.Config{
		Bands: outfit.BandThresholds{
			ColdBelow: cfg.Engine.Bands.ColdBelow,
			CoolBelow: cfg.Engine.Bands.CoolBelow,
			MildBelow: cfg.Engine.Bands.MildBelow,
			WarmBelow: cfg.Engine.Bands.WarmBelow,
		},
		Wind: outfit.WindThresholds{
			BreezyAt: cfg.Engine.Wind.BreezyAtKmh,
			WindyAt:  cfg.Engine.Wind.WindyAtKmh,
		},
	}
}

func provideWeatherConfig(cfg *config.Config) weather.Config {
	return weather.Config{CacheTTL: cfg.Weather.CacheTTL}
}

func provideWeatherClient(cfg *config.Config) (weather.Client, error) {
	return openweather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL)
}

func provideWeatherStore(cfg *config.Config, logger *slog.Logger) weather.Store {
	if cfg.Weather.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return weathercache.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return weathercache.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("weather valkey cache enabled", "addr", cfg.Weather.Redis.Addr)
			return weathercache.NewValkeyStore(client, "weather")
		}
	}
	return weathercache.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Weather.Redis.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Weather.Redis.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Weather.Redis.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideWardrobeRepository(cfg *config.Config, logger *slog.Logger) wardrobe.Repository {
	fallback := wardroberepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Wardrobe.Postgres.DSN)
	if dsn == "" {
		logger.Info("wardrobe postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Wardrobe.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Wardrobe.Postgres.MaxConns
	}
	if cfg.Wardrobe.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Wardrobe.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("wardrobe postgres repository enabled")
	return wardroberepo.NewPostgresRepository(pool)
}
