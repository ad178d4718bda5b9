package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Weather  WeatherConfig  `yaml:"weather"`
	Engine   EngineConfig   `yaml:"engine"`
	Wardrobe WardrobeConfig `yaml:"wardrobe"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// WeatherConfig contains provider and cache settings.
type WeatherConfig struct {
	APIKey   string        `yaml:"apiKey"`
	BaseURL  string        `yaml:"baseUrl"`
	CacheTTL time.Duration `yaml:"cacheTtl"`
	Redis    RedisConfig   `yaml:"redis"`
}

// RedisConfig contains connection information for the shared cache.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// EngineConfig exposes the recommendation policy knobs so band cut points
// can be tuned without touching selection logic.
type EngineConfig struct {
	Bands BandsConfig `yaml:"bands"`
	Wind  WindConfig  `yaml:"wind"`
}

// BandsConfig holds the Celsius upper bounds of each temperature band.
type BandsConfig struct {
	ColdBelow float64 `yaml:"coldBelow"`
	CoolBelow float64 `yaml:"coolBelow"`
	MildBelow float64 `yaml:"mildBelow"`
	WarmBelow float64 `yaml:"warmBelow"`
}

// WindConfig holds the km/h lower bounds of the breezy and windy bands.
type WindConfig struct {
	BreezyAtKmh float64 `yaml:"breezyAtKmh"`
	WindyAtKmh  float64 `yaml:"windyAtKmh"`
}

// WardrobeConfig contains wardrobe storage settings.
type WardrobeConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("OPENWEATHER_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv("WEATHER_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Weather.CacheTTL = parsed
		}
	}
	if v := os.Getenv("WEATHER_REDIS_ENABLED"); v != "" {
		cfg.Weather.Redis.Enabled = isTruthy(v)
	}
	if v := os.Getenv("WEATHER_REDIS_ADDR"); v != "" {
		cfg.Weather.Redis.Addr = v
	}
	if v := os.Getenv("WARDROBE_POSTGRES_DSN"); v != "" {
		cfg.Wardrobe.Postgres.DSN = v
	}
	if v := os.Getenv("WARDROBE_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Wardrobe.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("WARDROBE_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Wardrobe.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("ENGINE_BAND_COLD_BELOW"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.Bands.ColdBelow = parsed
		}
	}
	if v := os.Getenv("ENGINE_BAND_COOL_BELOW"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.Bands.CoolBelow = parsed
		}
	}
	if v := os.Getenv("ENGINE_BAND_MILD_BELOW"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.Bands.MildBelow = parsed
		}
	}
	if v := os.Getenv("ENGINE_BAND_WARM_BELOW"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.Bands.WarmBelow = parsed
		}
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func isTruthy(value string) bool {
	return value == "1" || strings.EqualFold(value, "true")
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Weather: WeatherConfig{
			BaseURL:  "https://api.openweathermap.org/data/2.5",
			CacheTTL: 10 * time.Minute,
		},
		Engine: EngineConfig{
			Bands: BandsConfig{
				ColdBelow: 5,
				CoolBelow: 12,
				MildBelow: 20,
				WarmBelow: 28,
			},
			Wind: WindConfig{
				BreezyAtKmh: 15,
				WindyAtKmh:  30,
			},
		},
		Wardrobe: WardrobeConfig{
			Postgres: PostgresConfig{
				MaxConns: 4,
				MinConns: 0,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.Weather.BaseURL == "" {
		return errors.New("weather.baseUrl cannot be empty")
	}
	if c.Weather.CacheTTL < 0 {
		return errors.New("weather.cacheTtl cannot be negative")
	}
	if c.Weather.Redis.Enabled && strings.TrimSpace(c.Weather.Redis.Addr) == "" {
		return errors.New("weather.redis.addr cannot be empty when the cache is enabled")
	}
	bands := c.Engine.Bands
	if !(bands.ColdBelow < bands.CoolBelow && bands.CoolBelow < bands.MildBelow && bands.MildBelow < bands.WarmBelow) {
		return errors.New("engine.bands thresholds must be strictly increasing")
	}
	if !(c.Engine.Wind.BreezyAtKmh > 0 && c.Engine.Wind.BreezyAtKmh < c.Engine.Wind.WindyAtKmh) {
		return errors.New("engine.wind thresholds must be positive and increasing")
	}
	return nil
}
