package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 10*time.Minute, cfg.Weather.CacheTTL)
	require.Equal(t, 5.0, cfg.Engine.Bands.ColdBelow)
	require.Equal(t, 28.0, cfg.Engine.Bands.WarmBelow)
	require.True(t, cfg.HTTP.RateLimit.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDRESS", ":9999")
	t.Setenv("OPENWEATHER_API_KEY", "secret")
	t.Setenv("WEATHER_CACHE_TTL", "30s")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("ENGINE_BAND_COLD_BELOW", "0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.HTTP.Address)
	require.Equal(t, "secret", cfg.Weather.APIKey)
	require.Equal(t, 30*time.Second, cfg.Weather.CacheTTL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, 0.0, cfg.Engine.Bands.ColdBelow)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty address", func(c *Config) { c.HTTP.Address = "" }},
		{"non increasing bands", func(c *Config) { c.Engine.Bands.CoolBelow = c.Engine.Bands.ColdBelow }},
		{"inverted wind thresholds", func(c *Config) { c.Engine.Wind.WindyAtKmh = c.Engine.Wind.BreezyAtKmh - 1 }},
		{"rate limit without budget", func(c *Config) { c.HTTP.RateLimit.RequestsPerMinute = 0 }},
		{"redis enabled without addr", func(c *Config) { c.Weather.Redis.Enabled = true }},
		{"negative cache ttl", func(c *Config) { c.Weather.CacheTTL = -time.Second }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
