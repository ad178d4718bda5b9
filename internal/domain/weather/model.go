package weather

import (
	"context"
	"time"
)

// Observation is the canonical record supplied by the weather provider.
// Pointer fields stay nil when the provider omitted the reading; consumers
// are expected to degrade rather than fail.
type Observation struct {
	Location     string    `json:"location"`
	TemperatureC *float64  `json:"temperatureC,omitempty"`
	Condition    string    `json:"condition"`
	Description  string    `json:"description,omitempty"`
	WindSpeedKMH *float64  `json:"windSpeedKmh,omitempty"`
	ObservedAt   time.Time `json:"observedAt"`
	Source       string    `json:"source,omitempty"`
}

// Client fetches current conditions from an upstream provider.
type Client interface {
	Fetch(ctx context.Context, location string) (Observation, error)
}

// Store caches observations keyed by canonical location with a TTL.
type Store interface {
	Get(ctx context.Context, location string) (Observation, bool, error)
	Save(ctx context.Context, location string, obs Observation, ttl time.Duration) error
}

// Config wires runtime settings for the weather domain.
type Config struct {
	CacheTTL time.Duration
}
