package weathercache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/weather-outfit/internal/domain/weather"
)

// ValkeyStore caches observations in a Valkey-compatible database so
// replicas share one provider quota.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "weather"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements weather.Store.
func (s *ValkeyStore) Get(ctx context.Context, location string) (weather.Observation, bool, error) {
	if location == "" {
		return weather.Observation{}, false, nil
	}
	cmd := s.client.B().Get().Key(s.key(location)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return weather.Observation{}, false, nil
		}
		return weather.Observation{}, false, err
	}
	var obs weather.Observation
	if err := json.Unmarshal([]byte(payload), &obs); err != nil {
		return weather.Observation{}, false, err
	}
	return obs, true, nil
}

// Save implements weather.Store.
func (s *ValkeyStore) Save(ctx context.Context, location string, obs weather.Observation, ttl time.Duration) error {
	if location == "" {
		return nil
	}
	payload, err := json.Marshal(obs)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.key(location)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) key(location string) string {
	return fmt.Sprintf("%s:obs:%s", s.prefix, location)
}

var _ weather.Store = (*ValkeyStore)(nil)
