package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/weather-outfit/pkg/errors"
)

type stubClient struct {
	obs    Observation
	err    error
	calls  int
	lastIn string
}

func (c *stubClient) Fetch(_ context.Context, location string) (Observation, error) {
	c.calls++
	c.lastIn = location
	return c.obs, c.err
}

type stubStore struct {
	cached   Observation
	hit      bool
	getErr   error
	saveErr  error
	saved    map[string]Observation
	savedTTL time.Duration
}

func (s *stubStore) Get(context.Context, string) (Observation, bool, error) {
	return s.cached, s.hit, s.getErr
}

func (s *stubStore) Save(_ context.Context, location string, obs Observation, ttl time.Duration) error {
	if s.saved == nil {
		s.saved = make(map[string]Observation)
	}
	s.saved[location] = obs
	s.savedTTL = ttl
	return s.saveErr
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCurrentCacheMissFetchesAndSaves(t *testing.T) {
	temp := 7.5
	client := &stubClient{obs: Observation{Location: "London", TemperatureC: &temp, Condition: "Rain"}}
	store := &stubStore{}
	svc := NewService(Config{CacheTTL: 10 * time.Minute}, client, store, newTestLogger())

	obs, err := svc.Current(context.Background(), "  London ")
	require.NoError(t, err)
	require.Equal(t, "London", obs.Location)
	require.Equal(t, 1, client.calls)
	require.Equal(t, "london", client.lastIn)
	require.Contains(t, store.saved, "london")
	require.Equal(t, 10*time.Minute, store.savedTTL)
}

func TestCurrentCacheHitSkipsProvider(t *testing.T) {
	client := &stubClient{}
	store := &stubStore{cached: Observation{Location: "London", Condition: "Clouds"}, hit: true}
	svc := NewService(Config{CacheTTL: time.Minute}, client, store, newTestLogger())

	obs, err := svc.Current(context.Background(), "London")
	require.NoError(t, err)
	require.Equal(t, "Clouds", obs.Condition)
	require.Zero(t, client.calls)
}

func TestCurrentEmptyLocation(t *testing.T) {
	svc := NewService(Config{}, &stubClient{}, &stubStore{}, newTestLogger())

	_, err := svc.Current(context.Background(), "   ")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestCurrentProviderFailure(t *testing.T) {
	client := &stubClient{err: errors.New("upstream down")}
	svc := NewService(Config{}, client, &stubStore{}, newTestLogger())

	_, err := svc.Current(context.Background(), "London")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "weather_error"))
}

func TestCurrentCacheErrorsAreNonFatal(t *testing.T) {
	client := &stubClient{obs: Observation{Location: "Paris"}}
	store := &stubStore{getErr: errors.New("cache down"), saveErr: errors.New("cache down")}
	svc := NewService(Config{CacheTTL: time.Minute}, client, store, newTestLogger())

	obs, err := svc.Current(context.Background(), "Paris")
	require.NoError(t, err)
	require.Equal(t, "Paris", obs.Location)
	require.Equal(t, 1, client.calls)
}
