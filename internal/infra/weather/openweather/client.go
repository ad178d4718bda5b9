package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yanqian/weather-outfit/internal/domain/weather"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client fetches current conditions from OpenWeatherMap.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient builds an API client. The API key is mandatory.
func NewClient(apiKey, baseURL string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openweather api key cannot be empty")
	}
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}, nil
}

// Fetch retrieves the current observation for a location.
func (c *Client) Fetch(ctx context.Context, location string) (weather.Observation, error) {
	endpoint := fmt.Sprintf("%s/weather?q=%s&units=metric&appid=%s", c.baseURL, url.QueryEscape(location), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Observation{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Observation{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Observation{}, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Observation{}, fmt.Errorf("read weather response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return weather.Observation{}, fmt.Errorf("decode weather response: %w", err)
	}

	return c.normalize(location, raw), nil
}

type apiResponse struct {
	Name    string       `json:"name"`
	Weather []conditions `json:"weather"`
	Main    mainBlock    `json:"main"`
	Wind    windBlock    `json:"wind"`
	Dt      int64        `json:"dt"`
}

type conditions struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type mainBlock struct {
	Temp *float64 `json:"temp"`
}

type windBlock struct {
	// Metric responses report wind in m/s.
	Speed *float64 `json:"speed"`
}

func (c *Client) normalize(requested string, raw apiResponse) weather.Observation {
	obs := weather.Observation{
		Location:     requested,
		TemperatureC: raw.Main.Temp,
		ObservedAt:   c.now().UTC(),
		Source:       "openweathermap",
	}
	if raw.Name != "" {
		obs.Location = raw.Name
	}
	if len(raw.Weather) > 0 {
		obs.Condition = raw.Weather[0].Main
		obs.Description = raw.Weather[0].Description
	}
	if raw.Wind.Speed != nil {
		kmh := *raw.Wind.Speed * 3.6
		obs.WindSpeedKMH = &kmh
	}
	if raw.Dt > 0 {
		obs.ObservedAt = time.Unix(raw.Dt, 0).UTC()
	}
	return obs
}

var _ weather.Client = (*Client)(nil)
