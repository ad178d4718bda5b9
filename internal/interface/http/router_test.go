package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-outfit/internal/domain/outfit"
	"github.com/yanqian/weather-outfit/internal/domain/wardrobe"
	"github.com/yanqian/weather-outfit/internal/domain/weather"
	"github.com/yanqian/weather-outfit/internal/infra/config"
	apperrors "github.com/yanqian/weather-outfit/pkg/errors"
)

func TestRouter_RecommendSuccess(t *testing.T) {
	resp := outfit.Response{
		Location: "London",
		Recommendation: outfit.Recommendation{
			Weather:  outfit.Snapshot{Band: wardrobe.WarmthCool, Precipitating: true},
			Occasion: "casual",
			Tier:     wardrobe.FormalityCasual,
			Outfit: map[string]wardrobe.Item{
				"top": {ID: "1", Name: "flannel", Garment: wardrobe.GarmentTop, Warmth: wardrobe.WarmthCool},
			},
			Rationale: []outfit.RationaleEntry{
				{Garment: wardrobe.GarmentTop, Reason: "rated for cool weather"},
			},
		},
	}
	svc := &stubOutfitService{
		recommendFn: func(ctx context.Context, req outfit.Request) (outfit.Response, error) {
			require.Equal(t, "london", req.Location)
			require.Equal(t, "casual", req.Occasion)
			return resp, nil
		},
	}

	recorder := performPost("/api/v1/recommendations", `{"location":"london","occasion":"casual"}`, newRouterUnderTest(t, svc, nil, nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got outfit.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "London", got.Location)
	require.Equal(t, wardrobe.WarmthCool, got.Weather.Band)
	require.Equal(t, "flannel", got.Outfit["top"].Name)
	require.Len(t, got.Rationale, 1)
}

func TestRouter_RecommendMissingLocation(t *testing.T) {
	recorder := performPost("/api/v1/recommendations", `{"occasion":"casual"}`, newRouterUnderTest(t, &stubOutfitService{}, nil, nil))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_RecommendEmptyWardrobe(t *testing.T) {
	svc := &stubOutfitService{
		recommendFn: func(context.Context, outfit.Request) (outfit.Response, error) {
			return outfit.Response{}, apperrors.Wrap("empty_wardrobe", "no recommendation possible - wardrobe is empty", outfit.ErrEmptyWardrobe)
		},
	}

	recorder := performPost("/api/v1/recommendations", `{"location":"london"}`, newRouterUnderTest(t, svc, nil, nil))
	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	require.Equal(t, "empty_wardrobe", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_RecommendInfeasibleOutfit(t *testing.T) {
	svc := &stubOutfitService{
		recommendFn: func(context.Context, outfit.Request) (outfit.Response, error) {
			err := &outfit.InfeasibleOutfitError{Missing: wardrobe.GarmentShoes}
			return outfit.Response{}, apperrors.Wrap("infeasible_outfit", err.Error(), err)
		},
	}

	recorder := performPost("/api/v1/recommendations", `{"location":"london"}`, newRouterUnderTest(t, svc, nil, nil))
	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "infeasible_outfit", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "shoes")
}

func TestRouter_RecommendWeatherUnavailable(t *testing.T) {
	svc := &stubOutfitService{
		recommendFn: func(context.Context, outfit.Request) (outfit.Response, error) {
			return outfit.Response{}, apperrors.Wrap("weather_error", "failed to fetch weather data", nil)
		},
	}

	recorder := performPost("/api/v1/recommendations", `{"location":"london"}`, newRouterUnderTest(t, svc, nil, nil))
	require.Equal(t, http.StatusBadGateway, recorder.Code)
	require.Equal(t, "weather_error", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_CurrentWeather(t *testing.T) {
	temp := 3.0
	weatherSvc := &stubWeatherSvc{
		currentFn: func(ctx context.Context, location string) (weather.Observation, error) {
			require.Equal(t, "london", location)
			return weather.Observation{Location: "London", TemperatureC: &temp, Condition: "Rain"}, nil
		},
	}

	recorder := performGet("/api/v1/weather/london", newRouterUnderTest(t, nil, weatherSvc, nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Observation weather.Observation `json:"observation"`
		Snapshot    outfit.Snapshot     `json:"snapshot"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "London", body.Observation.Location)
	require.Equal(t, wardrobe.WarmthCold, body.Snapshot.Band)
	require.True(t, body.Snapshot.Precipitating)
}

func TestRouter_CurrentWeatherUpstreamFailure(t *testing.T) {
	weatherSvc := &stubWeatherSvc{
		currentFn: func(context.Context, string) (weather.Observation, error) {
			return weather.Observation{}, apperrors.Wrap("weather_error", "failed to fetch weather data", nil)
		},
	}

	recorder := performGet("/api/v1/weather/london", newRouterUnderTest(t, nil, weatherSvc, nil))
	require.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestRouter_AddWardrobeItem(t *testing.T) {
	wardrobeSvc := &stubWardrobeSvc{
		addFn: func(ctx context.Context, input wardrobe.ItemInput) (wardrobe.Item, error) {
			require.Equal(t, "raincoat", input.Name)
			return wardrobe.Item{ID: "abc", Name: input.Name, Garment: wardrobe.GarmentOuterwear, Waterproof: true}, nil
		},
	}

	recorder := performPost("/api/v1/wardrobe/items", `{"name":"raincoat","garmentType":"outerwear","warmthLevel":"cool","waterproof":true}`, newRouterUnderTest(t, nil, nil, wardrobeSvc))
	require.Equal(t, http.StatusCreated, recorder.Code)

	var body struct {
		Item wardrobe.Item `json:"item"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, "abc", body.Item.ID)
	require.True(t, body.Item.Waterproof)
}

func TestRouter_AddWardrobeItemInvalidInput(t *testing.T) {
	wardrobeSvc := &stubWardrobeSvc{
		addFn: func(context.Context, wardrobe.ItemInput) (wardrobe.Item, error) {
			return wardrobe.Item{}, apperrors.Wrap("invalid_input", "garmentType must be one of top, bottom, shoes, outerwear, accessory", nil)
		},
	}

	recorder := performPost("/api/v1/wardrobe/items", `{"name":"hat","garmentType":"headwear"}`, newRouterUnderTest(t, nil, nil, wardrobeSvc))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "invalid_request", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func TestRouter_ListWardrobeItemsEmpty(t *testing.T) {
	wardrobeSvc := &stubWardrobeSvc{
		listFn: func(ctx context.Context, userID string) ([]wardrobe.Item, error) {
			require.Equal(t, "alice", userID)
			return nil, nil
		},
	}

	recorder := performGet("/api/v1/wardrobe/items?userId=alice", newRouterUnderTest(t, nil, nil, wardrobeSvc))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"items":[]}`, recorder.Body.String())
}

func TestRouter_Root(t *testing.T) {
	recorder := performGet("/", newRouterUnderTest(t, nil, nil, nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "/api/v1/recommendations")
}

func performPost(path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func performGet(path string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, outfitSvc outfit.Service, weatherSvc weather.Service, wardrobeSvc wardrobe.Service) *http.Server {
	t.Helper()
	if outfitSvc == nil {
		outfitSvc = &stubOutfitService{}
	}
	if weatherSvc == nil {
		weatherSvc = &stubWeatherSvc{}
	}
	if wardrobeSvc == nil {
		wardrobeSvc = &stubWardrobeSvc{}
	}
	engine := outfit.NewEngine(outfit.DefaultConfig())
	handler := NewHandler(outfitSvc, weatherSvc, wardrobeSvc, engine, newTestLogger())
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
	return NewRouter(cfg, handler, newTestLogger())
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubOutfitService struct {
	recommendFn func(ctx context.Context, req outfit.Request) (outfit.Response, error)
}

func (s *stubOutfitService) Recommend(ctx context.Context, req outfit.Request) (outfit.Response, error) {
	if s.recommendFn != nil {
		return s.recommendFn(ctx, req)
	}
	return outfit.Response{}, nil
}

type stubWeatherSvc struct {
	currentFn func(ctx context.Context, location string) (weather.Observation, error)
}

func (s *stubWeatherSvc) Current(ctx context.Context, location string) (weather.Observation, error) {
	if s.currentFn != nil {
		return s.currentFn(ctx, location)
	}
	return weather.Observation{}, nil
}

type stubWardrobeSvc struct {
	addFn  func(ctx context.Context, input wardrobe.ItemInput) (wardrobe.Item, error)
	listFn func(ctx context.Context, userID string) ([]wardrobe.Item, error)
}

func (s *stubWardrobeSvc) AddItem(ctx context.Context, input wardrobe.ItemInput) (wardrobe.Item, error) {
	if s.addFn != nil {
		return s.addFn(ctx, input)
	}
	return wardrobe.Item{}, nil
}

func (s *stubWardrobeSvc) ListItems(ctx context.Context, userID string) ([]wardrobe.Item, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID)
	}
	return nil, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
