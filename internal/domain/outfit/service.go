package outfit

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/yanqian/weather-outfit/internal/domain/wardrobe"
	"github.com/yanqian/weather-outfit/internal/domain/weather"
	apperrors "github.com/yanqian/weather-outfit/pkg/errors"
)

// Service exposes outfit recommendation capabilities.
type Service interface {
	Recommend(ctx context.Context, req Request) (Response, error)
}

type service struct {
	engine     *Engine
	weatherSvc weather.Service
	repo       wardrobe.Repository
	logger     *slog.Logger
}

// NewService wires up the outfit recommendation domain.
func NewService(engine *Engine, weatherSvc weather.Service, repo wardrobe.Repository, logger *slog.Logger) Service {
	return &service{
		engine:     engine,
		weatherSvc: weatherSvc,
		repo:       repo,
		logger:     logger.With("component", "outfit.service"),
	}
}

func (s *service) Recommend(ctx context.Context, req Request) (Response, error) {
	location := strings.TrimSpace(req.Location)
	if location == "" {
		return Response{}, apperrors.Wrap("invalid_input", "location cannot be empty", nil)
	}

	obs, err := s.weatherSvc.Current(ctx, location)
	if err != nil {
		return Response{}, err
	}

	items, err := s.repo.ListItems(ctx, strings.TrimSpace(req.UserID))
	if err != nil {
		return Response{}, apperrors.Wrap("storage_error", "failed to load wardrobe", err)
	}

	snap := s.engine.Normalize(obs)
	rec, err := s.engine.Recommend(snap, req.Occasion, items)
	if err != nil {
		var infeasible *InfeasibleOutfitError
		switch {
		case errors.Is(err, ErrEmptyWardrobe):
			return Response{}, apperrors.Wrap("empty_wardrobe", "no recommendation possible - wardrobe is empty", err)
		case errors.As(err, &infeasible):
			return Response{}, apperrors.Wrap("infeasible_outfit", infeasible.Error(), err)
		default:
			return Response{}, apperrors.Wrap("engine_error", "outfit composition failed", err)
		}
	}

	s.logger.Info("outfit recommended",
		"location", obs.Location,
		"band", snap.Band.String(),
		"precipitating", snap.Precipitating,
		"tier", rec.Tier.String(),
		"slots", len(rec.Outfit),
	)
	return Response{Location: obs.Location, Recommendation: rec}, nil
}
