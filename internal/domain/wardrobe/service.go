package wardrobe

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/yanqian/weather-outfit/pkg/errors"
	"github.com/yanqian/weather-outfit/pkg/util"
)

// Service exposes wardrobe management capabilities.
type Service interface {
	AddItem(ctx context.Context, input ItemInput) (Item, error)
	ListItems(ctx context.Context, userID string) ([]Item, error)
}

type service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService is a wire provider for the wardrobe domain.
func NewService(repo Repository, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger.With("component", "wardrobe.service")}
}

func (s *service) AddItem(ctx context.Context, input ItemInput) (Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Item{}, apperrors.Wrap("invalid_input", "item name cannot be empty", nil)
	}

	garment, err := ParseGarmentType(input.Garment)
	if err != nil {
		return Item{}, apperrors.Wrap("invalid_input", "garmentType must be one of top, bottom, shoes, outerwear, accessory", err)
	}
	warmth, err := ParseWarmthLevel(input.Warmth)
	if err != nil {
		return Item{}, apperrors.Wrap("invalid_input", "warmthLevel must be one of cold, cool, mild, warm, hot", err)
	}
	formality, err := ParseFormality(input.Formality)
	if err != nil {
		return Item{}, apperrors.Wrap("invalid_input", "formality must be one of casual, business, formal", err)
	}

	item := Item{
		ID:         uuid.NewString(),
		Name:       name,
		Garment:    garment,
		Warmth:     warmth,
		Waterproof: input.Waterproof,
		Colors:     normalizeColors(input.Colors),
		Formality:  formality,
		CreatedAt:  util.NowUTC(),
	}

	stored, err := s.repo.InsertItem(ctx, strings.TrimSpace(input.UserID), item)
	if err != nil {
		return Item{}, apperrors.Wrap("storage_error", "failed to store wardrobe item", err)
	}
	s.logger.Info("wardrobe item added", "item_id", stored.ID, "garment", stored.Garment.String())
	return stored, nil
}

func (s *service) ListItems(ctx context.Context, userID string) ([]Item, error) {
	items, err := s.repo.ListItems(ctx, strings.TrimSpace(userID))
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to list wardrobe items", err)
	}
	return items, nil
}

func normalizeColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, color := range colors {
		clean := strings.ToLower(strings.TrimSpace(color))
		if clean == "" {
			continue
		}
		out = append(out, clean)
	}
	return out
}
