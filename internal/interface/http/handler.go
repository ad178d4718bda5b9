package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/weather-outfit/internal/domain/outfit"
	"github.com/yanqian/weather-outfit/internal/domain/wardrobe"
	"github.com/yanqian/weather-outfit/internal/domain/weather"
	apperrors "github.com/yanqian/weather-outfit/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	outfitSvc   outfit.Service
	weatherSvc  weather.Service
	wardrobeSvc wardrobe.Service
	engine      *outfit.Engine
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(outfitSvc outfit.Service, weatherSvc weather.Service, wardrobeSvc wardrobe.Service, engine *outfit.Engine, logger *slog.Logger) *Handler {
	return &Handler{
		outfitSvc:   outfitSvc,
		weatherSvc:  weatherSvc,
		wardrobeSvc: wardrobeSvc,
		engine:      engine,
		logger:      logger.With("component", "http.handler"),
	}
}

// Root lists the available endpoints.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Weather Outfit API",
		"endpoints": []string{
			"/api/v1/weather/:location",
			"/api/v1/recommendations",
			"/api/v1/wardrobe/items",
		},
	})
}

// CurrentWeather returns the provider observation together with the
// normalized snapshot the engine would decide on.
func (h *Handler) CurrentWeather(c *gin.Context) {
	obs, err := h.weatherSvc.Current(c.Request.Context(), c.Param("location"))
	if err != nil {
		status := http.StatusInternalServerError
		code := "weather_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "weather_error"):
			status = http.StatusBadGateway
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"observation": obs,
		"snapshot":    h.engine.Normalize(obs),
	})
}

// Recommend returns a deterministic outfit recommendation.
func (h *Handler) Recommend(c *gin.Context) {
	var req outfit.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.outfitSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "recommendation_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "weather_error"):
			status = http.StatusBadGateway
			code = "weather_error"
		case apperrors.IsCode(err, "empty_wardrobe"):
			status = http.StatusUnprocessableEntity
			code = "empty_wardrobe"
		case apperrors.IsCode(err, "infeasible_outfit"):
			status = http.StatusUnprocessableEntity
			code = "infeasible_outfit"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddWardrobeItem stores a clothing item.
func (h *Handler) AddWardrobeItem(c *gin.Context) {
	var input wardrobe.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	item, err := h.wardrobeSvc.AddItem(c.Request.Context(), input)
	if err != nil {
		status := http.StatusInternalServerError
		code := "wardrobe_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// ListWardrobeItems returns the wardrobe for the given user (or the shared
// default wardrobe when userId is absent).
func (h *Handler) ListWardrobeItems(c *gin.Context) {
	items, err := h.wardrobeSvc.ListItems(c.Request.Context(), c.Query("userId"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "wardrobe_failed", errMessage(err), err))
		return
	}
	if items == nil {
		items = []wardrobe.Item{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
