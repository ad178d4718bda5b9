package outfit

import "github.com/yanqian/weather-outfit/internal/domain/wardrobe"

// Engine deterministically selects a coherent outfit from a wardrobe given
// a weather snapshot and an occasion. It holds no state between calls and
// never mutates its inputs, so one instance serves any number of
// concurrent requests.
type Engine struct {
	cfg Config
}

// NewEngine constructs the engine with an explicit policy configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Recommend runs the index → filter → compose → assemble pipeline. It
// returns ErrEmptyWardrobe for an empty item list and InfeasibleOutfitError
// when a mandatory slot cannot be filled; identical inputs always produce
// the identical recommendation.
func (e *Engine) Recommend(snap Snapshot, occasion string, items []wardrobe.Item) (Recommendation, error) {
	w, err := NewWardrobe(items)
	if err != nil {
		return Recommendation{}, err
	}

	tier := NormalizeOccasion(occasion)
	chosen, err := compose(w, snap, tier)
	if err != nil {
		return Recommendation{}, err
	}

	return assemble(snap, occasion, tier, chosen), nil
}
