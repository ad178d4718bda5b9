package outfit

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yanqian/weather-outfit/internal/domain/wardrobe"
)

// TemperatureBand shares the ordered scale garments are rated on, so
// warmth compatibility reduces to an index comparison.
type TemperatureBand = wardrobe.WarmthLevel

// WindBand coarsely classifies wind conditions. It only influences
// outerwear and accessory tie-breaks.
type WindBand int

const (
	WindCalm WindBand = iota
	WindBreezy
	WindWindy
)

var windNames = [...]string{"calm", "breezy", "windy"}

func (w WindBand) String() string {
	if w < WindCalm || w > WindWindy {
		return "unknown"
	}
	return windNames[w]
}

// MarshalJSON serializes the wind band as its wire string.
func (w WindBand) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// UnmarshalJSON accepts the wire string form.
func (w *WindBand) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	needle := strings.ToLower(strings.TrimSpace(raw))
	for i, name := range windNames {
		if name == needle {
			*w = WindBand(i)
			return nil
		}
	}
	return fmt.Errorf("unknown wind band %q", raw)
}

// Snapshot is the canonical weather representation the engine decides on.
// All provider-specific vocabulary is absorbed before this point.
type Snapshot struct {
	Band          TemperatureBand `json:"temperatureBand"`
	Precipitating bool            `json:"precipitating"`
	Wind          WindBand        `json:"windBand"`
}

// Request is the payload accepted by the recommendation endpoint.
type Request struct {
	Location string `json:"location" binding:"required"`
	Occasion string `json:"occasion"`
	UserID   string `json:"userId"`
}

// RationaleEntry explains which constraints drove one garment choice.
type RationaleEntry struct {
	Garment wardrobe.GarmentType `json:"garmentType"`
	Reason  string               `json:"reason"`
}

// Recommendation is the assembled outcome of one engine run.
type Recommendation struct {
	Weather   Snapshot                 `json:"weather"`
	Occasion  string                   `json:"occasion"`
	Tier      wardrobe.Formality       `json:"formalityTier"`
	Outfit    map[string]wardrobe.Item `json:"outfit"`
	Rationale []RationaleEntry         `json:"rationale"`
}

// Response wraps a recommendation for API consumers.
type Response struct {
	Location string `json:"location"`
	Recommendation
}
