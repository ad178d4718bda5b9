package wardrobe

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// GarmentType is the functional slot a clothing item fills.
type GarmentType int

const (
	GarmentTop GarmentType = iota
	GarmentBottom
	GarmentShoes
	GarmentOuterwear
	GarmentAccessory
)

var garmentNames = [...]string{"top", "bottom", "shoes", "outerwear", "accessory"}

func (g GarmentType) String() string {
	if g < GarmentTop || g > GarmentAccessory {
		return "unknown"
	}
	return garmentNames[g]
}

// ParseGarmentType maps a wire string onto the closed garment set.
func ParseGarmentType(value string) (GarmentType, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for i, name := range garmentNames {
		if name == needle {
			return GarmentType(i), nil
		}
	}
	return GarmentTop, fmt.Errorf("unknown garment type %q", value)
}

// MarshalJSON serializes the garment as its wire string.
func (g GarmentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// UnmarshalJSON accepts the wire string form.
func (g *GarmentType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseGarmentType(raw)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// WarmthLevel places a garment on the ordered cold..hot scale. The same
// scale discretizes observed temperatures, so warmth compatibility is an
// index comparison.
type WarmthLevel int

const (
	WarmthCold WarmthLevel = iota
	WarmthCool
	WarmthMild
	WarmthWarm
	WarmthHot
)

var warmthNames = [...]string{"cold", "cool", "mild", "warm", "hot"}

func (w WarmthLevel) String() string {
	if w < WarmthCold || w > WarmthHot {
		return "unknown"
	}
	return warmthNames[w]
}

// Distance returns the index distance between two scale positions.
func (w WarmthLevel) Distance(other WarmthLevel) int {
	diff := int(w) - int(other)
	if diff < 0 {
		return -diff
	}
	return diff
}

// ParseWarmthLevel maps a wire string onto the ordered warmth scale.
func ParseWarmthLevel(value string) (WarmthLevel, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for i, name := range warmthNames {
		if name == needle {
			return WarmthLevel(i), nil
		}
	}
	return WarmthMild, fmt.Errorf("unknown warmth level %q", value)
}

// MarshalJSON serializes the warmth level as its wire string.
func (w WarmthLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// UnmarshalJSON accepts the wire string form.
func (w *WarmthLevel) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseWarmthLevel(raw)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// Formality classifies how dressed-up a garment or occasion is.
type Formality int

const (
	FormalityCasual Formality = iota
	FormalityBusiness
	FormalityFormal
)

var formalityNames = [...]string{"casual", "business", "formal"}

func (f Formality) String() string {
	if f < FormalityCasual || f > FormalityFormal {
		return "unknown"
	}
	return formalityNames[f]
}

// ParseFormality maps a wire string onto the formality tiers. Empty input
// falls back to casual, matching the item default.
func ParseFormality(value string) (Formality, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return FormalityCasual, nil
	}
	for i, name := range formalityNames {
		if name == needle {
			return Formality(i), nil
		}
	}
	return FormalityCasual, fmt.Errorf("unknown formality %q", value)
}

// MarshalJSON serializes the formality as its wire string.
func (f Formality) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts the wire string form.
func (f *Formality) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseFormality(raw)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Item is one wardrobe entry. Items are immutable once handed to the
// recommendation engine; the engine only reads them.
type Item struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Garment    GarmentType `json:"garmentType"`
	Warmth     WarmthLevel `json:"warmthLevel"`
	Waterproof bool        `json:"waterproof"`
	Colors     []string    `json:"colors"`
	Formality  Formality   `json:"formality"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// ItemInput is the payload accepted when adding a wardrobe entry. Enum
// fields arrive as free strings and are validated by the service.
type ItemInput struct {
	Name       string   `json:"name"`
	Garment    string   `json:"garmentType"`
	Warmth     string   `json:"warmthLevel"`
	Waterproof bool     `json:"waterproof"`
	Colors     []string `json:"colors"`
	Formality  string   `json:"formality"`
	UserID     string   `json:"userId"`
}
