package outfit

import (
	"fmt"
	"strings"

	"github.com/yanqian/weather-outfit/internal/domain/wardrobe"
)

// assemble packages chosen candidates into the output structure, recording
// per item which constraints drove the choice. Pure transformation.
func assemble(snap Snapshot, occasion string, tier wardrobe.Formality, chosen map[wardrobe.GarmentType]candidate) Recommendation {
	outfit := make(map[string]wardrobe.Item, len(chosen))
	rationale := make([]RationaleEntry, 0, len(chosen))

	for _, garment := range garmentOrder {
		c, ok := chosen[garment]
		if !ok {
			continue
		}
		outfit[garment.String()] = c.item
		rationale = append(rationale, RationaleEntry{
			Garment: garment,
			Reason:  reasonFor(c, snap, tier),
		})
	}

	return Recommendation{
		Weather:   snap,
		Occasion:  occasion,
		Tier:      tier,
		Outfit:    outfit,
		Rationale: rationale,
	}
}

func reasonFor(c candidate, snap Snapshot, tier wardrobe.Formality) string {
	parts := make([]string, 0, 3)

	if c.warmthExact {
		parts = append(parts, fmt.Sprintf("rated for %s weather", snap.Band))
	} else {
		parts = append(parts, fmt.Sprintf("%s-rated fallback for %s weather", c.item.Warmth, snap.Band))
	}

	if c.formalitySub {
		parts = append(parts, fmt.Sprintf("casual stand-in, no %s option available", tier))
	} else {
		parts = append(parts, fmt.Sprintf("suits a %s occasion", tier))
	}

	if c.waterproofNeed {
		if c.item.Waterproof {
			parts = append(parts, "waterproof for current precipitation")
		} else {
			parts = append(parts, "not waterproof, nothing better available for the rain")
		}
	}

	return strings.Join(parts, "; ")
}
