package outfit

import "github.com/yanqian/weather-outfit/internal/domain/wardrobe"

// candidate is a bucket entry that survived filtering, annotated with how
// it satisfied each constraint. The annotations feed both scoring and the
// rationale, so neither has to re-derive them.
type candidate struct {
	item            wardrobe.Item
	order           int
	warmthExact     bool
	formalitySub    bool
	waterproofNeed  bool
	waterproofMatch bool
}

// filterBucket applies the warmth, formality and waterproofing constraints
// to one garment bucket. An empty result is a normal outcome.
func filterBucket(items []wardrobe.Item, garment wardrobe.GarmentType, snap Snapshot, tier wardrobe.Formality) []candidate {
	survivors := make([]candidate, 0, len(items))

	// Warmth: exact band matches when any exist, otherwise adjacent bands.
	hasExact := false
	for _, item := range items {
		if item.Warmth == snap.Band {
			hasExact = true
			break
		}
	}
	for i, item := range items {
		switch {
		case item.Warmth == snap.Band:
			survivors = append(survivors, candidate{item: item, order: i, warmthExact: true})
		case !hasExact && item.Warmth.Distance(snap.Band) == 1:
			survivors = append(survivors, candidate{item: item, order: i})
		}
	}

	survivors = filterFormality(survivors, tier)
	survivors = filterWaterproof(survivors, garment, snap)
	return survivors
}

// filterFormality keeps exact tier matches; casual may stand in for
// business when no business item survived, never for formal.
func filterFormality(cands []candidate, tier wardrobe.Formality) []candidate {
	exact := cands[:0:0]
	for _, c := range cands {
		if c.item.Formality == tier {
			exact = append(exact, c)
		}
	}
	if len(exact) > 0 {
		return exact
	}
	if tier != wardrobe.FormalityBusiness {
		return nil
	}
	substitutes := cands[:0:0]
	for _, c := range cands {
		if c.item.Formality == wardrobe.FormalityCasual {
			c.formalitySub = true
			substitutes = append(substitutes, c)
		}
	}
	return substitutes
}

// filterWaterproof restricts outerwear and shoes to waterproof items during
// precipitation, relaxing when none survived the other constraints. It also
// records whether each item's waterproofing matches the precipitation need,
// which scoring rewards for every garment type.
func filterWaterproof(cands []candidate, garment wardrobe.GarmentType, snap Snapshot) []candidate {
	for i := range cands {
		cands[i].waterproofMatch = cands[i].item.Waterproof == snap.Precipitating
	}
	if !snap.Precipitating || (garment != wardrobe.GarmentOuterwear && garment != wardrobe.GarmentShoes) {
		return cands
	}

	waterproof := cands[:0:0]
	for _, c := range cands {
		c.waterproofNeed = true
		if c.item.Waterproof {
			waterproof = append(waterproof, c)
		}
	}
	if len(waterproof) > 0 {
		return waterproof
	}
	// Graceful degradation: nothing waterproof, so the constraint relaxes.
	relaxed := make([]candidate, len(cands))
	for i, c := range cands {
		c.waterproofNeed = true
		relaxed[i] = c
	}
	return relaxed
}
