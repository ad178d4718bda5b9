package outfit

import "github.com/yanqian/weather-outfit/internal/domain/wardrobe"

// Scoring weights. Exact warmth outranks the adjacency fallback; exact
// formality and a waterproofing flag matching the precipitation need add
// one point each.
const (
	scoreWarmthExact     = 2
	scoreWarmthAdjacent  = 1
	scoreFormalityExact  = 1
	scoreWaterproofMatch = 1
)

func score(c candidate) int {
	total := scoreWarmthAdjacent
	if c.warmthExact {
		total = scoreWarmthExact
	}
	if !c.formalitySub {
		total += scoreFormalityExact
	}
	if c.waterproofMatch {
		total += scoreWaterproofMatch
	}
	return total
}

// compose selects one item per required garment type. Mandatory slots fail
// with InfeasibleOutfitError when their filtered bucket is empty; outerwear
// is included only when weather warrants it and accessories whenever one
// fits.
func compose(w *Wardrobe, snap Snapshot, tier wardrobe.Formality) (map[wardrobe.GarmentType]candidate, error) {
	chosen := make(map[wardrobe.GarmentType]candidate, len(garmentOrder))

	for _, garment := range mandatoryGarments {
		cands := filterBucket(w.Bucket(garment), garment, snap, tier)
		if len(cands) == 0 {
			return nil, &InfeasibleOutfitError{Missing: garment}
		}
		chosen[garment] = pickBest(cands, garment, snap)
	}

	if wantsOuterwear(snap) {
		if cands := filterBucket(w.Bucket(wardrobe.GarmentOuterwear), wardrobe.GarmentOuterwear, snap, tier); len(cands) > 0 {
			chosen[wardrobe.GarmentOuterwear] = pickBest(cands, wardrobe.GarmentOuterwear, snap)
		}
	}
	if cands := filterBucket(w.Bucket(wardrobe.GarmentAccessory), wardrobe.GarmentAccessory, snap, tier); len(cands) > 0 {
		chosen[wardrobe.GarmentAccessory] = pickBest(cands, wardrobe.GarmentAccessory, snap)
	}

	return chosen, nil
}

func wantsOuterwear(snap Snapshot) bool {
	return snap.Band <= wardrobe.WarmthCool || snap.Precipitating
}

// pickBest returns the highest scoring candidate. Ties go to the earliest
// inserted item, except that windy weather prefers the colder-rated of two
// tied outerwear or accessory candidates.
func pickBest(cands []candidate, garment wardrobe.GarmentType, snap Snapshot) candidate {
	best := cands[0]
	bestScore := score(best)
	for _, c := range cands[1:] {
		s := score(c)
		switch {
		case s > bestScore:
			best, bestScore = c, s
		case s == bestScore && windPrefers(garment, snap, c, best):
			best = c
		}
	}
	return best
}

func windPrefers(garment wardrobe.GarmentType, snap Snapshot, challenger, incumbent candidate) bool {
	if snap.Wind != WindWindy {
		return false
	}
	if garment != wardrobe.GarmentOuterwear && garment != wardrobe.GarmentAccessory {
		return false
	}
	return challenger.item.Warmth < incumbent.item.Warmth
}
