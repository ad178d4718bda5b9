package outfit

import "github.com/yanqian/weather-outfit/internal/domain/wardrobe"

// garmentOrder fixes the slot ordering used for composition and rationale.
var garmentOrder = []wardrobe.GarmentType{
	wardrobe.GarmentTop,
	wardrobe.GarmentBottom,
	wardrobe.GarmentShoes,
	wardrobe.GarmentOuterwear,
	wardrobe.GarmentAccessory,
}

var mandatoryGarments = []wardrobe.GarmentType{
	wardrobe.GarmentTop,
	wardrobe.GarmentBottom,
	wardrobe.GarmentShoes,
}

// Wardrobe indexes candidate items by garment type. Bucket order follows
// input order so downstream tie-breaking stays reproducible.
type Wardrobe struct {
	buckets map[wardrobe.GarmentType][]wardrobe.Item
}

// NewWardrobe groups items into per-garment buckets. Only a fully empty
// input is an error; empty buckets are valid and surface later as
// infeasibility for mandatory slots.
func NewWardrobe(items []wardrobe.Item) (*Wardrobe, error) {
	if len(items) == 0 {
		return nil, ErrEmptyWardrobe
	}
	buckets := make(map[wardrobe.GarmentType][]wardrobe.Item, len(garmentOrder))
	for _, item := range items {
		buckets[item.Garment] = append(buckets[item.Garment], item)
	}
	return &Wardrobe{buckets: buckets}, nil
}

// Bucket returns the ordered candidates for a garment type.
func (w *Wardrobe) Bucket(garment wardrobe.GarmentType) []wardrobe.Item {
	return w.buckets[garment]
}
