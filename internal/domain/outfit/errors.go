package outfit

import (
	"errors"
	"fmt"

	"github.com/yanqian/weather-outfit/internal/domain/wardrobe"
)

// ErrEmptyWardrobe indicates the caller supplied no clothing items at all.
var ErrEmptyWardrobe = errors.New("wardrobe is empty")

// InfeasibleOutfitError is returned when no candidate survives filtering
// for a mandatory garment type. The missing type is carried so callers can
// suggest what to add.
type InfeasibleOutfitError struct {
	Missing wardrobe.GarmentType
}

func (e *InfeasibleOutfitError) Error() string {
	return fmt.Sprintf("no %s satisfies the outfit constraints", e.Missing)
}
