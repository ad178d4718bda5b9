package outfit

import (
	"strings"

	"github.com/yanqian/weather-outfit/internal/domain/wardrobe"
)

var formalKeywords = []string{"formal", "wedding", "gala", "ceremony", "black tie", "funeral"}

var businessKeywords = []string{"business", "work", "office", "interview", "meeting", "presentation", "conference", "client"}

// NormalizeOccasion maps an open-vocabulary occasion string onto a
// formality tier. Unrecognized values default to casual.
func NormalizeOccasion(occasion string) wardrobe.Formality {
	canonical := strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(occasion)), " "))
	for _, keyword := range formalKeywords {
		if strings.Contains(canonical, keyword) {
			return wardrobe.FormalityFormal
		}
	}
	for _, keyword := range businessKeywords {
		if strings.Contains(canonical, keyword) {
			return wardrobe.FormalityBusiness
		}
	}
	return wardrobe.FormalityCasual
}
