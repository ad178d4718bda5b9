package outfit

import (
	"strings"

	"github.com/yanqian/weather-outfit/internal/domain/wardrobe"
	"github.com/yanqian/weather-outfit/internal/domain/weather"
)

// precipitatingConditions holds the provider condition groups that count
// as rain or snow.
var precipitatingConditions = map[string]struct{}{
	"rain":         {},
	"drizzle":      {},
	"thunderstorm": {},
	"snow":         {},
	"sleet":        {},
	"hail":         {},
}

// Normalize converts a raw observation into the canonical snapshot.
// Missing or malformed fields fall back to conservative defaults (mild,
// dry, calm); normalization never fails.
func (e *Engine) Normalize(obs weather.Observation) Snapshot {
	snap := Snapshot{
		Band:          wardrobe.WarmthMild,
		Precipitating: false,
		Wind:          WindCalm,
	}

	if obs.TemperatureC != nil {
		snap.Band = e.bandFor(*obs.TemperatureC)
	}
	if _, ok := precipitatingConditions[strings.ToLower(strings.TrimSpace(obs.Condition))]; ok {
		snap.Precipitating = true
	}
	if obs.WindSpeedKMH != nil {
		snap.Wind = e.windFor(*obs.WindSpeedKMH)
	}
	return snap
}

func (e *Engine) bandFor(tempC float64) TemperatureBand {
	switch {
	case tempC < e.cfg.Bands.ColdBelow:
		return wardrobe.WarmthCold
	case tempC < e.cfg.Bands.CoolBelow:
		return wardrobe.WarmthCool
	case tempC < e.cfg.Bands.MildBelow:
		return wardrobe.WarmthMild
	case tempC < e.cfg.Bands.WarmBelow:
		return wardrobe.WarmthWarm
	default:
		return wardrobe.WarmthHot
	}
}

func (e *Engine) windFor(speedKMH float64) WindBand {
	switch {
	case speedKMH < e.cfg.Wind.BreezyAt:
		return WindCalm
	case speedKMH < e.cfg.Wind.WindyAt:
		return WindBreezy
	default:
		return WindWindy
	}
}
