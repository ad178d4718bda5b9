package outfit

// BandThresholds discretizes a Celsius temperature into the ordered
// cold..hot scale. Each field is the exclusive upper bound of its band;
// anything at or above WarmBelow is hot.
type BandThresholds struct {
	ColdBelow float64
	CoolBelow float64
	MildBelow float64
	WarmBelow float64
}

// WindThresholds discretizes wind speed (km/h) into calm/breezy/windy.
type WindThresholds struct {
	BreezyAt float64
	WindyAt  float64
}

// Config carries the tunable policy of the recommendation engine. It is
// passed in at construction so the engine stays a pure function of its
// inputs.
type Config struct {
	Bands BandThresholds
	Wind  WindThresholds
}

// DefaultConfig returns the stock band cut points.
func DefaultConfig() Config {
	return Config{
		Bands: BandThresholds{
			ColdBelow: 5,
			CoolBelow: 12,
			MildBelow: 20,
			WarmBelow: 28,
		},
		Wind: WindThresholds{
			BreezyAt: 15,
			WindyAt:  30,
		},
	}
}
