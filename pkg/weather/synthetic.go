package weather

import "time"

// SyntheticGenerator produces deterministic stand-in conditions from the
// hour of day. Values follow a plausible temperate-climate daily curve.
type SyntheticGenerator struct{}

func NewSyntheticGenerator() *SyntheticGenerator {
	return &SyntheticGenerator{}
}

// At returns the synthetic snapshot for the given wall-clock time. Same
// hour in, same snapshot out.
func (g *SyntheticGenerator) At(t time.Time) Snapshot {
	hour := t.Hour()

	var temp, humidity float64
	var condition string
	switch {
	case hour < 6:
		temp, humidity, condition = 15, 80, "clear"
	case hour < 12:
		temp, humidity, condition = 22, 60, "partly cloudy"
	case hour < 18:
		temp, humidity, condition = 28, 45, "sunny"
	default:
		temp, humidity, condition = 20, 70, "clear"
	}

	return Snapshot{
		Temperature: temp,
		Humidity:    humidity,
		Condition:   condition,
		Synthetic:   true,
		ObservedAt:  t.UTC(),
	}
}
