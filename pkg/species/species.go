// Package species holds the static per-species irrigation knowledge. The
// registry is read-only at runtime; the engine never writes to it.
package species

// Profile is the irrigation envelope for one species. Humidity values are
// soil humidity percentages, BaseDurationSec is the unadjusted valve time.
type Profile struct {
	Species               string
	MinHumidity           float64
	IdealHumidity         float64
	MaxHumidity           float64
	BaseDurationSec       int
	PrefersMorning        bool
	OverwateringSensitive bool
	// Thirsty species use the 24h elapsed-time threshold instead of 48h.
	Thirsty bool
}

const (
	Rose     = "Rosa hybrida"
	Lavender = "Lavandula angustifolia"
	Tomato   = "Solanum lycopersicum"
	Basil    = "Ocimum basilicum"
	Cactus   = "Cactaceae"
)

// DefaultSpecies is used when a plant's species is not in the registry.
const DefaultSpecies = Rose

var registry = map[string]Profile{
	Rose: {
		Species:               Rose,
		MinHumidity:           40,
		IdealHumidity:         60,
		MaxHumidity:           80,
		BaseDurationSec:       180,
		PrefersMorning:        true,
		OverwateringSensitive: true,
	},
	Lavender: {
		Species:               Lavender,
		MinHumidity:           20,
		IdealHumidity:         40,
		MaxHumidity:           60,
		BaseDurationSec:       120,
		PrefersMorning:        true,
		OverwateringSensitive: true,
	},
	Tomato: {
		Species:         Tomato,
		MinHumidity:     50,
		IdealHumidity:   70,
		MaxHumidity:     85,
		BaseDurationSec: 240,
		PrefersMorning:  true,
		Thirsty:         true,
	},
	Basil: {
		Species:         Basil,
		MinHumidity:     45,
		IdealHumidity:   65,
		MaxHumidity:     75,
		BaseDurationSec: 150,
		PrefersMorning:  true,
		Thirsty:         true,
	},
	Cactus: {
		Species:               Cactus,
		MinHumidity:           15,
		IdealHumidity:         30,
		MaxHumidity:           50,
		BaseDurationSec:       60,
		PrefersMorning:        false, // watering late afternoon works better
		OverwateringSensitive: true,
	},
}

func Lookup(species string) (Profile, bool) {
	p, ok := registry[species]
	return p, ok
}

// LookupOrDefault returns the profile for species, or the registry default
// when the species is unknown.
func LookupOrDefault(species string) Profile {
	if p, ok := registry[species]; ok {
		return p
	}
	return registry[DefaultSpecies]
}

// All returns the registered profiles; the slice is a copy.
func All() []Profile {
	out := make([]Profile, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	return out
}
