package config

import (
	"math"

	"github.com/pkg/errors"
)

// Prefix for environment variable names, so SEED becomes SQUIRREL_SEED.
const envprefix = "SQUIRREL"

// Octave count limits for fractal sampling.
const (
	MinOctaves = 1
	MaxOctaves = 16
)

// Configuration holds CLI defaults, read from the environment with
// github.com/kelseyhightower/envconfig. Flags override every field.
type Configuration struct {

	// SEED is the default seed for hashes, streams and fields.
	Seed uint32 `default:"0" desc:"Default seed"`

	// OCTAVES, PERSISTENCE and LACUNARITY shape fractal fields.
	Octaves     int     `default:"4" desc:"Fractal octave count (clamped to 1..16)"`
	Persistence float64 `default:"0.5" desc:"Amplitude multiplier per octave (non-negative)"`
	Lacunarity  float64 `default:"2.0" desc:"Frequency multiplier per octave"`

	// SCALE converts grid cells to noise space.
	Scale float64 `default:"0.015625" desc:"Grid to noise scale"`

	// FORMAT is the preview image format when the output has no known extension.
	Format string `default:"bmp" desc:"Preview format: bmp or tiff"`

	// STATE_FILE persists stream seed and position between runs when set.
	StateFile string `split_words:"true" desc:"YAML file holding stream state"`
}

// ClampOctaves limits n to [MinOctaves, MaxOctaves].
func ClampOctaves(n int) int {
	if n < MinOctaves {
		n = MinOctaves
	}
	if n > MaxOctaves {
		n = MaxOctaves
	}
	return n
}

// CheckPersistence rejects persistences that would push fractal sums out of
// [0, 1]. Zero is allowed and keeps only the first octave.
func CheckPersistence(p float64) error {
	if !(p >= 0) || math.IsInf(p, 1) {
		return errors.Errorf("invalid persistence %v: must be a finite value >= 0", p)
	}
	return nil
}
