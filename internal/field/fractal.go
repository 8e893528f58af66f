package field

import (
	"github.com/go-gl/mathgl/mgl64"

	"squirrel-noise/pkg/squirrel"
)

// Octaves controls how value noise layers are summed.
type Octaves struct {
	Count       int
	Persistence float64 // amplitude multiplier per octave, >= 0
	Lacunarity  float64 // frequency multiplier per octave
}

// DefaultOctaves matches the sampler defaults.
var DefaultOctaves = Octaves{Count: 4, Persistence: 0.5, Lacunarity: 2.0}

// Fractal2D sums o.Count octaves of Value2D. Each octave hashes with its own
// derived seed. Result is normalized to [0,1] as long as o.Persistence is
// non-negative; zero octaves yield 0.
func Fractal2D(p mgl64.Vec2, seed uint32, o Octaves) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := range o.Count {
		v := Value2D(p.Mul(frequency), squirrel.Derive(seed, int32(i)))
		sum += v * amplitude
		norm += amplitude
		amplitude *= o.Persistence
		frequency *= o.Lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// Fractal3D is the 3D counterpart of Fractal2D.
func Fractal3D(p mgl64.Vec3, seed uint32, o Octaves) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := range o.Count {
		v := Value3D(p.Mul(frequency), squirrel.Derive(seed, int32(i)))
		sum += v * amplitude
		norm += amplitude
		amplitude *= o.Persistence
		frequency *= o.Lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
