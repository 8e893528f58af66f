package field

import "github.com/go-gl/mathgl/mgl64"

// Sampler evaluates fractal noise on an integer grid.
type Sampler struct {
	Seed    uint32
	Scale   float64 // grid units to noise units
	Octaves Octaves
}

// NewSampler creates a sampler with default settings.
func NewSampler(seed uint32) *Sampler {
	return &Sampler{
		Seed:    seed,
		Scale:   1.0 / 64.0,
		Octaves: DefaultOctaves,
	}
}

// At returns the [0,1] fractal value at grid cell (x, y).
func (s *Sampler) At(x, y int) float64 {
	p := mgl64.Vec2{float64(x) * s.Scale, float64(y) * s.Scale}
	return Fractal2D(p, s.Seed, s.Octaves)
}

// At3 returns the [0,1] fractal value at grid cell (x, y, z).
func (s *Sampler) At3(x, y, z int) float64 {
	p := mgl64.Vec3{float64(x) * s.Scale, float64(y) * s.Scale, float64(z) * s.Scale}
	return Fractal3D(p, s.Seed, s.Octaves)
}

// Grid samples a w*h block starting at (x0, y0), row-major.
func (s *Sampler) Grid(x0, y0, w, h int) []float64 {
	return block(x0, y0, w, h, s.At)
}

// Slice samples a w*h block of the 3D field at depth z, row-major.
func (s *Sampler) Slice(x0, y0, z, w, h int) []float64 {
	return block(x0, y0, w, h, func(x, y int) float64 { return s.At3(x, y, z) })
}

func block(x0, y0, w, h int, at func(x, y int) float64) []float64 {
	if w <= 0 || h <= 0 {
		return nil
	}
	out := make([]float64, 0, w*h)
	for y := range h {
		for x := range w {
			out = append(out, at(x0+x, y0+y))
		}
	}
	return out
}
