package field

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"squirrel-noise/pkg/squirrel"
)

// Coherent value noise over a squirrel-hashed integer lattice.
// Sampling is by world coordinate, so adjacent regions tile seamlessly.

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Lattice2D returns the [0,1] lattice value at an integer 2D point.
func Lattice2D(x, y int32, seed uint32) float64 {
	return squirrel.Fraction2D[float64](x, y, seed)
}

// Lattice3D returns the [0,1] lattice value at an integer 3D point.
func Lattice3D(x, y, z int32, seed uint32) float64 {
	return squirrel.Fraction3D[float64](x, y, z, seed)
}

// Value2D interpolates the four surrounding lattice values. Result is in [0,1].
func Value2D(p mgl64.Vec2, seed uint32) float64 {
	x0 := math.Floor(p.X())
	y0 := math.Floor(p.Y())
	ix, iy := int32(x0), int32(y0)

	fx := fade(p.X() - x0)
	fy := fade(p.Y() - y0)

	v00 := Lattice2D(ix, iy, seed)
	v10 := Lattice2D(ix+1, iy, seed)
	v01 := Lattice2D(ix, iy+1, seed)
	v11 := Lattice2D(ix+1, iy+1, seed)

	i0 := lerp(v00, v10, fx)
	i1 := lerp(v01, v11, fx)
	return lerp(i0, i1, fy)
}

// Value3D interpolates the eight surrounding lattice values. Result is in [0,1].
func Value3D(p mgl64.Vec3, seed uint32) float64 {
	x0 := math.Floor(p.X())
	y0 := math.Floor(p.Y())
	z0 := math.Floor(p.Z())
	ix, iy, iz := int32(x0), int32(y0), int32(z0)

	fx := fade(p.X() - x0)
	fy := fade(p.Y() - y0)
	fz := fade(p.Z() - z0)

	v000 := Lattice3D(ix, iy, iz, seed)
	v100 := Lattice3D(ix+1, iy, iz, seed)
	v010 := Lattice3D(ix, iy+1, iz, seed)
	v110 := Lattice3D(ix+1, iy+1, iz, seed)
	v001 := Lattice3D(ix, iy, iz+1, seed)
	v101 := Lattice3D(ix+1, iy, iz+1, seed)
	v011 := Lattice3D(ix, iy+1, iz+1, seed)
	v111 := Lattice3D(ix+1, iy+1, iz+1, seed)

	// X first, then Y, then Z
	i00 := lerp(v000, v100, fx)
	i10 := lerp(v010, v110, fx)
	i01 := lerp(v001, v101, fx)
	i11 := lerp(v011, v111, fx)

	i0 := lerp(i00, i10, fy)
	i1 := lerp(i01, i11, fy)
	return lerp(i0, i1, fz)
}
