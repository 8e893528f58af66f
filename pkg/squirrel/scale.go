package squirrel

import "math"

// Float is the set of types fractions can be produced in.
type Float interface {
	~float32 | ~float64
}

// ToRange linearly rescales value from [lo, hi] to [0, 1].
// The division happens in float64 before converting to F.
// hi must be greater than lo; otherwise the result is Inf or NaN.
func ToRange[F Float](value, lo, hi uint32) F {
	return F((float64(value) - float64(lo)) / (float64(hi) - float64(lo)))
}

// ToFraction returns Mix1D(value, seed) mapped onto [0, 1].
func ToFraction[F Float](value int32, seed uint32) F {
	return ToRange[F](Mix1D(value, seed), 0, math.MaxUint32)
}

// ToSignedFraction returns Mix1D(value, seed) mapped onto [-1, 1].
func ToSignedFraction[F Float](value int32, seed uint32) F {
	return F(2*ToFraction[float64](value, seed) - 1)
}

// Fraction2D returns the 2D hash mapped onto [0, 1].
func Fraction2D[F Float](x, y int32, seed uint32) F {
	return ToRange[F](Mix2D(x, y, seed), 0, math.MaxUint32)
}

// Fraction3D returns the 3D hash mapped onto [0, 1].
func Fraction3D[F Float](x, y, z int32, seed uint32) F {
	return ToRange[F](Mix3D(x, y, z, seed), 0, math.MaxUint32)
}

// Fraction4D returns the 4D hash mapped onto [0, 1].
func Fraction4D[F Float](x, y, z, w int32, seed uint32) F {
	return ToRange[F](Mix4D(x, y, z, w, seed), 0, math.MaxUint32)
}

// Intn returns a value in [0, n). Intn with n == 0 returns 0.
func Intn(value int32, seed, n uint32) uint32 {
	return reduce(Mix1D(value, seed), n)
}

// IntRange returns a value in [lo, hi], both ends inclusive.
// Swapped bounds are accepted.
func IntRange(value int32, seed uint32, lo, hi int32) int32 {
	return spread(Mix1D(value, seed), lo, hi)
}

// Chance reports true with probability p.
func Chance(value int32, seed uint32, p float64) bool {
	return hit(ToFraction[float64](value, seed), p)
}

// reduce maps a full-range hash onto [0, n) by multiply-shift.
func reduce(h, n uint32) uint32 {
	return uint32((uint64(h) * uint64(n)) >> 32)
}

func spread(h uint32, lo, hi int32) int32 {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := uint64(int64(hi)-int64(lo)) + 1 // up to 2^32
	return int32(int64(lo) + int64((uint64(h)*span)>>32))
}

func hit(frac, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return frac < p
}
