// Package squirrel provides a deterministic, seedable integer noise function
// and a position-based random stream built on it.
//
// Every output is a pure function of (coordinate, seed) or (position, seed).
// The package holds no global state; all functions are safe for concurrent use.
// A Stream is a small value owned by a single caller.
//
// Not suitable for cryptography.
package squirrel

// Mixing coefficients. Changing any of these changes every output.
const (
	noiseBit1 uint32 = 0xd2a80a3f
	noiseBit2 uint32 = 0xa884f197
	noiseBit3 uint32 = 0x6c736f4b
	noiseBit4 uint32 = 0xb79f3abb
	noiseBit5 uint32 = 0x1b56c4f5
)

// Large primes used to fold higher dimensions into one.
const (
	primeY = 198491317
	primeZ = 6542989
	primeW = 357239
)

// Mix1D scrambles value and seed into a pseudo-random 32-bit value.
// All arithmetic wraps modulo 2^32.
func Mix1D(value int32, seed uint32) uint32 {
	bits := uint32(value)
	bits *= noiseBit1
	bits += seed
	bits ^= bits >> 9
	bits += noiseBit2
	bits ^= bits >> 11
	bits *= noiseBit3
	bits ^= bits >> 13
	bits += noiseBit4
	bits ^= bits >> 15
	bits *= noiseBit5
	bits ^= bits >> 17
	return bits
}

// Mix2D hashes a 2D lattice coordinate.
func Mix2D(x, y int32, seed uint32) uint32 {
	return Mix1D(x+primeY*y, seed)
}

// Mix3D hashes a 3D lattice coordinate.
func Mix3D(x, y, z int32, seed uint32) uint32 {
	return Mix1D(x+primeY*y+primeZ*z, seed)
}

// Mix4D hashes a 4D lattice coordinate.
func Mix4D(x, y, z, w int32, seed uint32) uint32 {
	return Mix1D(x+primeY*y+primeZ*z+primeW*w, seed)
}
