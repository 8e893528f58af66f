package squirrel

import "math/rand/v2"

// Stream draws pseudo-random values by hashing an advancing position with a
// fixed seed. Its entire state is the pair (seed, position).
//
// A draw reads the current position and then advances it, so the first draw
// after New or ResetPosition hashes position 0. The sequence repeats after
// 2^32 draws.
//
// Stream is not safe for concurrent use; give each goroutine its own stream,
// for example seeded with Derive.
type Stream struct {
	seed     uint32
	position uint32
}

var _ rand.Source = (*Stream)(nil)

// New returns a stream at position 0. The zero Stream equals New(0).
func New(seed uint32) Stream {
	return Stream{seed: seed}
}

// Derive returns a child seed for the index-th independent stream under seed.
func Derive(seed uint32, index int32) uint32 {
	return Mix1D(index, seed)
}

// Seed returns the seed the stream hashes with.
func (s Stream) Seed() uint32 { return s.seed }

// Position returns the position the next draw will hash.
func (s Stream) Position() uint32 { return s.position }

// ResetPosition restarts the sequence; the seed is kept.
func (s *Stream) ResetPosition() {
	s.position = 0
}

// Reseed replaces the seed and restarts the sequence.
func (s *Stream) Reseed(seed uint32) {
	s.seed = seed
	s.position = 0
}

// SetPosition seeks to an absolute position. The next draw hashes p.
func (s *Stream) SetPosition(p uint32) {
	s.position = p
}

// advance returns the position for the current draw and moves past it.
func (s *Stream) advance() int32 {
	p := s.position
	s.position++
	return int32(p)
}

// NextUint returns the raw 32-bit hash of the current position.
func (s *Stream) NextUint() uint32 {
	return Mix1D(s.advance(), s.seed)
}

// NextInt returns the next value reinterpreted as signed.
func (s *Stream) NextInt() int32 {
	return int32(s.NextUint())
}

// NextFraction draws the next value mapped onto [0, 1].
func NextFraction[F Float](s *Stream) F {
	return ToFraction[F](s.advance(), s.seed)
}

// NextFloat32 is NextFraction for float32.
func (s *Stream) NextFloat32() float32 { return NextFraction[float32](s) }

// NextFloat64 is NextFraction for float64.
func (s *Stream) NextFloat64() float64 { return NextFraction[float64](s) }

// NextIntn draws a value in [0, n).
func (s *Stream) NextIntn(n uint32) uint32 {
	return reduce(s.NextUint(), n)
}

// NextIntRange draws a value in [lo, hi], both ends inclusive.
func (s *Stream) NextIntRange(lo, hi int32) int32 {
	return spread(s.NextUint(), lo, hi)
}

// NextChance draws true with probability p.
func (s *Stream) NextChance(p float64) bool {
	return hit(s.NextFloat64(), p)
}

// Uint64 consumes two draws, high word first. It lets *Stream serve as a
// rand.Source.
func (s *Stream) Uint64() uint64 {
	hi := uint64(s.NextUint())
	return hi<<32 | uint64(s.NextUint())
}
