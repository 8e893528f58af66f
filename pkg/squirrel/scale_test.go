package squirrel

import (
	"math"
	"testing"
)

func TestToRangeBounds(t *testing.T) {
	if got := ToRange[float64](0, 0, math.MaxUint32); got != 0 {
		t.Errorf("ToRange(0) = %v, want 0", got)
	}
	if got := ToRange[float64](math.MaxUint32, 0, math.MaxUint32); got != 1 {
		t.Errorf("ToRange(max) = %v, want 1", got)
	}
	if got := ToRange[float32](math.MaxUint32, 0, math.MaxUint32); got != 1 {
		t.Errorf("ToRange[float32](max) = %v, want 1", got)
	}
	if got := ToRange[float64](15, 10, 20); got != 0.5 {
		t.Errorf("ToRange(15, 10, 20) = %v, want 0.5", got)
	}
}

// TestToRangeDegenerate checks that hi <= lo produces Inf or NaN instead of panicking.
func TestToRangeDegenerate(t *testing.T) {
	if got := ToRange[float64](5, 3, 3); !math.IsInf(got, 1) {
		t.Errorf("ToRange(5, 3, 3) = %v, want +Inf", got)
	}
	if got := ToRange[float64](1, 3, 3); !math.IsInf(got, -1) {
		t.Errorf("ToRange(1, 3, 3) = %v, want -Inf", got)
	}
	if got := ToRange[float64](3, 3, 3); !math.IsNaN(got) {
		t.Errorf("ToRange(3, 3, 3) = %v, want NaN", got)
	}
	if got := ToRange[float32](3, 3, 3); !math.IsNaN(float64(got)) {
		t.Errorf("ToRange[float32](3, 3, 3) = %v, want NaN", got)
	}
	// reversed bounds still divide: (1-5)/(2-5)
	if got := ToRange[float64](1, 5, 2); math.Abs(got-4.0/3) > 1e-12 {
		t.Errorf("ToRange(1, 5, 2) = %v, want 4/3", got)
	}
}

type meters float64

func TestToRangeNamedFloat(t *testing.T) {
	var m meters = ToRange[meters](5, 0, 10)
	if m != 0.5 {
		t.Errorf("ToRange[meters] = %v, want 0.5", m)
	}
}

func TestToFractionGolden(t *testing.T) {
	want := float64(0xbabd7ed1) / math.MaxUint32
	if got := ToFraction[float64](5, 42); got != want {
		t.Errorf("ToFraction(5, 42) = %v, want %v", got, want)
	}
}

// TestFractionRange verifies every fraction helper stays in its closed interval.
func TestFractionRange(t *testing.T) {
	s := New(12345)
	for range 5000 {
		v, seed := s.NextInt(), s.NextUint()
		if f := ToFraction[float32](v, seed); f < 0 || f > 1 {
			t.Fatalf("ToFraction[float32](%d, %d) = %v", v, seed, f)
		}
		if f := ToFraction[float64](v, seed); f < 0 || f > 1 {
			t.Fatalf("ToFraction[float64](%d, %d) = %v", v, seed, f)
		}
		if f := ToSignedFraction[float64](v, seed); f < -1 || f > 1 {
			t.Fatalf("ToSignedFraction(%d, %d) = %v", v, seed, f)
		}
		if f := Fraction2D[float64](v, v>>3, seed); f < 0 || f > 1 {
			t.Fatalf("Fraction2D = %v", f)
		}
		if f := Fraction3D[float32](v, v>>3, v>>7, seed); f < 0 || f > 1 {
			t.Fatalf("Fraction3D = %v", f)
		}
		if f := Fraction4D[float64](v, v>>3, v>>7, v>>11, seed); f < 0 || f > 1 {
			t.Fatalf("Fraction4D = %v", f)
		}
	}
}

func TestFractionMean(t *testing.T) {
	const n = 100000
	sum := 0.0
	for i := range n {
		sum += ToFraction[float64](int32(i), 3)
	}
	if mean := sum / n; math.Abs(mean-0.5) > 0.01 {
		t.Errorf("mean fraction = %v, want ~0.5", mean)
	}
}

func TestIntn(t *testing.T) {
	want := []uint32{0, 9, 4, 8, 0}
	for i, w := range want {
		if got := Intn(int32(i), 7, 10); got != w {
			t.Errorf("Intn(%d, 7, 10) = %d, want %d", i, got, w)
		}
	}
	for i := range 1000 {
		if got := Intn(int32(i), 1, 0); got != 0 {
			t.Fatalf("Intn(n=0) = %d", got)
		}
		if got := Intn(int32(i), 1, 6); got >= 6 {
			t.Fatalf("Intn(n=6) = %d", got)
		}
	}
}

func TestIntRange(t *testing.T) {
	cases := []struct{ lo, hi int32 }{
		{-3, 3},
		{3, -3},
		{0, 0},
		{math.MinInt32, math.MaxInt32},
		{math.MaxInt32 - 1, math.MaxInt32},
	}
	for _, tc := range cases {
		lo, hi := tc.lo, tc.hi
		if hi < lo {
			lo, hi = hi, lo
		}
		for i := range 2000 {
			got := IntRange(int32(i), 9, tc.lo, tc.hi)
			if got < lo || got > hi {
				t.Fatalf("IntRange(%d, %d) = %d out of bounds", tc.lo, tc.hi, got)
			}
		}
	}

	// both ends are reachable
	seen := map[int32]bool{}
	for i := range 1000 {
		seen[IntRange(int32(i), 9, -2, 2)] = true
	}
	for v := int32(-2); v <= 2; v++ {
		if !seen[v] {
			t.Errorf("IntRange(-2, 2) never produced %d", v)
		}
	}
}

func TestChance(t *testing.T) {
	for i := range 1000 {
		if Chance(int32(i), 5, 0) {
			t.Fatal("Chance(p=0) returned true")
		}
		if !Chance(int32(i), 5, 1) {
			t.Fatal("Chance(p=1) returned false")
		}
	}
	hits := 0
	for i := range 10000 {
		if Chance(int32(i), 5, 0.25) {
			hits++
		}
	}
	if hits < 2200 || hits > 2800 {
		t.Errorf("Chance(0.25) hit %d of 10000", hits)
	}
}
