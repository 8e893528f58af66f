package field

import "testing"

func TestSamplerGrid(t *testing.T) {
	s := NewSampler(42)
	grid := s.Grid(-4, 10, 8, 3)
	if len(grid) != 24 {
		t.Fatalf("Grid length = %d, want 24", len(grid))
	}
	for y := range 3 {
		for x := range 8 {
			if got, want := grid[y*8+x], s.At(-4+x, 10+y); got != want {
				t.Errorf("grid[%d][%d] = %v, At = %v", y, x, got, want)
			}
		}
	}
	if g := s.Grid(0, 0, 0, 5); g != nil {
		t.Errorf("empty Grid = %v, want nil", g)
	}
}

// TestSamplerSeamless verifies overlapping grids agree on shared cells.
func TestSamplerSeamless(t *testing.T) {
	s := NewSampler(7)
	a := s.Grid(0, 0, 16, 1)
	b := s.Grid(8, 0, 16, 1)
	for i := range 8 {
		if a[8+i] != b[i] {
			t.Errorf("cell %d: %v != %v", 8+i, a[8+i], b[i])
		}
	}
}

func TestSamplerAt3Range(t *testing.T) {
	s := NewSampler(3)
	for x := -20; x < 20; x += 3 {
		for y := -20; y < 20; y += 5 {
			if v := s.At3(x, y, x-y); v < 0 || v > 1 {
				t.Errorf("At3(%d, %d, %d) = %f", x, y, x-y, v)
			}
		}
	}
}

func TestSamplerSlice(t *testing.T) {
	s := NewSampler(3)
	a := s.Slice(5, -2, 40, 6, 4)
	if len(a) != 24 {
		t.Fatalf("Slice length = %d, want 24", len(a))
	}
	for y := range 4 {
		for x := range 6 {
			if got, want := a[y*6+x], s.At3(5+x, -2+y, 40); got != want {
				t.Errorf("slice[%d][%d] = %v, At3 = %v", y, x, got, want)
			}
		}
	}
	b := s.Slice(5, -2, 41, 6, 4)
	same := true
	for i := range a {
		same = same && a[i] == b[i]
	}
	if same {
		t.Error("adjacent depths produced identical slices")
	}
	if g := s.Slice(0, 0, 0, 3, -1); g != nil {
		t.Errorf("empty Slice = %v, want nil", g)
	}
}

func BenchmarkSamplerAt(b *testing.B) {
	s := NewSampler(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.At(i%1024, (i*31)%1024)
	}
}
