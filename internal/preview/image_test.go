package preview

import (
	"bytes"
	"math"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"squirrel-noise/internal/field"
	"squirrel-noise/pkg/squirrel"
)

func TestRenderLevels(t *testing.T) {
	img := Render(4, 1, func(x, _ int) float64 {
		return []float64{-0.5, 0, 1.5, math.NaN()}[x]
	})
	want := []uint8{0, 0, 255, 0}
	for x, w := range want {
		if got := img.GrayAt(x, 0).Y; got != w {
			t.Errorf("pixel %d = %d, want %d", x, got, w)
		}
	}
	if got := Render(1, 1, func(int, int) float64 { return 0.5 }).GrayAt(0, 0).Y; got != 128 {
		t.Errorf("0.5 maps to %d, want 128", got)
	}
}

func TestRenderHashPlane(t *testing.T) {
	img := Render(8, 8, func(x, y int) float64 {
		return squirrel.Fraction2D[float64](int32(x), int32(y), 1)
	})
	for y := range 8 {
		for x := range 8 {
			want := level(squirrel.Fraction2D[float64](int32(x), int32(y), 1))
			if got := img.GrayAt(x, y).Y; got != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	s := field.NewSampler(42)
	img := Render(32, 16, s.At)

	var buf bytes.Buffer
	if err := Encode(&buf, img, "BMP"); err != nil {
		t.Fatalf("Encode bmp: %v", err)
	}
	decoded, err := bmp.Decode(&buf)
	if err != nil {
		t.Fatalf("bmp.Decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("bmp bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}

	buf.Reset()
	if err := Encode(&buf, img, "tiff"); err != nil {
		t.Fatalf("Encode tiff: %v", err)
	}
	decoded, err = tiff.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("tiff.Decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("tiff bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}

	if err := Encode(&buf, img, "gif"); err == nil {
		t.Error("Encode gif succeeded, want error")
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]string{
		"out.bmp":   "bmp",
		"OUT.TIFF":  "tiff",
		"a/b/c.tif": "tif",
		"noext":     "bmp",
	}
	for path, want := range cases {
		got, err := FormatFromPath(path, "bmp")
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %q, %v, want %q", path, got, err, want)
		}
	}
	for _, path := range []string{"noise.png", "image.jpeg", "a.b/c.gif"} {
		if got, err := FormatFromPath(path, "bmp"); err == nil {
			t.Errorf("FormatFromPath(%q) = %q, want error", path, got)
		}
	}
}
