package preview

import (
	"image"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Render samples a w*h grid and maps [0,1] onto grayscale. Out of range
// samples are clamped.
func Render(w, h int, sample func(x, y int) float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetGray(x, y, color.Gray{Y: level(sample(x, y))})
		}
	}
	return img
}

func level(v float64) uint8 {
	switch {
	case !(v > 0): // also NaN
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Encode writes img in the named format ("bmp" or "tiff").
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "bmp":
		return errors.Wrap(bmp.Encode(w, img), "encode bmp")
	case "tif", "tiff":
		return errors.Wrap(tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate}), "encode tiff")
	default:
		return errors.Errorf("unsupported image format %q", format)
	}
}

// FormatFromPath picks the format from the file extension. A path without an
// extension uses def; any other extension is an error.
func FormatFromPath(path, def string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "":
		return def, nil
	case "bmp", "tif", "tiff":
		return ext, nil
	}
	return "", errors.Errorf("unsupported image extension %q in %s", ext, path)
}
