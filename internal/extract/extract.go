// Package extract turns image files into candidate color lists for the
// theme assigner. Raster formats are decoded and cluster-sampled; SVG
// markup is scraped for literal color values.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davidlopes/tinge/internal/color"
	"github.com/davidlopes/tinge/internal/core"
)

// DefaultMaxColors bounds the number of clusters reported per image. The
// assigner only keeps the dominant few, but a wider list gives it more to
// choose from.
const DefaultMaxColors = 16

// SupportedExtensions lists the file extensions Extract understands.
func SupportedExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".svg"}
}

// Supported reports whether the path has a supported image extension.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions() {
		if ext == s {
			return true
		}
	}
	return false
}

// Extract reads the image at path and returns its candidate colors, each
// annotated with the fraction of the image it covers.
func Extract(path string) ([]color.Candidate, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif":
		f, err := os.Open(path)
		if err != nil {
			return nil, core.ErrIO(core.CodeImageDecodeFailed,
				fmt.Sprintf("opening %s", path)).WithCause(err)
		}
		defer f.Close()
		return FromReader(f)
	case ".svg":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, core.ErrIO(core.CodeImageDecodeFailed,
				fmt.Sprintf("reading %s", path)).WithCause(err)
		}
		return FromSVG(data)
	default:
		return nil, core.ErrDecode(core.CodeUnsupportedFormat,
			fmt.Sprintf("unsupported image format %q", ext)).WithDetail("path", path)
	}
}
