package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/davidlopes/tinge/internal/core"
)

// Clamp01 clamps v into [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// HSLToRGB converts HSL fractions (hue as a fraction of a turn) to 8-bit RGB.
func HSLToRGB(h, s, l float64) (r, g, b int) {
	c := colorful.Hsl(wrapHue(h)*360.0, Clamp01(s), Clamp01(l)).Clamped()
	r8, g8, b8 := c.RGB255()
	return int(r8), int(g8), int(b8)
}

// RGBToHSL converts 8-bit RGB to HSL fractions.
func RGBToHSL(r, g, b int) (h, s, l float64) {
	c := colorful.Color{
		R: float64(clampInt(r, 0, 255)) / 255.0,
		G: float64(clampInt(g, 0, 255)) / 255.0,
		B: float64(clampInt(b, 0, 255)) / 255.0,
	}
	hDeg, s, l := c.Hsl()
	return wrapHue(hDeg / 360.0), s, l
}

// FormatHex serializes RGB components as "#rrggbb".
func FormatHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x",
		clampInt(r, 0, 255), clampInt(g, 0, 255), clampInt(b, 0, 255))
}

// ParseHex parses a "#rrggbb" or "rrggbb" string into RGB components.
// Shorthand "#rgb" is expanded.
func ParseHex(s string) (r, g, b int, err error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, core.ErrValidation(core.CodeInvalidHex,
			fmt.Sprintf("hex color must have 6 digits: %q", s))
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(strings.ToLower(hex), "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, core.ErrValidation(core.CodeInvalidHex,
			fmt.Sprintf("invalid hex color %q", s)).WithCause(err)
	}
	return rv, gv, bv, nil
}

// FormatHSL serializes HSL fractions as "hsl(H, S%, L%)" with H in degrees
// and S/L in percent, each rounded to the nearest integer.
func FormatHSL(h, s, l float64) string {
	deg := math.Round(wrapHue(h) * 360.0)
	if deg >= 360 {
		deg = 0
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)",
		int(deg),
		int(math.Round(Clamp01(s)*100.0)),
		int(math.Round(Clamp01(l)*100.0)))
}

// ParseHSL parses an "hsl(H, S%, L%)" string back into HSL fractions.
func ParseHSL(s string) (h, sat, l float64, err error) {
	var deg, sp, lp float64
	trimmed := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if _, err := fmt.Sscanf(trimmed, "hsl(%f,%f%%,%f%%)", &deg, &sp, &lp); err != nil {
		return 0, 0, 0, core.ErrValidation(core.CodeInvalidCandidate,
			fmt.Sprintf("invalid hsl() string %q", s)).WithCause(err)
	}
	return wrapHue(deg / 360.0), Clamp01(sp / 100.0), Clamp01(lp / 100.0), nil
}
