// Package color provides the color value types and WCAG math used by the
// theme assigner: candidate colors extracted from an image, HSL/RGB
// conversion, and relative luminance / contrast ratio computation.
package color

import (
	"math"

	"github.com/davidlopes/tinge/internal/core"
)

// Candidate is an immutable color extracted from a source image, annotated
// with its HSL components and the fraction of the image it covers.
type Candidate struct {
	Hex        string  // canonical "#rrggbb"
	R, G, B    int     // [0,255]
	Hue        float64 // fraction of a full turn, [0,1)
	Saturation float64 // [0,1]
	Lightness  float64 // [0,1]
	Area       float64 // relative coverage in the source image, [0,1]
}

// New validates and constructs a Candidate from RGB components and
// precomputed HSL fields. Non-finite HSL values are rejected.
func New(r, g, b int, hue, sat, light, area float64) (Candidate, error) {
	if !finite(hue) || !finite(sat) || !finite(light) {
		return Candidate{}, core.ErrValidation(core.CodeInvalidCandidate,
			"hue, saturation and lightness must be finite")
	}
	c := Candidate{
		Hex:        FormatHex(r, g, b),
		R:          clampInt(r, 0, 255),
		G:          clampInt(g, 0, 255),
		B:          clampInt(b, 0, 255),
		Hue:        wrapHue(hue),
		Saturation: Clamp01(sat),
		Lightness:  Clamp01(light),
		Area:       Clamp01(area),
	}
	return c, nil
}

// FromRGB constructs a Candidate from RGB components, deriving HSL.
func FromRGB(r, g, b int, area float64) Candidate {
	h, s, l := RGBToHSL(r, g, b)
	c, _ := New(r, g, b, h, s, l, area)
	return c
}

// FromHSL constructs a Candidate from HSL fractions, deriving RGB.
// Inputs are clamped, so the result is always valid.
func FromHSL(hue, sat, light, area float64) Candidate {
	hue = wrapHue(hue)
	sat = Clamp01(sat)
	light = Clamp01(light)
	r, g, b := HSLToRGB(hue, sat, light)
	return Candidate{
		Hex:        FormatHex(r, g, b),
		R:          r,
		G:          g,
		B:          b,
		Hue:        hue,
		Saturation: sat,
		Lightness:  light,
		Area:       Clamp01(area),
	}
}

// Fallback is the candidate substituted when extraction yields nothing
// usable. An indigo chosen to produce a reasonable default theme.
func Fallback() Candidate {
	return FromRGB(99, 102, 241, 1.0)
}

// Valid reports whether all HSL fields are finite numbers.
func (c Candidate) Valid() bool {
	return finite(c.Hue) && finite(c.Saturation) && finite(c.Lightness)
}

// WithLightness derives a copy with the given lightness, recomputing RGB
// and hex. The receiver is not modified.
func (c Candidate) WithLightness(l float64) Candidate {
	return FromHSL(c.Hue, c.Saturation, l, c.Area)
}

// WithSaturation derives a copy with the given saturation.
func (c Candidate) WithSaturation(s float64) Candidate {
	return FromHSL(c.Hue, s, c.Lightness, c.Area)
}

// WithHue derives a copy with the given hue fraction.
func (c Candidate) WithHue(h float64) Candidate {
	return FromHSL(h, c.Saturation, c.Lightness, c.Area)
}

// HSLString serializes the candidate as an hsl(H, S%, L%) functional string.
func (c Candidate) HSLString() string {
	return FormatHSL(c.Hue, c.Saturation, c.Lightness)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapHue normalizes a hue fraction into [0,1).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1.0
	}
	return h
}
