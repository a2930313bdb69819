package color

import "math"

// WCAG AA minimum contrast ratio for normal text.
const MinContrastAA = 4.5

// srgbLinear applies the sRGB gamma-decoding piecewise function to a
// channel value in [0,1].
func srgbLinear(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LuminanceRGB computes WCAG relative luminance for 8-bit RGB components.
// The result is in [0,1]: 0 for pure black, 1 for pure white.
func LuminanceRGB(r, g, b int) float64 {
	rl := srgbLinear(float64(clampInt(r, 0, 255)) / 255.0)
	gl := srgbLinear(float64(clampInt(g, 0, 255)) / 255.0)
	bl := srgbLinear(float64(clampInt(b, 0, 255)) / 255.0)
	return 0.2126*rl + 0.7152*gl + 0.0722*bl
}

// Luminance computes the candidate's WCAG relative luminance.
func (c Candidate) Luminance() float64 {
	return LuminanceRGB(c.R, c.G, c.B)
}

// ContrastLum computes the WCAG contrast ratio between two relative
// luminances. Symmetric in its arguments; range [1,21].
func ContrastLum(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Contrast computes the WCAG contrast ratio between two candidates.
func Contrast(a, b Candidate) float64 {
	return ContrastLum(a.Luminance(), b.Luminance())
}

// ReadableText returns black or white, whichever reads better on the given
// background: black when the background luminance exceeds 0.5, else white.
func ReadableText(bg Candidate) Candidate {
	if bg.Luminance() > 0.5 {
		return FromRGB(0, 0, 0, 0)
	}
	return FromRGB(255, 255, 255, 0)
}
