package theme

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/davidlopes/tinge/internal/color"
	"github.com/davidlopes/tinge/internal/core"
)

// workingSetSize is the number of candidates role assignment operates on.
// Fewer extracted colors are padded by synthesis, more are truncated.
const workingSetSize = 6

// Fixed destructive pair. Danger semantics should not vary with image
// content.
const (
	destructiveHex           = "#ff4444"
	destructiveForegroundHex = "#ffffff"
)

// Option configures Assign.
type Option func(*options)

type options struct {
	strict bool
	radius func() float64
}

// WithStrict makes Assign return an error when no valid candidates remain
// after filtering, instead of substituting the fallback color.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithRadiusSource injects the random source used for the cosmetic border
// radius. The function must return values in [0,1). Tests supply a fixed
// source to keep output deterministic.
func WithRadiusSource(fn func() float64) Option {
	return func(o *options) { o.radius = fn }
}

// Assign derives a complete theme from extracted candidate colors.
//
// The computation is pure and deterministic given its inputs, with one
// exception: the border radius is drawn from the (injectable) random
// source. Invalid candidates are dropped; an empty result set falls back to
// a fixed color unless WithStrict is set, so by default Assign cannot fail.
func Assign(candidates []color.Candidate, opts ...Option) (Theme, error) {
	o := options{radius: rand.Float64}
	for _, opt := range opts {
		opt(&o)
	}

	valid := make([]color.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Valid() {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		if o.strict {
			return Theme{}, core.ErrValidation(core.CodeNoCandidates,
				"no valid candidate colors to assign")
		}
		valid = []color.Candidate{color.Fallback()}
	}

	ws := normalize(valid)

	// Polarity follows the most dominant candidate, not the luminance order.
	dominant := ws[0]
	isDark := dominant.Lightness < 0.5

	byLum := make([]color.Candidate, len(ws))
	copy(byLum, ws)
	sort.SliceStable(byLum, func(i, j int) bool {
		return byLum[i].Luminance() < byLum[j].Luminance()
	})
	darkest := byLum[0]
	lightest := byLum[len(byLum)-1]

	// Background and foreground sit at opposite luminance extremes; the
	// nudges push them further apart before the repair pass.
	var bg, fg color.Candidate
	if isDark {
		bg = darkest.WithLightness(math.Max(darkest.Lightness-0.1, 0.05))
		fg = lightest.WithLightness(math.Min(lightest.Lightness+0.1, 0.95))
	} else {
		bg = lightest.WithLightness(math.Min(lightest.Lightness+0.1, 0.95))
		fg = darkest.WithLightness(math.Max(darkest.Lightness-0.1, 0.05))
	}
	fg = RepairContrast(fg, bg, color.MinContrastAA)

	bySat := make([]color.Candidate, len(ws))
	copy(bySat, ws)
	sort.SliceStable(bySat, func(i, j int) bool {
		return bySat[i].Saturation > bySat[j].Saturation
	})

	// Saturation is the brand-color signal.
	primary := bySat[0]

	secondary := bySat[2]
	if isDark {
		secondary = secondary.WithLightness(color.Clamp01(secondary.Lightness + 0.1))
	} else {
		secondary = secondary.WithLightness(color.Clamp01(secondary.Lightness - 0.1))
	}

	// Triadic rotation keeps the accent distinct from every extracted color.
	accent := primary.WithHue(primary.Hue + 1.0/3.0)
	accent = accent.WithSaturation(math.Min(accent.Saturation*1.1, 1.0))

	mutedIdx := 2
	if !isDark {
		mutedIdx = 3
	}
	muted := byLum[mutedIdx]
	mutedValue := muted.Hex
	if muted.Saturation > 0.3 {
		muted = muted.WithSaturation(0.3)
		mutedValue = muted.HSLString()
	}

	mutedFg := fg.WithSaturation(math.Min(fg.Saturation, 0.2))
	if isDark {
		mutedFg = mutedFg.WithLightness(color.Clamp01(mutedFg.Lightness - 0.25))
	} else {
		mutedFg = mutedFg.WithLightness(color.Clamp01(mutedFg.Lightness + 0.25))
	}
	mutedFg = RepairContrast(mutedFg, muted, color.MinContrastAA)

	var border color.Candidate
	if isDark {
		border = bg.WithLightness(color.Clamp01(bg.Lightness + 0.12))
	} else {
		border = bg.WithLightness(color.Clamp01(bg.Lightness - 0.12))
	}

	surfaceShift := 0.03
	if !isDark {
		surfaceShift = -0.03
	}
	card := bg.WithLightness(color.Clamp01(bg.Lightness + surfaceShift))
	popover := card

	mode := ModeLight
	if isDark {
		mode = ModeDark
	}

	roles := map[Role]string{
		RoleBackground:            bg.HSLString(),
		RoleForeground:            fg.HSLString(),
		RoleCard:                  card.HSLString(),
		RoleCardForeground:        color.ReadableText(card).Hex,
		RolePopover:               popover.HSLString(),
		RolePopoverForeground:     color.ReadableText(popover).Hex,
		RolePrimary:               primary.Hex,
		RolePrimaryForeground:     color.ReadableText(primary).Hex,
		RoleSecondary:             secondary.HSLString(),
		RoleSecondaryForeground:   color.ReadableText(secondary).Hex,
		RoleMuted:                 mutedValue,
		RoleMutedForeground:       mutedFg.HSLString(),
		RoleAccent:                accent.HSLString(),
		RoleAccentForeground:      color.ReadableText(accent).Hex,
		RoleDestructive:           destructiveHex,
		RoleDestructiveForeground: destructiveForegroundHex,
		RoleBorder:                border.HSLString(),
		RoleInput:                 border.HSLString(),
		RoleRing:                  primary.Hex,
	}

	return Theme{
		Mode:   mode,
		Roles:  roles,
		Radius: formatRadius(o.radius()),
	}, nil
}

// normalize ranks candidates by area descending and pads or truncates to
// exactly workingSetSize members. Padding synthesizes monochromatic
// variations of the dominant candidate so repeated runs on the same image
// stay reproducible.
func normalize(valid []color.Candidate) []color.Candidate {
	ws := make([]color.Candidate, len(valid))
	copy(ws, valid)
	sort.SliceStable(ws, func(i, j int) bool { return ws[i].Area > ws[j].Area })

	if len(ws) > workingSetSize {
		ws = ws[:workingSetSize]
	}

	dominant := ws[0]
	for k := 1; len(ws) < workingSetSize; k++ {
		step := float64(k)
		hue := dominant.Hue + 0.03*step
		var lightness float64
		if dominant.Lightness < 0.5 {
			lightness = dominant.Lightness + 0.14*step
		} else {
			lightness = dominant.Lightness - 0.14*step
		}
		ws = append(ws, color.FromHSL(hue, dominant.Saturation, lightness, 0))
	}
	return ws
}

// formatRadius maps a uniform draw in [0,1) onto a rem value in
// [0.25, 1.0).
func formatRadius(u float64) string {
	return fmt.Sprintf("%.2frem", 0.25+color.Clamp01(u)*0.75)
}
