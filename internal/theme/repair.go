package theme

import "github.com/davidlopes/tinge/internal/color"

const (
	repairStep     = 0.05
	repairAttempts = 20
)

// RepairContrast nudges the candidate's lightness until its contrast ratio
// against bg reaches minRatio. Each attempt moves lightness by 5 percentage
// points, lightening on dark backgrounds and darkening on light ones, for
// at most 20 attempts.
//
// Best effort only: if the budget runs out before the target ratio is
// reached (a very muted background can make 4.5:1 unreachable), the last
// attempt is returned as-is.
func RepairContrast(c, bg color.Candidate, minRatio float64) color.Candidate {
	dir := 1.0
	if bg.Luminance() > 0.5 {
		dir = -1.0
	}

	cur := c
	for i := 0; i < repairAttempts; i++ {
		if color.Contrast(cur, bg) >= minRatio {
			return cur
		}
		cur = cur.WithLightness(color.Clamp01(cur.Lightness + dir*repairStep))
	}
	return cur
}
