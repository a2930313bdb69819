package extract

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/davidlopes/tinge/internal/color"
)

var (
	svgHexPattern = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)
	svgRGBPattern = regexp.MustCompile(`rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)`)
)

// FromSVG scrapes literal color values from SVG markup. Vector documents
// carry no pixel coverage, so each color's area is its share of the literal
// occurrences.
func FromSVG(data []byte) ([]color.Candidate, error) {
	counts := make(map[string]int)
	order := make([]string, 0)

	record := func(hex string) {
		if _, seen := counts[hex]; !seen {
			order = append(order, hex)
		}
		counts[hex]++
	}

	for _, m := range svgHexPattern.FindAllString(string(data), -1) {
		r, g, b, err := color.ParseHex(m)
		if err != nil {
			continue
		}
		record(color.FormatHex(r, g, b))
	}
	for _, m := range svgRGBPattern.FindAllStringSubmatch(string(data), -1) {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r > 255 || g > 255 || b > 255 {
			continue
		}
		record(color.FormatHex(r, g, b))
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return nil, nil
	}

	// Most frequent first; occurrence order breaks ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	cands := make([]color.Candidate, 0, len(order))
	for _, hex := range order {
		if len(cands) >= DefaultMaxColors {
			break
		}
		r, g, b, err := color.ParseHex(hex)
		if err != nil {
			continue
		}
		area := float64(counts[hex]) / float64(total)
		cands = append(cands, color.FromRGB(r, g, b, area))
	}
	return cands, nil
}
