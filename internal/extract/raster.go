package extract

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/davidlopes/tinge/internal/color"
	"github.com/davidlopes/tinge/internal/core"
)

// targetSamples caps the number of pixels examined per image so extraction
// stays fast on large photos.
const targetSamples = 20000

// mergeDistance is the CIE-Lab distance below which two clusters are
// considered the same color.
const mergeDistance = 0.12

// FromReader decodes a raster image and clusters its pixels into
// candidates.
func FromReader(r io.Reader) ([]color.Candidate, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, core.ErrDecode(core.CodeImageDecodeFailed, "decoding image").WithCause(err)
	}
	return FromImage(img, DefaultMaxColors), nil
}

type bucket struct {
	count            int
	sumR, sumG, sumB int
}

// FromImage clusters the image's pixels into at most maxColors candidates,
// each carrying its fraction of the sampled area. Fully transparent pixels
// are ignored.
func FromImage(img image.Image, maxColors int) []color.Candidate {
	if maxColors <= 0 {
		maxColors = DefaultMaxColors
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	step := 1
	for (w/step)*(h/step) > targetSamples {
		step++
	}

	// Quantize to 4 bits per channel; averaging within each bucket
	// recovers the representative color.
	buckets := make(map[uint16]*bucket)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, a := img.At(x, y).RGBA()
			if a < 0x8000 {
				continue
			}
			r8, g8, b8 := int(r>>8), int(g>>8), int(b>>8)
			key := uint16(r8>>4)<<8 | uint16(g8>>4)<<4 | uint16(b8>>4)
			bk := buckets[key]
			if bk == nil {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.count++
			bk.sumR += r8
			bk.sumG += g8
			bk.sumB += b8
			total++
		}
	}
	if total == 0 {
		return nil
	}

	type cluster struct {
		r, g, b int
		count   int
	}
	clusters := make([]cluster, 0, len(buckets))
	for _, bk := range buckets {
		clusters = append(clusters, cluster{
			r:     bk.sumR / bk.count,
			g:     bk.sumG / bk.count,
			b:     bk.sumB / bk.count,
			count: bk.count,
		})
	}
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].count != clusters[j].count {
			return clusters[i].count > clusters[j].count
		}
		// Deterministic order for equal counts.
		a, b := clusters[i], clusters[j]
		return a.r<<16|a.g<<8|a.b < b.r<<16|b.g<<8|b.b
	})

	// Greedy merge: absorb clusters perceptually close to an already-kept
	// one, so near-duplicate shades don't crowd out distinct colors.
	kept := make([]cluster, 0, maxColors)
	for _, c := range clusters {
		merged := false
		for i := range kept {
			if labDistance(kept[i].r, kept[i].g, kept[i].b, c.r, c.g, c.b) < mergeDistance {
				kept[i].count += c.count
				merged = true
				break
			}
		}
		if !merged && len(kept) < maxColors {
			kept = append(kept, c)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].count > kept[j].count })

	cands := make([]color.Candidate, 0, len(kept))
	for _, c := range kept {
		area := float64(c.count) / float64(total)
		cands = append(cands, color.FromRGB(c.r, c.g, c.b, area))
	}
	return cands
}

func labDistance(r1, g1, b1, r2, g2, b2 int) float64 {
	a := colorful.Color{R: float64(r1) / 255, G: float64(g1) / 255, B: float64(b1) / 255}
	b := colorful.Color{R: float64(r2) / 255, G: float64(g2) / 255, B: float64(b2) / 255}
	return a.DistanceLab(b)
}
