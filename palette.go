package logo565

import (
	"fmt"
	"image/color"
	"sort"
	"sync"

	"github.com/kyroy/kdtree"
)

// Palette holds every color the panel can reproduce through the
// RGB565 -> CIE LUT chain, paired with the CIELAB coordinate of the
// light each entry actually emits. Build it once (or share the
// process-wide Default); it is immutable and safe for concurrent reads.
type Palette struct {
	inputs []color.NRGBA // RGB888 values to store in asset files
	labs   []Lab         // perceived output color per entry
	tree   *kdtree.KDTree

	greenOnce sync.Once
	greenRef  color.NRGBA
}

// labPoint adapts a palette entry to the k-d tree point interface.
type labPoint struct {
	lab Lab
	idx int
}

func (p *labPoint) Dimensions() int { return 3 }

func (p *labPoint) Dimension(i int) float64 {
	switch i {
	case 0:
		return p.lab.L
	case 1:
		return p.lab.A
	default:
		return p.lab.B
	}
}

// New enumerates all 65536 RGB565 values through the panel's
// bit-replicating reconstruction and CIE LUT, deduplicates by emitted
// CIE triple (first hit in r5,g6,b5 order wins), sorts by triple for
// determinism and indexes the survivors in CIELAB space.
func New() (*Palette, error) {
	lut := buildCIELUT(cieMaxLevel)

	type cieKey struct{ r, g, b uint8 }
	seen := make(map[cieKey]color.NRGBA, 4096)
	for r5 := 0; r5 < 32; r5++ {
		r8 := uint8(r5<<3 | r5>>2)
		for g6 := 0; g6 < 64; g6++ {
			g8 := uint8(g6<<2 | g6>>4)
			for b5 := 0; b5 < 32; b5++ {
				b8 := uint8(b5<<3 | b5>>2)
				key := cieKey{r: lut[r8], g: lut[g8], b: lut[b8]}
				if _, ok := seen[key]; !ok {
					seen[key] = color.NRGBA{R: r8, G: g8, B: b8, A: 255}
				}
			}
		}
	}
	if len(seen) == 0 || len(seen) > 4096 {
		return nil, &PaletteBuildError{Detail: fmt.Sprintf("%d distinct CIE triples", len(seen))}
	}

	keys := make([]cieKey, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.r != b.r {
			return a.r < b.r
		}
		if a.g != b.g {
			return a.g < b.g
		}
		return a.b < b.b
	})

	p := &Palette{
		inputs: make([]color.NRGBA, len(keys)),
		labs:   make([]Lab, len(keys)),
	}
	points := make([]kdtree.Point, len(keys))
	for i, k := range keys {
		p.inputs[i] = seen[k]
		p.labs[i] = levelLab(k.r, k.g, k.b)
		points[i] = &labPoint{lab: p.labs[i], idx: i}
	}
	p.tree = kdtree.New(points)
	return p, nil
}

var (
	defaultOnce sync.Once
	defaultPal  *Palette
	defaultErr  error
)

// Default returns the shared process-wide palette, building it on first
// use. The enumeration is the expensive part of the whole pipeline and
// its result never changes, so batch callers should prefer this.
func Default() (*Palette, error) {
	defaultOnce.Do(func() {
		defaultPal, defaultErr = New()
	})
	return defaultPal, defaultErr
}

// Len returns the number of achievable colors.
func (p *Palette) Len() int { return len(p.inputs) }

// Color returns the RGB888 input value of entry i.
func (p *Palette) Color(i int) color.NRGBA { return p.inputs[i] }

// Lab returns the perceived CIELAB coordinate of entry i.
func (p *Palette) Lab(i int) Lab { return p.labs[i] }

// Nearest returns the index of the achievable color closest to q in
// CIELAB space. Ties resolve by the tree's traversal order, which is
// fixed for a given build.
func (p *Palette) Nearest(q Lab) int {
	hits := p.tree.KNN(&labPoint{lab: q}, 1)
	return hits[0].(*labPoint).idx
}

// NearestBatch matches a whole slice of queries, one index per query.
func (p *Palette) NearestBatch(qs []Lab) []int {
	out := make([]int, len(qs))
	for i, q := range qs {
		out[i] = p.Nearest(q)
	}
	return out
}

// GreenRef returns the palette entry the green-boost fix paints with:
// the nearest achievable match to the reference green (0,146,70).
// Memoized; the palette never changes after construction.
func (p *Palette) GreenRef() color.NRGBA {
	p.greenOnce.Do(func() {
		q := srgbToLab(greenRefR, greenRefG, greenRefB)
		p.greenRef = p.inputs[p.Nearest(q)]
	})
	return p.greenRef
}
