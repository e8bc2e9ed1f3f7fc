package gradient

import (
	"hash/maphash"
	"math"

	"github.com/gogpu/corerender/internal/color"
)

const (
	// TextureWidth is the width, in texels, of the gradient texture.
	// Grounded on render_context.cpp's kGradTextureWidth; the constant's
	// defining header was not in the retrieved source subset, so this is
	// a documented choice (SPEC_FULL.md 5d) matching the value used
	// throughout the public renderer.
	TextureWidth = 512

	// WidthInSimpleRamps is how many two-texel simple ramps fit across
	// one row (kGradTextureWidthInSimpleRamps = kGradTextureWidth / 2).
	WidthInSimpleRamps = TextureWidth / 2

	// MaxTextureHeight bounds how many rows the gradient texture can
	// grow to in one flush (kMaxTextureHeight).
	MaxTextureHeight = 2048

	// complexGradientMarker flags a Location as a complex gradient row
	// rather than a (row, col) simple-ramp texel (ColorRampLocation's
	// kComplexGradientMarker).
	complexGradientMarker = ^uint32(0)
)

// Stop is one color stop of a gradient, in [0, 1] offset order.
type Stop struct {
	Offset float32
	Color  color.ColorU8
}

// Location is where a gradient's data lives in the texture. A simple
// gradient's two texels live at (Row, Col) and (Row, Col+1); a complex
// gradient occupies the entirety of row Row, flagged by Col ==
// complexGradientMarker.
type Location struct {
	Row uint32
	Col uint32
}

// IsComplex reports whether loc addresses a full-row complex gradient
// rather than a packed simple-ramp texel pair.
func (loc Location) IsComplex() bool {
	return loc.Col == complexGradientMarker
}

// Span is one "GradientSpan" instance: a horizontal run of the
// gradient texture's row Row to be filled by interpolating from Color0
// at X0Fixed to Color1 at X1Fixed, both in 0.16 fixed point.
type Span struct {
	X0Fixed, X1Fixed uint32
	Row              uint32
	Color0, Color1   color.ColorU8
}

type complexEntry struct {
	hash  uint64
	stops []Stop
	row   uint32
}

// Allocator packs gradients into the rows of one flush's gradient
// texture, deduplicating repeats so the same gradient reused across
// many draws costs one row (or one simple-ramp slot) regardless of how
// many draws reference it.
//
// Grounded on PLSRenderContext::LogicalFlush::allocateGradient: a
// simple-gradient map keyed by packed two-color pair, a
// content-addressed complex-gradient map, and the gradient_data_height
// overflow check run before either dedup table grows.
type Allocator struct {
	simpleGradients  map[uint64]uint32 // packed two-color key -> ramp texel index
	simpleWrites     [][2]color.ColorU8
	complexGradients []complexEntry
	complexByHash    map[uint64][]int // hash -> indices into complexGradients
	complexSpanCount int

	seed maphash.Seed
}

// NewAllocator returns an empty allocator for one logical flush.
func NewAllocator() *Allocator {
	return &Allocator{
		simpleGradients: make(map[uint64]uint32),
		complexByHash:   make(map[uint64][]int),
		seed:            maphash.MakeSeed(),
	}
}

// simpleDataHeight mirrors gradient_data_height's
// resource_texture_height<kGradTextureWidthInSimpleRamps> term.
func simpleDataHeight(simpleRampCount int) int {
	return (simpleRampCount + WidthInSimpleRamps - 1) / WidthInSimpleRamps
}

func gradientDataHeight(simpleRampCount, complexRampCount int) int {
	return simpleDataHeight(simpleRampCount) + complexRampCount
}

func packColor(c color.ColorU8) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

func packSimpleKey(c0, c1 color.ColorU8) uint64 {
	return uint64(packColor(c0)) | uint64(packColor(c1))<<32
}

// AddSimple allocates, or returns the existing location of, a two-texel
// simple gradient running from c0 at offset 0 to c1 at offset 1. ok is
// false if the texture ran out of rows; the caller must flush and
// retry.
func (a *Allocator) AddSimple(c0, c1 color.ColorU8) (loc Location, ok bool) {
	key := packSimpleKey(c0, c1)
	if idx, found := a.simpleGradients[key]; found {
		return simpleLocation(idx), true
	}
	if gradientDataHeight(len(a.simpleGradients)+1, len(a.complexGradients)) > MaxTextureHeight {
		return Location{}, false
	}
	idx := uint32(len(a.simpleGradients) * 2)
	a.simpleGradients[key] = idx
	a.simpleWrites = append(a.simpleWrites, [2]color.ColorU8{c0, c1})
	return simpleLocation(idx), true
}

func simpleLocation(rampTexelsIdx uint32) Location {
	return Location{Row: rampTexelsIdx / TextureWidth, Col: rampTexelsIdx % TextureWidth}
}

// AddComplex allocates, or returns the existing row of, a gradient with
// more than two stops (or stops not spanning the full [0, 1] range).
// stops must already be sorted by Offset. ok is false if the texture
// ran out of rows.
func (a *Allocator) AddComplex(stops []Stop) (loc Location, ok bool) {
	h := hashStops(a.seed, stops)
	for _, idx := range a.complexByHash[h] {
		if stopsEqual(a.complexGradients[idx].stops, stops) {
			return Location{Row: a.complexGradients[idx].row, Col: complexGradientMarker}, true
		}
	}
	if gradientDataHeight(len(a.simpleGradients), len(a.complexGradients)+1) > MaxTextureHeight {
		return Location{}, false
	}
	row := uint32(len(a.complexGradients))
	idx := len(a.complexGradients)
	a.complexGradients = append(a.complexGradients, complexEntry{hash: h, stops: stops, row: row})
	a.complexByHash[h] = append(a.complexByHash[h], idx)
	a.complexSpanCount += len(stops) + 1
	return Location{Row: row, Col: complexGradientMarker}, true
}

func hashStops(seed maphash.Seed, stops []Stop) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, s := range stops {
		var buf [8]byte
		bitsPutFloat32(buf[0:4], s.Offset)
		buf[4], buf[5], buf[6], buf[7] = s.Color.R, s.Color.G, s.Color.B, s.Color.A
		h.Write(buf[:])
	}
	return h.Sum64()
}

func bitsPutFloat32(b []byte, f float32) {
	bits := math.Float32bits(f)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}

func stopsEqual(a, b []Stop) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SimpleDataHeight returns the number of texture rows consumed by
// simple-ramp data so far.
func (a *Allocator) SimpleDataHeight() int {
	return simpleDataHeight(len(a.simpleGradients))
}

// ComplexDataHeight returns the number of texture rows consumed by
// complex gradients so far (one row per gradient).
func (a *Allocator) ComplexDataHeight() int {
	return len(a.complexGradients)
}

// DataHeight returns the total number of rows the gradient texture
// must have to hold everything allocated so far.
func (a *Allocator) DataHeight() int {
	return a.SimpleDataHeight() + a.ComplexDataHeight()
}

// ComplexSpanCount returns the total number of GradientSpan instances
// EmitSpans will produce, for resource-counting ahead of time.
func (a *Allocator) ComplexSpanCount() int {
	return a.complexSpanCount
}

// SimpleWrites returns the pending two-texel color pairs to write into
// the gradient texture's simple-ramp rows, in allocation order.
func (a *Allocator) SimpleWrites() [][2]color.ColorU8 {
	return a.simpleWrites
}

// EmitSpans returns the GradientSpan instances needed to render every
// complex gradient allocated so far, one row's worth of spans at a
// time in allocation (row) order.
//
// Grounded on logicalFlush's complex-gradient write-out loop: stop
// offsets are converted to 0.16 fixed-point x-coordinates across the
// texture's width, a span is emitted per stop transition, and a final
// half-pixel-wide cap span fills the boundary pixel at x=1.
func (a *Allocator) EmitSpans() []Span {
	spans := make([]Span, 0, a.complexSpanCount)
	const w = float32(TextureWidth - 1)
	for _, entry := range a.complexGradients {
		stops := entry.stops
		if len(stops) == 0 {
			continue
		}
		lastColor := stops[0].Color
		lastXFixed := uint32(0)
		for _, s := range stops {
			x := s.Offset*w + 0.5
			xFixed := uint32(x * (65536 / float32(TextureWidth)))
			spans = append(spans, Span{
				X0Fixed: lastXFixed,
				X1Fixed: xFixed,
				Row:     entry.row,
				Color0:  lastColor,
				Color1:  s.Color,
			})
			lastColor = s.Color
			lastXFixed = xFixed
		}
		spans = append(spans, Span{
			X0Fixed: lastXFixed,
			X1Fixed: 65535,
			Row:     entry.row,
			Color0:  lastColor,
			Color1:  lastColor,
		})
	}
	return spans
}
