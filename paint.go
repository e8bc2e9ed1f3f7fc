package corerender

import (
	"github.com/gogpu/corerender/backend"
	"github.com/gogpu/corerender/internal/color"
	"github.com/gogpu/corerender/internal/drawbuilder"
	"github.com/gogpu/corerender/internal/gradient"
)

// PaintType selects what a RenderPaint samples.
type PaintType int

const (
	PaintSolidColor PaintType = iota
	PaintLinearGradient
	PaintRadialGradient
	PaintImage
	PaintClipUpdate
)

// Style selects whether a RenderPaint fills or strokes the path it's
// paired with.
type Style int

const (
	StyleFill Style = iota
	StyleStroke
)

// BlendMode selects how a draw's output composites onto the render
// target. Values mirror the "PLS blend mode" enum the flush engine's
// sort key packs into its blendMode field.
type BlendMode uint8

const (
	BlendSrcOver BlendMode = iota
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendMultiply
)

// RenderPaint is the styling a RenderPath is drawn with: a color or
// gradient or image source, a fill/stroke style, and (for strokes) the
// join/cap/thickness the path draw builder budgets vertices against.
//
// Grounded on the teacher's paint.go, generalized from an immediate CPU
// fill/stroke pair into the deferred renderer's fuller paint model:
// gradients, image paints, blend modes and a feather radius, all of
// which internal/drawbuilder.Options and internal/gradient.Allocator
// need to plan and pack a draw.
type RenderPaint struct {
	Type  PaintType
	Style Style

	Color color.ColorU8

	GradientStops  []gradient.Stop
	GradientStart  [2]float32
	GradientEnd    [2]float32
	GradientRadius float32 // > 0 selects radial over linear

	Image backend.ImageTexture

	BlendMode BlendMode

	StrokeThickness float32
	StrokeJoin      drawbuilder.Join
	StrokeCap       drawbuilder.Cap

	// Feather is the Gaussian-like softening radius in path space; 0
	// means unfeathered.
	Feather float32
}

// NewSolidPaint returns a fill paint of the given color.
func NewSolidPaint(c color.ColorU8) *RenderPaint {
	return &RenderPaint{Type: PaintSolidColor, Color: c}
}

// strokeStyle converts p's stroke fields to drawbuilder's StrokeStyle,
// a zero-radius StrokeStyle when p is a fill paint.
func (p *RenderPaint) strokeStyle() drawbuilder.StrokeStyle {
	if p.Style != StyleStroke {
		return drawbuilder.StrokeStyle{}
	}
	return drawbuilder.StrokeStyle{
		Radius: p.StrokeThickness / 2,
		Join:   p.StrokeJoin,
		Cap:    p.StrokeCap,
	}
}

// isOpaque reports whether this paint's own color/gradient stops carry
// no transparency, consulted for the drawContents.opaquePaint flag and
// the MSAA front-to-back sort optimization.
func (p *RenderPaint) isOpaque() bool {
	switch p.Type {
	case PaintSolidColor:
		return p.Color.A == 0xFF
	case PaintLinearGradient, PaintRadialGradient:
		for _, s := range p.GradientStops {
			if s.Color.A != 0xFF {
				return false
			}
		}
		return len(p.GradientStops) > 0
	default:
		return false
	}
}
