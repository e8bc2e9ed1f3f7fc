package feather

import (
	"math"

	"github.com/gogpu/corerender/internal/bezier"
	"github.com/gogpu/corerender/internal/rawpath"
)

// FeatherPolarSegmentMinAngle floors the per-join rotation budget so a
// very large feather radius never demands a vanishingly small polar
// segment. Chosen value: 1 degree.
const FeatherPolarSegmentMinAngle float32 = math.Pi / 180

// cuspPadding pads chops that straddle a cusp, matching the original's
// CUSP_PADDING: chosen empirically to stay clear of the curve's
// undefined tangent right at the cusp.
const cuspPadding = 1e-2

// MakeSoftenedCopy returns a new raw path where every cubic has first
// been chopped into convex, non-inflecting arcs (so the stroke/feather
// math downstream never has to handle an inflection) and then softened
// in proportion to its local curvature, so a 1-dimensional gaussian
// feather of the given radius looks right even where the curve bends
// away from the feather's normal direction.
//
// feather <= 0 or NaN returns an unsoftened copy of src: every other
// degenerate-geometry case in this module culls rather than
// propagates NaN.
func MakeSoftenedCopy(src *rawpath.RawPath, feather, matrixMaxScale float32) *rawpath.RawPath {
	dst := rawpath.New()
	if feather <= 0 || math.IsNaN(float64(feather)) {
		copyUnsoftened(dst, src)
		return dst
	}

	// Chop into segments that rotate no more than rotationBetweenJoins,
	// since curvature is what breaks 1-dimensional feathering along the
	// curve's normal vector.
	r := feather * (FeatherTextureStddevs / 2) * matrixMaxScale * 0.25
	polarSegmentsPerRadian := bezier.PolarSegmentsPerRadian(bezier.DefaultDevicePrecision, r)
	rotationBetweenJoins := FeatherPolarSegmentMinAngle
	if polarSegmentsPerRadian > 0 {
		if v := 1 / polarSegmentsPerRadian; v > rotationBetweenJoins {
			rotationBetweenJoins = v
		}
	}

	var prev rawpath.Point
	pts := src.Points()
	src.Iterate(func(verb rawpath.Verb, idx int) {
		switch verb {
		case rawpath.VerbMove:
			dst.MoveTo(pts[idx])
			prev = pts[idx]
		case rawpath.VerbLine:
			dst.LineTo(pts[idx])
			prev = pts[idx]
		case rawpath.VerbCubic:
			cubic := [4]bezier.Point{prev, pts[idx], pts[idx+1], pts[idx+2]}
			softenCubic(dst, cubic, feather, rotationBetweenJoins)
			prev = cubic[3]
		case rawpath.VerbClose:
			dst.Close()
		}
	})
	return dst
}

// softenCubic chops one cubic into convex-90 arcs and softens each in
// turn, passing a straight line through any arc that straddles a cusp.
func softenCubic(dst *rawpath.RawPath, pts [4]bezier.Point, feather, rotationBetweenJoins float32) {
	for _, arc := range bezier.ChopConvex90(pts, cuspPadding) {
		if arc.AtCusp {
			dst.LineTo(arc.Pts[3])
			continue
		}

		tan0 := bezier.StartTangentOf(arc.Pts)
		tan1 := bezier.EndTangentOf(arc.Pts)
		// The curve does not inflect within an arc, so F'(.5) x F''(.5)
		// (and therefore the turn direction) has the same sign as
		// (p2-p0) x (p3-p1).
		turn := arc.Pts[2].Sub(arc.Pts[0]).Cross(arc.Pts[3].Sub(arc.Pts[1]))
		if turn == 0 {
			// Joins and cusps where points are co-located.
			turn = tan0.Cross(tan1)
		}
		totalRotation := float32(math.Copysign(float64(bezier.AngleBetween(tan0, tan1)), float64(turn)))
		signedRotationBetweenJoins := float32(math.Copysign(float64(rotationBetweenJoins), float64(totalRotation)))
		addSoftenedCubic(dst, arc.Pts, feather, signedRotationBetweenJoins, totalRotation)
	}
}

// addSoftenedCubic flattens pts in proportion to its local curvature,
// recursing first if the arc rotates more than rotationBetweenJoins and
// its endpoints are further apart than one feather standard deviation.
func addSoftenedCubic(dst *rawpath.RawPath, pts [4]bezier.Point, feather, rotationBetweenJoins, totalRotation float32) {
	// ("feather" is 2 standard deviations, so (feather^2)/4 is one
	// standard deviation squared.)
	if math.Abs(float64(totalRotation)) > math.Abs(float64(rotationBetweenJoins))+1e-2 &&
		pts[3].Sub(pts[0]).LengthSquared() > feather*feather*0.25 {
		chopTheta := float32(math.Ceil(float64(totalRotation/(2*rotationBetweenJoins)))) * rotationBetweenJoins
		chopTan := bezier.StartTangentOf(pts).Rotate(chopTheta)
		if t, ok := bezier.SolveTForTangentDirection(pts, chopTan); ok {
			chopped := bezier.ChopAt(pts, t)
			var first, second [4]bezier.Point
			copy(first[:], chopped[0:4])
			copy(second[:], chopped[3:7])
			addSoftenedCubic(dst, first, feather, rotationBetweenJoins, totalRotation*0.5)
			addSoftenedCubic(dst, second, feather, rotationBetweenJoins, totalRotation*0.5)
			return
		}
	}

	height, maxHeightT := bezier.MaxHeight(pts)

	// Measure curvature across one standard deviation of the feather.
	desiredSpread := feather * 0.5
	theta := bezier.CurvatureAt(pts, maxHeightT, desiredSpread)

	// The feather gets softer with curvature: find a dimming factor
	// from the strength of curvature at maximum height, then soften the
	// feather by reducing the curve height so the center of the feather
	// (currently 50% opacity) is reduced to "50% * dimming".
	dimming := 1 - theta*float32(1/math.Pi)
	desiredOpacityOnCenter := 0.5 * dimming
	x := InverseGaussianIntegral(desiredOpacityOnCenter) - 0.5
	softenedHeight := height + feather*FeatherTextureStddevs*x

	// Height scales linearly as the control points move toward the
	// chord, so "softness" is the lerp factor that achieves it.
	softness := float32(1)
	if height != 0 {
		softness = 1 - softenedHeight/height
	}
	if math.IsNaN(float64(softness)) {
		softness = 1
	} else if softness > 1 {
		softness = 1
	} else if softness < 0 {
		softness = 0
	}

	flatP1 := pts[0].Lerp(pts[3], 1.0/3)
	flatP2 := pts[0].Lerp(pts[3], 2.0/3)
	softenedP1 := pts[1].Lerp(flatP1, softness)
	softenedP2 := pts[2].Lerp(flatP2, softness)
	dst.CubicTo(softenedP1, softenedP2, pts[3])
}

func copyUnsoftened(dst, src *rawpath.RawPath) {
	pts := src.Points()
	src.Iterate(func(verb rawpath.Verb, idx int) {
		switch verb {
		case rawpath.VerbMove:
			dst.MoveTo(pts[idx])
		case rawpath.VerbLine:
			dst.LineTo(pts[idx])
		case rawpath.VerbCubic:
			dst.CubicTo(pts[idx], pts[idx+1], pts[idx+2])
		case rawpath.VerbClose:
			dst.Close()
		}
	})
}
