package bezier

import "math"

// cuspEpsilon is the tolerance (2^-10) for discarding chops too close
// to the curve's endpoints, and for deciding whether two inflection
// roots are "the same" cusp.
const cuspEpsilon = 1.0 / 1024.0

// Convex180Result holds the chop points returned by FindConvex180Chops.
type Convex180Result struct {
	T        [2]float32
	Count    int
	AreCusps bool
}

// FindConvex180Chops returns up to two t values in (eps, 1-eps) that
// split pts into sections that do not inflect and rotate no more than
// 180 degrees.
//
// Ported from rive's FindCubicConvex180Chops / path_utils.cpp, using the
// inflection quadratic a*T^2 + b*T + c = A×B*T^2 + A×C*T + B×C, where
// C = P1-P0, B = P2-2*P1+P0 and A = P3-P0-3*(P2-P1): EvalCubic's
// coefficients with the factor 3 taken out of B and C.
func FindConvex180Chops(pts [4]Point) Convex180Result {
	p0, p1, p2, p3 := pts[0], pts[1], pts[2], pts[3]
	c := p1.Sub(p0)
	bRaw := p2.Sub(p1).Sub(c)
	a := p3.Sub(p0).Sub(p2.Sub(p1).Scale(3))

	ax := a.Cross(bRaw) // coefficient of T^2
	bx := a.Cross(c)    // coefficient of T^1
	cx := bRaw.Cross(c) // coefficient of T^0

	discriminant := bx*bx - 4*ax*cx
	const cuspThreshold = 1e-3

	var result Convex180Result

	switch {
	case discriminant < -cuspThreshold:
		// No inflection; the curve may rotate more than 180 degrees.
		// Chop where the tangent direction is parallel to the starting
		// tangent: T = c/(-b/2).
		if bx != 0 {
			t := cx / (-bx / 2)
			result.appendIfValid(t)
		}
	case math.Abs(float64(discriminant)) <= cuspThreshold:
		// Cusp (proper or degenerate line).
		if ax != 0 || bx != 0 || cx != 0 {
			if ax != 0 {
				t := -bx / (2 * ax)
				result.appendIfValid(t)
			}
			result.AreCusps = result.Count > 0
		} else {
			// Flat line: all three coefficients are zero.
			tan0 := StartTangentOf(pts)
			chord := p3.Sub(p0)
			if tan0.Dot(chord) >= 0 {
				// Ordered flat line: no chops needed.
			} else {
				// Out-of-order points: chop at the tangent-perpendicular
				// root of (tan0 . tangentDirection) = 0. For a pure line
				// the tangent direction is constant, so the only
				// sensible split point is the midpoint.
				result.appendIfValid(0.5)
				result.AreCusps = true
			}
		}
	default:
		sqrtDisc := float32(math.Sqrt(float64(discriminant)))
		var t0, t1 float32
		if ax != 0 {
			t0 = (-bx - sqrtDisc) / (2 * ax)
			t1 = (-bx + sqrtDisc) / (2 * ax)
		} else if bx != 0 {
			t0 = -cx / bx
			t1 = t0
		}
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		result.appendIfValid(t0)
		result.appendIfValid(t1)
		if result.Count == 2 && float64(result.T[1]-result.T[0]) <= cuspEpsilon {
			result.AreCusps = true
		}
	}

	return result
}

func (r *Convex180Result) appendIfValid(t float32) {
	if math.IsNaN(float64(t)) {
		return
	}
	if t < cuspEpsilon || t >= 1-cuspEpsilon {
		return
	}
	if r.Count < 2 {
		r.T[r.Count] = t
		r.Count++
	}
}
