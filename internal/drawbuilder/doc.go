// Package drawbuilder plans how one path's contours tessellate into
// GPU patches: per-contour segment/join/cap vertex budgets (the
// "midpoint-fan" mode), or a chopped-polyline-plus-inner-fan-triangles
// budget for large, simple, non-stroked fills ("interior triangulation"
// mode), plus the contour winding direction each mode requires.
//
// Grounded on internal/stroke/expander.go (join/cap vertex emission
// shape), internal/gpu/tessellate.go and internal/gpu/path_convert.go
// (segment-count bookkeeping), and internal/gpu/convex_renderer.go
// (triangulation heuristics), generalized from "flatten and rasterize
// now" into "count the vertices a GPU patch-based tessellator will
// need, without producing final geometry." Counting semantics are
// ported from original_source/renderer/src/draw.cpp's
// find_outer_cubic_subdivision_count/countLineOrCubicVertices/Contour
// machinery.
package drawbuilder
