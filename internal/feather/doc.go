// Package feather builds the feather-softened copy of a raw path used
// when filling or stroking with a nonzero feather radius: every cubic
// is first chopped into convex, non-inflecting arcs (internal/bezier's
// convex-90 chopping), then each arc's height is reduced in proportion
// to its local curvature so 1-dimensional gaussian feathering along
// the curve normal looks right even where the curve bends away from
// that normal.
//
// Grounded on original_source/renderer/src/rive_render_path.cpp's
// add_softened_cubic_for_feathering/makeSoftenedCopyForFeathering.
package feather
