// Package isect implements the intersection board: a tiled rectangle
// database that assigns each added rectangle a "group index" one larger
// than the maximum group index of any rectangle it overlaps. The
// renderer's logical flush uses this during layout to compute a
// z-order that groups non-overlapping draws so they can be reordered
// for batching without changing visible output.
//
// The board divides the viewport into 255x255 tiles so that rectangle
// edges, once clamped to a tile, fit in 8 bits -- letting the four
// inequality tests for rectangle intersection collapse into a single
// signed less-than across 8 lanes at a time (internal/wide.Int8x8).
//
// Ported from rive's IntersectionBoard/IntersectionTile
// (original_source/renderer/src/intersection_board.{hpp,cpp}); the
// lane-as-fixed-array style is grounded on this module's own
// internal/wide package rather than compiler-intrinsic SIMD, matching
// the convention the rest of the example corpus uses.
package isect
