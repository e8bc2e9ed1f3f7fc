// Package rawpath implements the append-only verb/point sequence that
// backs every path in the renderer: move/line/cubic/close verbs plus
// their associated points, with empty-segment pruning, lazily cached
// bounds and coarse signed area, and a monotonic mutation counter used
// to key downstream caches (path draws, clip-stack lookups).
//
// Grounded on gg's Path/PathElement model (path.go), restructured from
// an interface-per-verb slice into parallel verb/point arrays the way
// original_source's raw path type stores them, since downstream
// consumers (internal/bezier, internal/isect) want contiguous point
// runs rather than per-element allocations.
package rawpath
