// Package renderpath wraps internal/rawpath with the render-side
// state a drawn path carries between frames: its fill rule, a
// lazily-built and cached feather-softened copy, and up to two
// per-paint draw caches (stroked vs filled) keyed on the parts of the
// matrix and paint that actually change a tessellation plan.
//
// Grounded on gogpu-gg's context.go (Path/fill-rule plumbing) and
// internal/feather (the softened-copy cache this package wraps),
// generalized from "soften once per Fill/Stroke call" into "cache the
// softened copy and the resulting draw plan across frames until the
// matrix, stroke, or feather actually changes."
package renderpath
