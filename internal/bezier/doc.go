// Package bezier implements the cubic Bezier primitives that the rest of
// the renderer's CPU pipeline is built on: power-basis evaluation,
// De Casteljau chopping at one, two, or n parameter values, convex-180
// and convex-90 segmentation (used to emulate stroke joins/caps and to
// chop curves for feathering), curve-height and curvature measurement,
// and Wang's formula for parametric segment counts.
//
// Every function here operates on plain [4]Point arrays (the four
// control points of a cubic) and returns plain values; there is no
// dependency on path or paint types so this package can be imported by
// both the draw builder and the path-softening code without a cycle.
package bezier
