// Package corerender is the CPU-side pipeline for a GPU-accelerated 2D
// vector renderer: path tessellation planning, frame/logical-flush
// assembly, and the save/restore renderer facade that drives them. It
// owns no GPU resources itself -- every byte range it produces is
// handed to a backend.Backend between beginFrame and flush.
//
// Grounded on the teacher's root gg package for its overall shape
// (Context, Renderer, Matrix, the save/restore stack, functional
// ContextOptions, the atomic.Pointer logger) generalized from an
// immediate-mode CPU rasterizer onto the deferred tessellate-then-flush
// pipeline internal/drawbuilder, internal/renderpath, internal/clipstack,
// internal/isect, internal/gradient and internal/flush implement.
package corerender
