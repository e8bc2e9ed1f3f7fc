// Package flush assembles one logical flush: the ingest, layout,
// buffer-write and draw-ordering steps a frame runs once per render
// pass before handing a backend.FlushSubmission to the GPU backend.
//
// Grounded on original_source/renderer/src/render_context.cpp's
// LogicalFlush (ingest ceilings, buffer layout, the 64-bit draw sort
// key, batch-barrier and batch-merge rules) and on context.go/
// context_layer.go for how the teacher threads a save/restore scope's
// transform and clip state through a draw call. Wires together
// internal/drawbuilder (per-draw vertex budgets), internal/renderpath
// (cached tessellation plans), internal/clipstack (clip element
// table), internal/isect (draw-group assignment for reordering), and
// internal/gradient (gradient texture packing) -- none of which any
// caller outside internal/ previously reached.
package flush
