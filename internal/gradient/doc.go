// Package gradient allocates gradient stops into the rows of a GPU
// gradient texture, deduplicating repeated gradients within a flush.
//
// Two-stop gradients spanning exactly [0, 1] ("simple" gradients) pack
// two texels per ramp and dedup on their packed color pair. Gradients
// with more than two stops, or stops that don't span the full [0, 1]
// range ("complex" gradients), each occupy one full texture row and
// dedup on their full stop/color content.
//
// Grounded on original_source/renderer/src/render_context.cpp's
// allocateGradient, gradient_data_height, and the complex-gradient
// span-emission loop in logicalFlush.
package gradient
