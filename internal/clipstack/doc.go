// Package clipstack implements the renderer's two clip-related
// stacks: a per-frame scope stack tracking each save/restore level's
// transform and clip-rect, and a per-flush table of unique clip
// elements addressed by a lazily assigned 16-bit clip ID.
//
// Generalizes a software rect/mask clip stack that directly computes
// per-pixel coverage into a deferred one that records *what* to clip
// and leaves rendering the clip buffer to the flush pipeline.
package clipstack
