package flush

import "sort"

// Batch is one or more consecutive, compatible draws merged into a
// single GPU submission by extending the lead draw's vertex range.
type Batch struct {
	Draws []Draw
}

// ElementCount is the batch's combined vertex count: the sum of every
// draw's VertexCount. Merging does not check that the draws' vertex
// ranges are contiguous.
func (b Batch) ElementCount() uint32 {
	var n uint32
	for _, d := range b.Draws {
		n += d.VertexCount
	}
	return n
}

// sortKey packs one draw's ordering fields into the 64-bit key
// render_context.cpp sorts non-rasterOrdering draws by. Ascending sort
// by this key yields submission order.
func sortKey(d Draw, msaa bool) uint64 {
	group := int32(d.drawGroupIndex)
	if msaa && d.Contents&ContentsOpaque != 0 && d.ClipElement == nil {
		group = -group
	}
	groupBits := uint64(uint16(group)) << 48
	typeBits := uint64(d.Type&0x7) << 45
	imageBits := (d.ImageTextureHash & (1<<19 - 1)) << 26
	blendBits := uint64(d.BlendMode&0xF) << 22
	contentsBits := uint64(d.Contents&0x3F) << 16
	indexBits := uint64(uint16(d.originalIndex))
	return groupBits | typeBits | imageBits | blendBits | contentsBits | indexBits
}

// barrierMask is the set of sort-key fields a batch barrier is
// required between: drawGroup always, plus drawContents and blendMode
// in MSAA (drawContents whenever MSAA is active, blendMode only when
// the platform also supports KHR advanced blending equations, since
// only then does blend state vary the fixed-function pipeline state a
// barrier must separate).
func barrierMask(msaa, khrBlend bool) uint64 {
	mask := uint64(0xFFFF) << 48 // drawGroupIdx
	if msaa {
		mask |= uint64(0x3F) << 16 // drawContents
		if khrBlend {
			mask |= uint64(0xF) << 22 // blendMode
		}
	}
	return mask
}

// mergeable reports whether two adjacent, barrier-compatible draws can
// fold into one GPU batch: same draw type, compatible (equal or absent)
// image texture, and neither is a type that never merges with
// neighbors (interior triangulation, image rect, image mesh).
func mergeable(a, b Draw) bool {
	switch a.Type {
	case DrawInteriorTriangulation, DrawImageRect, DrawImageMesh:
		return false
	}
	if a.Type != b.Type {
		return false
	}
	return a.ImageTextureHash == b.ImageTextureHash
}

// SortAndBatch sorts the flush's draws by their 64-bit key, emits a
// batch barrier wherever the barrier-relevant bits change, and merges
// consecutive compatible draws within a barrier-free run into single
// batches. In atomic mode, a gpuAtomicInitialize draw is prepended
// when the backend can't load-clear PLS storage, and a gpuAtomicResolve
// draw is appended, both passed through untouched by the merge pass.
func (lf *LogicalFlush) SortAndBatch(msaa, khrBlend bool, atomicMode, needsAtomicInitialize bool) []Batch {
	sorted := make([]Draw, len(lf.draws))
	copy(sorted, lf.draws)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortKey(sorted[i], msaa) < sortKey(sorted[j], msaa)
	})

	mask := barrierMask(msaa, khrBlend)
	var batches []Batch
	for _, d := range sorted {
		if n := len(batches); n > 0 {
			last := &batches[n-1]
			lead := last.Draws[0]
			sameBarrierGroup := (sortKey(lead, msaa) & mask) == (sortKey(d, msaa) & mask)
			if sameBarrierGroup && mergeable(lead, d) {
				last.Draws = append(last.Draws, d)
				continue
			}
		}
		batches = append(batches, Batch{Draws: []Draw{d}})
	}

	if atomicMode {
		result := make([]Batch, 0, len(batches)+2)
		if needsAtomicInitialize {
			result = append(result, Batch{Draws: []Draw{{Type: DrawGPUAtomicInitialize}}})
		}
		result = append(result, batches...)
		result = append(result, Batch{Draws: []Draw{{Type: DrawGPUAtomicResolve}}})
		return result
	}
	return batches
}
