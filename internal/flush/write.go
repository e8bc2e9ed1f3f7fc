package flush

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/corerender/internal/color"
	"github.com/gogpu/corerender/internal/gradient"
)

// Record byte sizes, aligned up to BufferAlignment by the caller when
// sizing the backing buffers.
const (
	PathRecordSize     = 16 // pathID-implicit: clipID, blendMode, flags, draw type (uint32 x4)
	PaintRecordSize    = 32 // color or gradient location (vec4 + vec4)
	PaintAuxRecordSize = 48 // matrix (6 float32) + clip-rect inverse matrix (6 float32)
	ContourRecordSize  = 16 // vertexFirst, vertexCount, pathID, pad (uint32 x4)
	GradientSpanSize   = 24 // x0Fixed, x1Fixed, row, color0, color1 (uint32 x6)
)

// WritePathRecords packs one path record per draw into buf, grounded
// on render_context.cpp's PathData write-out: per-path clip ID, blend
// mode, a content-flags word and the draw type, at PathRecordSize-byte
// stride.
func WritePathRecords(buf []byte, draws []Draw) {
	for _, d := range draws {
		off := int(d.PathID) * PathRecordSize
		if off+PathRecordSize > len(buf) {
			continue
		}
		binary.LittleEndian.PutUint32(buf[off:], uint32(d.ClipID))
		binary.LittleEndian.PutUint32(buf[off+4:], uint32(d.BlendMode))
		binary.LittleEndian.PutUint32(buf[off+8:], uint32(d.Contents))
		binary.LittleEndian.PutUint32(buf[off+12:], uint32(d.Type))
	}
}

// WriteContourRecords packs one contour record per draw's contour
// range into buf, recording the tessellation vertex range each
// contour owns and the path it belongs to.
func WriteContourRecords(buf []byte, draws []Draw) {
	for _, d := range draws {
		if d.Plan == nil {
			continue
		}
		vertexCursor := d.VertexFirst
		for c := uint32(0); c < d.ContourCount; c++ {
			off := int(d.ContourFirst+c) * ContourRecordSize
			if off+ContourRecordSize > len(buf) {
				continue
			}
			contour := d.Plan.Contours[c]
			count := uint32(contour.PaddedVertexCount())
			binary.LittleEndian.PutUint32(buf[off:], vertexCursor)
			binary.LittleEndian.PutUint32(buf[off+4:], count)
			binary.LittleEndian.PutUint32(buf[off+8:], d.PathID)
			vertexCursor += count
		}
	}
}

// WritePaintColor packs a solid paint color at paintIndex into buf.
func WritePaintColor(buf []byte, paintIndex uint32, c color.ColorU8) {
	off := int(paintIndex) * PaintRecordSize
	if off+PaintRecordSize > len(buf) {
		return
	}
	binary.LittleEndian.PutUint32(buf[off:], putFloat32(float32(c.R)/255))
	binary.LittleEndian.PutUint32(buf[off+4:], putFloat32(float32(c.G)/255))
	binary.LittleEndian.PutUint32(buf[off+8:], putFloat32(float32(c.B)/255))
	binary.LittleEndian.PutUint32(buf[off+12:], putFloat32(float32(c.A)/255))
}

// WritePaintGradient packs a gradient paint's texture location at
// paintIndex into buf.
func WritePaintGradient(buf []byte, paintIndex uint32, loc gradient.Location) {
	off := int(paintIndex) * PaintRecordSize
	if off+PaintRecordSize > len(buf) {
		return
	}
	binary.LittleEndian.PutUint32(buf[off:], loc.Row)
	binary.LittleEndian.PutUint32(buf[off+4:], loc.Col)
}

// WritePaintAuxMatrix packs a paint's inverse transform (used to map
// fragment device coordinates back into paint space) at paintIndex.
func WritePaintAuxMatrix(buf []byte, paintIndex uint32, m [6]float32) {
	off := int(paintIndex) * PaintAuxRecordSize
	if off+24 > len(buf) {
		return
	}
	for i, v := range m {
		binary.LittleEndian.PutUint32(buf[off+i*4:], putFloat32(v))
	}
}

// WriteGradientSpans packs spans, the complex-gradient spans, into
// buf, starting at firstSpan.
func WriteGradientSpans(buf []byte, firstSpan uint32, spans []gradient.Span) {
	for i, s := range spans {
		off := int(firstSpan+uint32(i)) * GradientSpanSize
		if off+GradientSpanSize > len(buf) {
			continue
		}
		binary.LittleEndian.PutUint32(buf[off:], s.X0Fixed)
		binary.LittleEndian.PutUint32(buf[off+4:], s.X1Fixed)
		binary.LittleEndian.PutUint32(buf[off+8:], s.Row)
		binary.LittleEndian.PutUint32(buf[off+12:], packColorU8(s.Color0))
		binary.LittleEndian.PutUint32(buf[off+16:], packColorU8(s.Color1))
	}
}

// WriteSimpleGradientRow packs writes, the simple-ramp two-color pairs,
// into the gradient texture's bottom rows, one pair per
// gradient.WidthInSimpleRamps-wide row.
func WriteSimpleGradientRow(buf []byte, rowStride uint32, writes [][2]color.ColorU8) {
	for i, pair := range writes {
		row := uint32(i) / gradient.WidthInSimpleRamps
		col := uint32(i) % gradient.WidthInSimpleRamps
		off := int(row*rowStride + col*8)
		if off+8 > len(buf) {
			continue
		}
		binary.LittleEndian.PutUint32(buf[off:], packColorU8(pair[0]))
		binary.LittleEndian.PutUint32(buf[off+4:], packColorU8(pair[1]))
	}
}

func putFloat32(f float32) uint32 {
	return math.Float32bits(f)
}

func packColorU8(c color.ColorU8) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}
