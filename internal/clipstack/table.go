package clipstack

// Element is one entry in a flush's clip stack: a clip path at a
// given transform and fill rule, assigned a clip ID the first time it
// is pushed.
type Element struct {
	ClipID         uint16
	Matrix         Transform
	PathMutationID uint64
	FillRule       FillRule

	// ContentBounds is the clip path's own device-space bounds.
	ContentBounds Rect

	// ReadBounds accumulates the bounds of everything drawn while this
	// clip element is active, i.e. the region of the clip buffer this
	// element's ID must remain valid over. Grown via AccumulateReadBounds.
	ReadBounds Rect
}

// Table is the per-flush table of unique clip elements, addressed by
// stack position and deduplicated by content: a clipPath call reusing
// the same source path (by mutationID) and transform at the position
// it would occupy reuses that element's clip ID instead of minting a
// new one.
//
// Generalizes a "one rect-or-mask clip per stack entry, applied
// immediately" scheme into "one clip element per stack entry, applied
// lazily at draw time."
type Table struct {
	elements     []*Element
	nextClipID   uint16 // 0 is reserved for "no clip"
	renderedUpTo int    // elements[:renderedUpTo] are currently rendered to the clip buffer
}

// NewTable returns an empty clip element table for one logical flush.
func NewTable() *Table {
	return &Table{nextClipID: 1}
}

// Height returns the number of clip elements currently on the table.
func (t *Table) Height() int {
	return len(t.elements)
}

// At returns the element at stack position i, or nil if i is out of
// range.
func (t *Table) At(i int) *Element {
	if i < 0 || i >= len(t.elements) {
		return nil
	}
	return t.elements[i]
}

// Top returns the element at the top of the table, or nil if empty.
func (t *Table) Top() *Element {
	return t.At(len(t.elements) - 1)
}

// TruncateTo drops every element at or above height, e.g. when a
// save/restore scope pops back to a shallower clip-path stack height.
func (t *Table) TruncateTo(height int) {
	if height < 0 {
		height = 0
	}
	if height < len(t.elements) {
		t.elements = t.elements[:height]
	}
	if height < t.renderedUpTo {
		t.renderedUpTo = height
	}
}

// Push installs a new clip path at stack position depth: matrix,
// pathMutationID and fillRule identify the source path and how it's
// transformed, contentBounds is its device-space bounds.
//
// If depth already holds an element with the same matrix,
// pathMutationID, and fillRule, that element is reused (and any
// elements above depth are dropped, since they were pushed against a
// now-superseded clip state). Otherwise the table is truncated to
// depth and a new element is appended with its clip ID left
// unassigned (0) until DrawUpdatesFor renders it.
//
// Returns the resulting element and whether it is newly created.
func (t *Table) Push(depth int, matrix Transform, pathMutationID uint64, fillRule FillRule, contentBounds Rect) (*Element, bool) {
	if depth < len(t.elements) {
		existing := t.elements[depth]
		if existing.Matrix.Equal(matrix) &&
			existing.PathMutationID == pathMutationID &&
			existing.FillRule == fillRule {
			t.TruncateTo(depth + 1)
			return existing, false
		}
	}
	t.TruncateTo(depth)
	el := &Element{
		Matrix:         matrix,
		PathMutationID: pathMutationID,
		FillRule:       fillRule,
		ContentBounds:  contentBounds,
	}
	t.elements = append(t.elements, el)
	return el, true
}

// FreeClipIDsRemaining reports how many more clip IDs can be minted
// before the 16-bit ID space is exhausted, the "no free clip ID"
// ingest-full condition a logical flush must recover from.
func (t *Table) FreeClipIDsRemaining() int {
	return int(^uint16(0)) - int(t.nextClipID) + 1
}

// AccumulateReadBounds grows el's read bounds to include b, called
// once per draw that samples el's clip ID.
func (el *Element) AccumulateReadBounds(b Rect) {
	el.ReadBounds = el.ReadBounds.Union(b)
}

// Reset clears the table back to empty, as happens after every
// logical flush (the clip buffer is not preserved between render
// passes).
func (t *Table) Reset() {
	t.elements = t.elements[:0]
	t.renderedUpTo = 0
}

// Update describes one clip-update draw the caller must emit: render
// element Index's path into the clip buffer under a freshly minted
// clip ID, itself gated by OuterClipID (the previous element's clip
// ID, or 0 for the bottommost element).
type Update struct {
	Index       int
	NewClipID   uint16
	OuterClipID uint16
}

// NeedsUpdate reports whether drawing against the clip element at
// depth requires emitting clip-update draws first: the clip buffer
// only reflects elements[:renderedUpTo] so far.
func (t *Table) NeedsUpdate(depth int) bool {
	return depth+1 > t.renderedUpTo
}

// DrawUpdatesFor returns the clip-update draws needed to bring the
// clip buffer up from its currently-rendered height to depth+1,
// inclusive, and advances that height.
//
// Every update mints a fresh clip ID so that overlapping read-bounds
// do not conflict -- reusing an element's original ID here would risk
// aliasing with stale clip-buffer content left over from an earlier,
// differently bounded use of the same ID.
func (t *Table) DrawUpdatesFor(depth int) []Update {
	if depth >= len(t.elements) {
		depth = len(t.elements) - 1
	}
	var updates []Update
	for i := t.renderedUpTo; i <= depth; i++ {
		var outer uint16
		if i > 0 {
			outer = t.elements[i-1].ClipID
		}
		t.elements[i].ClipID = t.nextClipID
		t.nextClipID++
		updates = append(updates, Update{Index: i, NewClipID: t.elements[i].ClipID, OuterClipID: outer})
	}
	if depth+1 > t.renderedUpTo {
		t.renderedUpTo = depth + 1
	}
	return updates
}
