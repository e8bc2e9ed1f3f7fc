package clipstack

// Scope is one save/restore level's clip-relevant state: the active
// transform, how many entries of the per-flush clip Table belong to
// this scope or an ancestor, and an optional axis-aligned clip rect
// tracked separately from the general clip path stack so purely
// rectangular clips never need a mask.
type Scope struct {
	Transform Transform

	// ClipPathStackHeight is how many entries of the flush's Table
	// were pushed at or below this scope.
	ClipPathStackHeight int

	// HasClipRect, ClipRect and ClipRectMatrix track an axis-aligned
	// rect clip in its own coordinate space, separate from the general
	// path-clip table, as a fast path for the common rectangular case.
	HasClipRect    bool
	ClipRect       Rect
	ClipRectMatrix Transform

	// IsEmpty is latched true once this scope's effective clip region
	// becomes empty; once set, all drawing within the scope is culled.
	IsEmpty bool
}

// ScopeStack is the renderer facade's save/restore stack.
//
// Generalizes a push/pop stack of plain bounds rectangles to track a
// full Scope rather than just a bounds rectangle, since a scope also
// carries the clip-path table height and a lazily-activated clip rect.
type ScopeStack struct {
	scopes []Scope
}

// NewScopeStack returns a stack with one base scope at the given
// transform and an empty clip-path/clip-rect state.
func NewScopeStack(initial Transform) *ScopeStack {
	return &ScopeStack{scopes: []Scope{{Transform: initial}}}
}

// Depth returns the number of scopes currently on the stack
// (1 for the base scope with no saves pushed).
func (s *ScopeStack) Depth() int {
	return len(s.scopes)
}

// Current returns the top scope, mutable in place.
func (s *ScopeStack) Current() *Scope {
	return &s.scopes[len(s.scopes)-1]
}

// Save pushes a copy of the current scope.
func (s *ScopeStack) Save() {
	s.scopes = append(s.scopes, *s.Current())
}

// Restore pops back to the scope active before the matching Save. A
// Restore with no matching Save is a no-op, mirroring how the root
// package's own save/restore stack guards against unbalanced calls.
func (s *ScopeStack) Restore() {
	if len(s.scopes) > 1 {
		s.scopes = s.scopes[:len(s.scopes)-1]
	}
}

// Concat composes m onto base, as if m were applied first and base
// second (base * m in matrix terms). Used to fold a renderer
// transform(m) call onto the current scope's transform: the caller
// assigns the result back onto Current().Transform.
func Concat(base, m Transform) Transform {
	return Transform{
		A: base.A*m.A + base.B*m.D,
		B: base.A*m.B + base.B*m.E,
		C: base.A*m.C + base.B*m.F + base.C,
		D: base.D*m.A + base.E*m.D,
		E: base.D*m.B + base.E*m.E,
		F: base.D*m.C + base.E*m.F + base.F,
	}
}

// IntersectClipRect narrows the current scope's clip rect to r
// (already expressed in the scope's ClipRectMatrix space), marking the
// scope empty if the result has no area.
func (s *ScopeStack) IntersectClipRect(r Rect) {
	cur := s.Current()
	if !cur.HasClipRect {
		cur.HasClipRect = true
		cur.ClipRect = r
	} else {
		cur.ClipRect = cur.ClipRect.Intersect(r)
	}
	if cur.ClipRect.IsEmpty() {
		cur.IsEmpty = true
	}
}
