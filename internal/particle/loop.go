package particle

// Step advances every entity by one frame and returns the survivors in a new
// slice. The input slice is left untouched.
func Step[E Entity[E]](items []E, vp Viewport) []E {
	out := make([]E, 0, len(items))
	for _, e := range items {
		next := e.Advance()
		if next.Expired(vp) {
			continue
		}
		out = append(out, next)
	}
	return out
}

// Render clears the surface and draws each entity with its own draw state.
func Render[E Entity[E]](s Surface, items []E) {
	if s == nil {
		return
	}
	s.Clear()
	for _, e := range items {
		s.Save()
		e.Draw(s)
		s.Restore()
	}
}

// Loop owns the authoritative collection of live entities.
type Loop[E Entity[E]] struct {
	items []E
	vp    Viewport
}

func NewLoop[E Entity[E]](vp Viewport) *Loop[E] {
	return &Loop[E]{vp: vp}
}

// Seed merges a batch into the collection.
func (l *Loop[E]) Seed(batch ...E) {
	l.items = append(l.items, batch...)
}

// Step replaces the collection with its next frame.
func (l *Loop[E]) Step() {
	l.items = Step(l.items, l.vp)
}

// Resize sets the bounds used by the next step.
func (l *Loop[E]) Resize(vp Viewport) {
	l.vp = vp
}

func (l *Loop[E]) Viewport() Viewport { return l.vp }

func (l *Loop[E]) Len() int { return len(l.items) }

// Items returns the live collection. Callers must not modify it.
func (l *Loop[E]) Items() []E { return l.items }
