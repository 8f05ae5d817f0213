package particle

import "image/color"

// Surface is a 2D drawing target sized to the viewport.
type Surface interface {
	Clear()
	SetFill(c color.RGBA)
	// SetAlpha sets the opacity multiplier for subsequent draws.
	SetAlpha(a float64)
	// Save pushes the current fill and alpha; Restore pops them.
	Save()
	Restore()
	FillCircle(x, y, r float64)
	// FillRotatedSquare draws a square centred on (x, y) rotated by deg degrees.
	FillRotatedSquare(x, y, halfExtent, deg float64)
	// Resize reallocates the surface before the next draw.
	Resize(width, height int)
}

// DrawState is the transient state saved and restored around each entity.
type DrawState struct {
	Fill  color.RGBA
	Alpha float64
}

// StateStack implements Save/Restore bookkeeping for Surface implementations.
type StateStack struct {
	Cur   DrawState
	saved []DrawState
}

func NewStateStack() StateStack {
	return StateStack{Cur: DrawState{Alpha: 1}}
}

func (st *StateStack) Save() {
	st.saved = append(st.saved, st.Cur)
}

// Restore is a no-op on an empty stack.
func (st *StateStack) Restore() {
	if len(st.saved) == 0 {
		return
	}
	st.Cur = st.saved[len(st.saved)-1]
	st.saved = st.saved[:len(st.saved)-1]
}

// Depth returns the number of saved states.
func (st *StateStack) Depth() int { return len(st.saved) }
