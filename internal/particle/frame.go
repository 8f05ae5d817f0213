package particle

// FrameID identifies a pending frame request. Zero is never issued.
type FrameID uint64

// Scheduler fires a callback once on the next display frame.
type Scheduler interface {
	RequestFrame(cb func()) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a Scheduler driven by the host's per-frame update.
// It is not safe for concurrent use; request, cancel and Tick all run on
// the game goroutine.
type FrameQueue struct {
	next    FrameID
	order   []FrameID
	pending map[FrameID]func()
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: map[FrameID]func(){}}
}

func (q *FrameQueue) RequestFrame(cb func()) FrameID {
	q.next++
	q.pending[q.next] = cb
	q.order = append(q.order, q.next)
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
}

// Tick runs every callback requested before the call, in request order.
// Callbacks requested while ticking wait for the next Tick.
// It returns the number of callbacks run.
func (q *FrameQueue) Tick() int {
	due := q.order
	q.order = nil
	ran := 0
	for _, id := range due {
		cb, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		cb()
		ran++
	}
	return ran
}

// Pending returns the number of callbacks waiting for a frame.
func (q *FrameQueue) Pending() int { return len(q.pending) }
