package particle

// Driver re-requests a frame for its loop while the loop has live entities.
// It is the handle returned by Start and must be stopped when the owning
// view is torn down.
type Driver[E Entity[E]] struct {
	sched   Scheduler
	loop    *Loop[E]
	sink    func([]E)
	id      FrameID
	pending bool
	stopped bool
	frames  uint64
}

// Start begins driving loop on sched. After each step the surviving entities
// are handed to sink, which may be nil. A nil scheduler yields a driver that
// never steps.
func Start[E Entity[E]](sched Scheduler, loop *Loop[E], sink func([]E)) *Driver[E] {
	d := &Driver[E]{sched: sched, loop: loop, sink: sink}
	if loop != nil && loop.Len() > 0 {
		d.arm()
	}
	return d
}

func (d *Driver[E]) arm() {
	if d.stopped || d.pending || d.sched == nil {
		return
	}
	d.pending = true
	d.id = d.sched.RequestFrame(d.frame)
}

func (d *Driver[E]) frame() {
	d.pending = false
	if d.stopped {
		return
	}
	d.loop.Step()
	d.frames++
	if d.sink != nil {
		d.sink(d.loop.Items())
	}
	if d.loop.Len() > 0 {
		d.arm()
	}
}

// Seed merges batch into the loop and wakes an idle driver.
func (d *Driver[E]) Seed(batch ...E) {
	if d.loop == nil || len(batch) == 0 {
		return
	}
	d.loop.Seed(batch...)
	d.arm()
}

// Stop cancels the pending frame. No step runs after Stop returns.
func (d *Driver[E]) Stop() {
	if d.stopped {
		return
	}
	d.stopped = true
	if d.pending && d.sched != nil {
		d.sched.CancelFrame(d.id)
	}
	d.pending = false
}

// Running reports whether a frame is currently requested.
func (d *Driver[E]) Running() bool { return d.pending }

func (d *Driver[E]) Stopped() bool { return d.stopped }

// Frames returns the number of steps taken.
func (d *Driver[E]) Frames() uint64 { return d.frames }
