package particle

import (
	"sync"
	"time"
)

// RippleTTL is how long a ripple stays on screen.
const RippleTTL = 600 * time.Millisecond

// Ripple is a momentary ring at a click location.
type Ripple struct {
	ID   int64
	X, Y float64
	Born time.Time
}

// Progress returns how far the ripple is through ttl, clamped to [0, 1].
func (r Ripple) Progress(now time.Time, ttl time.Duration) float64 {
	if ttl <= 0 {
		return 1
	}
	return clamp01(float64(now.Sub(r.Born)) / float64(ttl))
}

// Timer is the part of *time.Timer that Ripples needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f once after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Ripples holds click ripples and removes each one after its TTL on a timer,
// independent of the frame loop. Safe for concurrent use.
type Ripples struct {
	TTL       time.Duration
	Now       func() time.Time
	AfterFunc AfterFunc

	mu     sync.Mutex
	items  []Ripple
	timers map[int64]Timer
	lastID int64
}

func NewRipples(ttl time.Duration) *Ripples {
	return &Ripples{
		TTL:       ttl,
		Now:       time.Now,
		AfterFunc: realAfterFunc,
		timers:    map[int64]Timer{},
	}
}

// Add records a ripple at (x, y) and schedules its removal.
func (r *Ripples) Add(x, y float64) Ripple {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.Now()
	id := now.UnixNano()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	rp := Ripple{ID: id, X: x, Y: y, Born: now}
	r.items = append(r.items, rp)
	r.timers[id] = r.AfterFunc(r.TTL, func() { r.remove(id) })
	return rp
}

func (r *Ripples) remove(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.timers, id)
	for i, rp := range r.items {
		if rp.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

// List returns a copy of the live ripples, oldest first.
func (r *Ripples) List() []Ripple {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Ripple(nil), r.items...)
}

func (r *Ripples) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Clear drops every ripple and stops their pending removals.
func (r *Ripples) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, t := range r.timers {
		t.Stop()
		delete(r.timers, id)
	}
	r.items = nil
}
