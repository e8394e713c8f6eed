package tilt

import (
	"sort"
	"time"
)

// Scheduler provides the two suspension primitives the engine uses: a
// per-frame callback and a one-shot timer. Both return handles that can be
// cancelled at any time.
type Scheduler interface {
	RequestFrame(fn func()) FrameHandle
	AfterFunc(d time.Duration, fn func()) TimerHandle
}

// FrameHandle identifies a requested frame callback.
type FrameHandle struct {
	id   uint64
	loop *FrameLoop
}

// Cancel stops the callback from running. Cancelling a callback that has
// already run, was never requested, or was already cancelled is a no-op.
func (h FrameHandle) Cancel() {
	if h.loop == nil {
		return
	}
	h.loop.cancelFrame(h.id)
}

// Pending reports whether the callback is still waiting to run.
func (h FrameHandle) Pending() bool {
	if h.loop == nil {
		return false
	}
	_, ok := h.loop.frames[h.id]
	return ok
}

// TimerHandle identifies a pending timer.
type TimerHandle struct {
	id   uint64
	loop *FrameLoop
}

// Cancel stops the timer. Idempotent, like FrameHandle.Cancel.
func (h TimerHandle) Cancel() {
	if h.loop == nil {
		return
	}
	h.loop.cancelTimer(h.id)
}

// Pending reports whether the timer has neither fired nor been cancelled.
func (h TimerHandle) Pending() bool {
	if h.loop == nil {
		return false
	}
	for i := range h.loop.timers {
		if h.loop.timers[i].id == h.id {
			return true
		}
	}
	return false
}

type frameEntry struct {
	seq uint64
	fn  func()
}

type timerEntry struct {
	id  uint64
	due time.Duration
	fn  func()
}

// FrameLoop is a deterministic Scheduler driven by Tick. It keeps its own
// clock, so it behaves identically with or without a running game loop.
// The zero value is ready to use.
type FrameLoop struct {
	now    time.Duration
	nextID uint64
	frames map[uint64]frameEntry
	timers []timerEntry

	runBuf []frameEntry
}

// NewFrameLoop creates an empty loop at time zero.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{frames: make(map[uint64]frameEntry)}
}

// Now returns the loop's clock.
func (l *FrameLoop) Now() time.Duration {
	return l.now
}

// RequestFrame schedules fn to run once on the next Tick.
func (l *FrameLoop) RequestFrame(fn func()) FrameHandle {
	if l.frames == nil {
		l.frames = make(map[uint64]frameEntry)
	}
	l.nextID++
	l.frames[l.nextID] = frameEntry{seq: l.nextID, fn: fn}
	return FrameHandle{id: l.nextID, loop: l}
}

// AfterFunc schedules fn to run on the first Tick at or after d from now.
func (l *FrameLoop) AfterFunc(d time.Duration, fn func()) TimerHandle {
	if d < 0 {
		d = 0
	}
	l.nextID++
	l.timers = append(l.timers, timerEntry{id: l.nextID, due: l.now + d, fn: fn})
	return TimerHandle{id: l.nextID, loop: l}
}

// PendingFrames returns the number of frame callbacks waiting to run.
func (l *FrameLoop) PendingFrames() int {
	return len(l.frames)
}

// PendingTimers returns the number of timers waiting to fire.
func (l *FrameLoop) PendingTimers() int {
	return len(l.timers)
}

// Tick advances the clock by dt, fires due timers in deadline order, then
// runs every frame callback requested before this call. Callbacks requested
// while ticking run on the next Tick.
func (l *FrameLoop) Tick(dt time.Duration) {
	if dt > 0 {
		l.now += dt
	}
	l.fireTimers()
	l.runFrames()
}

func (l *FrameLoop) fireTimers() {
	for {
		idx := -1
		for i := range l.timers {
			t := &l.timers[i]
			if t.due > l.now {
				continue
			}
			if idx < 0 || t.due < l.timers[idx].due ||
				(t.due == l.timers[idx].due && t.id < l.timers[idx].id) {
				idx = i
			}
		}
		if idx < 0 {
			return
		}
		fn := l.timers[idx].fn
		l.removeTimerAt(idx)
		fn()
	}
}

func (l *FrameLoop) runFrames() {
	if len(l.frames) == 0 {
		return
	}
	l.runBuf = l.runBuf[:0]
	for _, e := range l.frames {
		l.runBuf = append(l.runBuf, e)
	}
	sort.Slice(l.runBuf, func(i, j int) bool { return l.runBuf[i].seq < l.runBuf[j].seq })
	for _, e := range l.runBuf {
		// An earlier callback may have cancelled this one.
		if _, ok := l.frames[e.seq]; !ok {
			continue
		}
		delete(l.frames, e.seq)
		e.fn()
	}
}

func (l *FrameLoop) cancelFrame(id uint64) {
	delete(l.frames, id)
}

func (l *FrameLoop) cancelTimer(id uint64) {
	for i := range l.timers {
		if l.timers[i].id == id {
			l.removeTimerAt(i)
			return
		}
	}
}

func (l *FrameLoop) removeTimerAt(i int) {
	copy(l.timers[i:], l.timers[i+1:])
	l.timers[len(l.timers)-1] = timerEntry{}
	l.timers = l.timers[:len(l.timers)-1]
}
