package tilt

import (
	"testing"
	"time"
)

func TestFrameLoop_FrameRunsOnNextTick(t *testing.T) {
	l := NewFrameLoop()
	ran := 0
	h := l.RequestFrame(func() { ran++ })
	if !h.Pending() {
		t.Error("frame should be pending before Tick")
	}
	if ran != 0 {
		t.Fatal("frame ran before Tick")
	}
	l.Tick(16 * time.Millisecond)
	if ran != 1 {
		t.Fatalf("ran = %d after Tick, want 1", ran)
	}
	if h.Pending() {
		t.Error("frame should not be pending after it ran")
	}
	l.Tick(16 * time.Millisecond)
	if ran != 1 {
		t.Errorf("frame ran again: %d", ran)
	}
}

func TestFrameLoop_CancelFrame(t *testing.T) {
	l := NewFrameLoop()
	ran := false
	h := l.RequestFrame(func() { ran = true })
	h.Cancel()
	h.Cancel() // idempotent
	l.Tick(16 * time.Millisecond)
	if ran {
		t.Error("cancelled frame ran")
	}
	if l.PendingFrames() != 0 {
		t.Errorf("PendingFrames = %d, want 0", l.PendingFrames())
	}

	// Zero handles and handles of finished callbacks are safe to cancel.
	FrameHandle{}.Cancel()
	done := l.RequestFrame(func() {})
	l.Tick(16 * time.Millisecond)
	done.Cancel()
}

func TestFrameLoop_FramesRunInRequestOrder(t *testing.T) {
	l := NewFrameLoop()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		l.RequestFrame(func() { order = append(order, i) })
	}
	l.Tick(16 * time.Millisecond)
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want ascending", order)
		}
	}
}

func TestFrameLoop_FrameRequestedDuringTickRunsNextTick(t *testing.T) {
	l := NewFrameLoop()
	inner := 0
	l.RequestFrame(func() {
		l.RequestFrame(func() { inner++ })
	})
	l.Tick(16 * time.Millisecond)
	if inner != 0 {
		t.Fatal("frame requested during Tick ran in the same Tick")
	}
	l.Tick(16 * time.Millisecond)
	if inner != 1 {
		t.Errorf("inner = %d, want 1", inner)
	}
}

func TestFrameLoop_FrameCancelledByEarlierFrame(t *testing.T) {
	l := NewFrameLoop()
	ran := false
	var second FrameHandle
	l.RequestFrame(func() { second.Cancel() })
	second = l.RequestFrame(func() { ran = true })
	l.Tick(16 * time.Millisecond)
	if ran {
		t.Error("frame cancelled by an earlier frame in the same Tick still ran")
	}
}

func TestFrameLoop_Timer(t *testing.T) {
	l := NewFrameLoop()
	fired := 0
	h := l.AfterFunc(100*time.Millisecond, func() { fired++ })

	l.Tick(50 * time.Millisecond)
	if fired != 0 {
		t.Fatal("timer fired early")
	}
	if !h.Pending() {
		t.Error("timer should be pending")
	}
	l.Tick(50 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d at deadline, want 1", fired)
	}
	if h.Pending() {
		t.Error("fired timer should not be pending")
	}
	l.Tick(time.Second)
	if fired != 1 {
		t.Errorf("timer fired twice")
	}
	if l.Now() != 1100*time.Millisecond {
		t.Errorf("Now = %v, want 1.1s", l.Now())
	}
}

func TestFrameLoop_TimerCancel(t *testing.T) {
	l := NewFrameLoop()
	fired := false
	h := l.AfterFunc(10*time.Millisecond, func() { fired = true })
	h.Cancel()
	h.Cancel()
	TimerHandle{}.Cancel()
	l.Tick(time.Second)
	if fired {
		t.Error("cancelled timer fired")
	}
	if l.PendingTimers() != 0 {
		t.Errorf("PendingTimers = %d, want 0", l.PendingTimers())
	}
}

func TestFrameLoop_TimersFireInDeadlineOrder(t *testing.T) {
	l := NewFrameLoop()
	var order []string
	l.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	l.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	l.AfterFunc(20*time.Millisecond, func() { order = append(order, "b1") })
	l.AfterFunc(20*time.Millisecond, func() { order = append(order, "b2") })
	l.Tick(time.Second)
	want := []string{"a", "b1", "b2", "c"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestFrameLoop_TimersBeforeFrames(t *testing.T) {
	l := NewFrameLoop()
	var order []string
	l.RequestFrame(func() { order = append(order, "frame") })
	l.AfterFunc(0, func() { order = append(order, "timer") })
	l.Tick(16 * time.Millisecond)
	if len(order) != 2 || order[0] != "timer" || order[1] != "frame" {
		t.Errorf("order = %v, want [timer frame]", order)
	}
}

func TestFrameLoop_ZeroValue(t *testing.T) {
	var l FrameLoop
	ran := false
	l.RequestFrame(func() { ran = true })
	l.Tick(0)
	if !ran {
		t.Error("zero-value FrameLoop did not run its frame")
	}
}
