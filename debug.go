package tilt

import (
	"fmt"
	"io"
	"os"
)

// globalDebug mirrors the most recently set Scene debug flag so that code
// without a Scene pointer (effects, the value mapper) can check it cheaply.
// Only valid with a single Scene; multiple Scenes with differing debug modes
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugOut is where debug lines go. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// debugf prints a "[tilt]"-prefixed line to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[tilt] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// surface is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(s *Surface, op string) {
	if s.disposed {
		panic(fmt.Sprintf("tilt debug: %s on disposed surface %q (ID %d)", op, s.Name, s.ID))
	}
}

// debugStats holds per-update counters, logged in debug mode.
type debugStats struct {
	events    int
	frames    int
	timers    int
	animating int
}

func (s *Scene) debugLog(stats debugStats) {
	if !s.debug || stats == (debugStats{}) {
		return
	}
	debugf("update %d: events %d | frames pending %d | timers pending %d | animating %d",
		s.updates, stats.events, stats.frames, stats.timers, stats.animating)
}

// countAnimating returns how many surfaces in the subtree have a running
// transition.
func countAnimating(s *Surface) int {
	n := 0
	if s.Animating() {
		n++
	}
	for _, c := range s.children {
		n += countAnimating(c)
	}
	return n
}
