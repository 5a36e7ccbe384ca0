package patchgl

import (
	"io"
	"log"
	"os"
	"sync/atomic"
	"time"
)

// logger receives debug output. It discards everything until debug mode is
// switched on.
var logger = log.New(io.Discard, "[patchgl] ", log.Lmicroseconds)

var debugEnabled atomic.Bool

// SetDebugMode turns per-cycle timing and dispatch logging to stderr on or off.
func SetDebugMode(enabled bool) {
	debugEnabled.Store(enabled)
	if enabled {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(io.Discard)
	}
}

// SetLogOutput redirects debug output. Passing nil restores stderr.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger.SetOutput(w)
}

// debugStats holds the timing and dispatch counts of one window cycle.
// Only logged when debug mode is on.
type debugStats struct {
	compileTime  time.Duration
	dispatchTime time.Duration
	blockCount   int
	erasedCount  int
	touchCount   int
	signalFires  int
	timerStarts  int
	raftCount    int
}

// debugLog prints the cycle stats for the named window.
func debugLog(name string, stats debugStats) {
	if !debugEnabled.Load() {
		return
	}
	logger.Printf("%s compile: %v | dispatch: %v | blocks: %d (erased %d) | touch: %d",
		name, stats.compileTime, stats.dispatchTime, stats.blockCount, stats.erasedCount, stats.touchCount)
	logger.Printf("%s signals fired: %d | timers started: %d | rafts: %d",
		name, stats.signalFires, stats.timerStarts, stats.raftCount)
}
