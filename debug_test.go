package patchgl

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func captureLog(t *testing.T, debug bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetDebugMode(debug)
	SetLogOutput(&buf)
	t.Cleanup(func() { SetDebugMode(false) })
	return &buf
}

func TestDebugLog_Disabled(t *testing.T) {
	buf := captureLog(t, false)
	debugLog("quiet", debugStats{blockCount: 3})
	if strings.Contains(buf.String(), "quiet") {
		t.Errorf("debugLog wrote with debug off: %q", buf.String())
	}
}

func TestDebugLog_Enabled(t *testing.T) {
	buf := captureLog(t, true)
	debugLog("main", debugStats{
		compileTime: time.Millisecond,
		blockCount:  4,
		erasedCount: 2,
		touchCount:  1,
		signalFires: 3,
		timerStarts: 1,
		raftCount:   5,
	})
	out := buf.String()
	for _, want := range []string{
		"[patchgl]",
		"main compile: 1ms",
		"blocks: 4 (erased 2)",
		"touch: 1",
		"signals fired: 3",
		"timers started: 1",
		"rafts: 5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugMode_WindowCycleLogs(t *testing.T) {
	buf := captureLog(t, true)
	h := newWindowHarness(t)
	h.bind()
	h.flood(ColorFlood[string](ColorRed))
	if !strings.Contains(buf.String(), h.w.Name+" compile:") {
		t.Errorf("window cycle did not log under its name:\n%s", buf.String())
	}
}
