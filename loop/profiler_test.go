package loop

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestProfilerCooldown(t *testing.T) {
	clock := NewManualClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	dir := t.TempDir()

	p, err := NewProfiler(dir, 10*time.Second, 20*time.Millisecond, clock, quietLogger())
	if err != nil {
		t.Fatalf("NewProfiler failed: %v", err)
	}

	if err := p.CaptureProfile("first"); err != nil {
		t.Fatalf("First capture failed: %v", err)
	}
	if err := p.CaptureProfile("second"); !errors.Is(err, ErrProfilerCooldown) {
		t.Errorf("Expected ErrProfilerCooldown, got %v", err)
	}
	p.Wait()

	if p.IsProfiling() {
		t.Errorf("Expected profiling finished after Wait")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	var cpu, trace bool
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), "first.cpu.prof"):
			cpu = true
		case strings.HasSuffix(e.Name(), "first.trace"):
			trace = true
		}
	}
	if !cpu || !trace {
		t.Errorf("Expected a cpu profile and a trace, got %v", entries)
	}

	clock.Advance(11 * time.Second)
	if err := p.CaptureProfile("third"); err != nil {
		t.Errorf("Expected capture after the cooldown, got %v", err)
	}
	p.Wait()
}

func TestProfilerBusy(t *testing.T) {
	clock := NewManualClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))

	p, err := NewProfiler(t.TempDir(), 0, 300*time.Millisecond, clock, quietLogger())
	if err != nil {
		t.Fatalf("NewProfiler failed: %v", err)
	}

	if err := p.CaptureProfile("first"); err != nil {
		t.Fatalf("First capture failed: %v", err)
	}
	if !p.IsProfiling() {
		t.Errorf("Expected profiling in progress")
	}
	if err := p.CaptureProfile("second"); !errors.Is(err, ErrProfilerBusy) {
		t.Errorf("Expected ErrProfilerBusy, got %v", err)
	}
	p.Wait()
}

func TestProfilerOverrunHook(t *testing.T) {
	clock := NewManualClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	dir := filepath.Join(t.TempDir(), "nested", "profiles")

	p, err := NewProfiler(dir, time.Minute, 20*time.Millisecond, clock, quietLogger())
	if err != nil {
		t.Fatalf("NewProfiler failed: %v", err)
	}
	hook := p.OverrunHook(50 * time.Millisecond)

	hook(20 * time.Millisecond)
	if p.IsProfiling() {
		t.Errorf("Expected small overruns ignored")
	}

	hook(80 * time.Millisecond)
	if !p.IsProfiling() {
		t.Errorf("Expected a capture for a large overrun")
	}
	p.Wait()
}
