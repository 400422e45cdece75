package loop

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrProfilerBusy is returned while a capture is still running
	ErrProfilerBusy = errors.New("already profiling")

	// ErrProfilerCooldown is returned when the last capture is too recent
	ErrProfilerCooldown = errors.New("capture on cooldown")
)

// Profiler captures a CPU profile and an execution trace when frames run
// over budget
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
	clock           Clock
	logger          *log.Logger
	wg              sync.WaitGroup
}

// NewProfiler creates the output directory and a profiler writing into it
func NewProfiler(dir string, cooldown, duration time.Duration, clock Clock, logger *log.Logger) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("profiles dir: %w", err)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Profiler{
		captureCooldown: cooldown,
		captureDuration: duration,
		profilesDir:     dir,
		clock:           clock,
		logger:          logger,
	}, nil
}

// OverrunHook returns an Options.OnOverrun callback that captures once a
// frame takes longer than threshold
func (p *Profiler) OverrunHook(threshold time.Duration) func(time.Duration) {
	return func(elapsed time.Duration) {
		if elapsed < threshold {
			return
		}
		reason := fmt.Sprintf("overrun-%dms", elapsed.Milliseconds())
		if err := p.CaptureProfile(reason); err == nil {
			p.logger.Warn("frame overrun, capturing profile", "elapsed", elapsed)
		}
	}
}

// CaptureProfile starts a CPU profile and a trace in the background. It
// returns at once; Wait blocks until the files are written.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.clock.Now()
	if !p.lastCaptureTime.IsZero() && now.Sub(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("%w (last capture was %v ago)", ErrProfilerCooldown, now.Sub(p.lastCaptureTime))
	}
	if p.isProfiling {
		return ErrProfilerBusy
	}

	p.isProfiling = true
	p.lastCaptureTime = now

	baseName := fmt.Sprintf("frame-%s-%s", now.Format("20060102-150405"), reason)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.capture(baseName+".cpu.prof", pprof.StartCPUProfile, pprof.StopCPUProfile); err != nil {
				p.logger.Error("cpu profile", "err", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.capture(baseName+".trace", trace.Start, trace.Stop); err != nil {
				p.logger.Error("trace", "err", err)
			}
		}()
		wg.Wait()

		p.logSummary(baseName)
	}()

	return nil
}

// Wait blocks until any running capture has finished
func (p *Profiler) Wait() {
	p.wg.Wait()
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) capture(name string, start func(w io.Writer) error, stop func()) error {
	path := filepath.Join(p.profilesDir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := start(file); err != nil {
		return fmt.Errorf("start %s: %w", path, err)
	}
	time.Sleep(p.captureDuration)
	stop()

	p.logger.Info("profile saved", "path", path)
	return nil
}

func (p *Profiler) logSummary(baseName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Info("profile captured",
		"name", baseName,
		"view", "go tool pprof -http=:8080 "+filepath.Join(p.profilesDir, baseName+".cpu.prof"),
		"alloc_kb", m.Alloc/1024,
		"sys_kb", m.Sys/1024,
		"num_gc", m.NumGC,
		"heap_objects", m.HeapObjects)
}
