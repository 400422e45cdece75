// Package loop drives a scene at a fixed frame rate on its own goroutine.
package loop

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"spaceshooter/game"
)

// ErrAlreadyRunning is returned by Start on a runner that was started before
var ErrAlreadyRunning = errors.New("loop already started")

// Surface is the host's drawable. Acquire and Present bracket one frame.
type Surface interface {
	Acquire() (game.Canvas, error)
	Present(c game.Canvas) error
}

// Scene is what the loop ticks. *game.Game implements it.
type Scene interface {
	Update(deltaTime float64)
	Render(c game.Canvas)
}

// Options configures a Runner. Zero values get defaults.
type Options struct {
	// FPS is the target frame rate, 60 by default
	FPS int

	// MaxDelta caps the seconds simulated by one frame, 0.1 by default
	MaxDelta float64

	Clock  Clock
	Logger *log.Logger

	// OnOverrun is called on the loop goroutine after a frame that took
	// longer than its budget
	OnOverrun func(elapsed time.Duration)
}

// Runner owns the loop goroutine
type Runner struct {
	scene     Scene
	surface   Surface
	clock     Clock
	logger    *log.Logger
	frameTime time.Duration
	maxDelta  float64
	onOverrun func(time.Duration)

	// surfaceMu is held while a frame draws and by WithSurface
	surfaceMu sync.Mutex

	lifecycleMu sync.Mutex
	started     bool
	stopOnce    sync.Once
	stop        chan struct{}
	done        chan struct{}

	frames atomic.Uint64
}

// New creates a runner. It does nothing until Start.
func New(scene Scene, surface Surface, opts Options) *Runner {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.MaxDelta <= 0 {
		opts.MaxDelta = 0.1
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Runner{
		scene:     scene,
		surface:   surface,
		clock:     opts.Clock,
		logger:    opts.Logger,
		frameTime: time.Second / time.Duration(opts.FPS),
		maxDelta:  opts.MaxDelta,
		onOverrun: opts.OnOverrun,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the loop goroutine
func (r *Runner) Start() error {
	r.lifecycleMu.Lock()
	defer r.lifecycleMu.Unlock()

	if r.started {
		return ErrAlreadyRunning
	}
	r.started = true

	go r.run()
	return nil
}

// Stop signals the loop and blocks until its goroutine has exited. After
// Stop returns the surface is never touched again. Safe to call more than
// once and before Start.
func (r *Runner) Stop() {
	r.lifecycleMu.Lock()
	started := r.started
	r.lifecycleMu.Unlock()

	r.stopOnce.Do(func() { close(r.stop) })
	if started {
		<-r.done
	}
}

// Done is closed once the loop goroutine has exited
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// WithSurface runs fn while no frame is drawing. Hosts use it for surface
// changes coming from their own callbacks, such as a resize.
func (r *Runner) WithSurface(fn func()) {
	r.surfaceMu.Lock()
	defer r.surfaceMu.Unlock()
	fn()
}

// Frames returns the number of frames run so far
func (r *Runner) Frames() uint64 {
	return r.frames.Load()
}

func (r *Runner) run() {
	defer close(r.done)

	r.logger.Debug("loop started", "frame_time", r.frameTime)
	last := r.clock.Now()

	for {
		select {
		case <-r.stop:
			r.logger.Debug("loop stopped", "frames", r.frames.Load())
			return
		default:
		}

		start := r.clock.Now()
		deltaTime := start.Sub(last).Seconds()
		last = start
		if deltaTime > r.maxDelta {
			deltaTime = r.maxDelta
		}

		r.frame(deltaTime)
		r.frames.Add(1)

		elapsed := r.clock.Now().Sub(start)
		wait := r.frameTime - elapsed
		if wait <= 0 {
			if r.onOverrun != nil {
				r.onOverrun(elapsed)
			}
			continue
		}

		select {
		case <-r.stop:
			r.logger.Debug("loop stopped", "frames", r.frames.Load())
			return
		case <-r.clock.After(wait):
		}
	}
}

// frame runs one update and render while holding the surface. Errors and
// panics are logged and the loop carries on with the next frame.
func (r *Runner) frame(deltaTime float64) {
	r.surfaceMu.Lock()
	defer r.surfaceMu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("frame panicked", "panic", p)
		}
	}()

	canvas, err := r.surface.Acquire()
	if err != nil {
		r.logger.Warn("surface unavailable, skipping render", "err", err)
		canvas = nil
	}
	if canvas != nil {
		defer func() {
			if err := r.surface.Present(canvas); err != nil {
				r.logger.Error("present failed", "err", err)
			}
		}()
	}

	r.scene.Update(deltaTime)
	if canvas != nil {
		r.scene.Render(canvas)
	}
}
