// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"spaceshooter/game"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes cues into a single speaker stream. It implements
// game.SoundPlayer; an uninitialized Player drops every cue.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	rng         *rand.Rand
	logger      *log.Logger
	initialized bool
}

// New creates a player at the configured master volume. Nothing is heard
// until Init.
func New(cfg game.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	mixer := &beep.Mixer{}
	seed := uint64(time.Now().UnixNano())
	return &Player{
		mixer: mixer,
		master: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   cfg.Volume,
			Silent:   !cfg.Enabled,
		},
		rng:    rand.New(rand.NewPCG(seed, seed>>1)),
		logger: logger,
	}
}

// Init opens the speaker. Hosts treat a failure as "play silent".
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.master)
	p.initialized = true
	p.logger.Debug("audio ready", "rate", int(sampleRate))
	return nil
}

// Play queues a cue and returns at once
func (p *Player) Play(s game.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.master.Silent {
		return
	}

	cue := Cue(s, sampleRate, p.rng)
	if cue == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(cue)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}

	speaker.Clear()
	speaker.Close()
	p.initialized = false
	return nil
}
