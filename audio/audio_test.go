package audio

import (
	"io"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"spaceshooter/game"
)

// drain streams s to the end and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	for i := 0; i < 10000; i++ {
		buf := make([][2]float64, 512)
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("Streamer did not end")
	return nil
}

func TestCueLengths(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name  string
		sound game.Sound
		want  int
	}{
		{"shoot", game.SoundShoot, sampleRate.N(shootDuration)},
		{"life lost", game.SoundLifeLost, sampleRate.N(lifeLostHigh) + sampleRate.N(lifeLostLow)},
		{"game over", game.SoundGameOver, sampleRate.N(gameOverDuration)},
		{"wave", game.SoundWave, 4 * sampleRate.N(arpeggioNote)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := drain(t, Cue(tt.sound, sampleRate, rng))
			if len(samples) != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, len(samples))
			}
		})
	}
}

func TestCuesStayInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	sounds := []game.Sound{game.SoundShoot, game.SoundExplosion, game.SoundLifeLost, game.SoundGameOver, game.SoundWave}

	for _, s := range sounds {
		samples := drain(t, Cue(s, sampleRate, rng))
		if len(samples) == 0 {
			t.Errorf("Sound %d: expected samples", s)
			continue
		}
		if len(samples) > sampleRate.N(gameOverDuration) {
			t.Errorf("Sound %d: expected a short cue, got %d samples", s, len(samples))
		}

		peak := 0.0
		for i, v := range samples {
			if math.Abs(v[0]) > 1 || math.Abs(v[1]) > 1 {
				t.Fatalf("Sound %d: sample %d out of range: %v", s, i, v)
			}
			peak = max(peak, math.Abs(v[0]))
		}
		if peak == 0 {
			t.Errorf("Sound %d: expected audible output", s)
		}
	}
}

func TestFadeEndsSilent(t *testing.T) {
	d := 20 * time.Millisecond
	samples := drain(t, fade(tone(440, d, sampleRate), d, sampleRate))

	if samples[0][0] != 0 {
		t.Errorf("Expected the attack to start at 0, got %v", samples[0][0])
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.01 {
		t.Errorf("Expected the release to end near 0, got %v", last)
	}
}

func TestUnknownCue(t *testing.T) {
	if Cue(game.Sound(99), sampleRate, rand.New(rand.NewPCG(1, 2))) != nil {
		t.Errorf("Expected nil for an unknown sound")
	}
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := New(game.AudioConfig{Enabled: true, Volume: -1}, log.New(io.Discard))

	// Not initialized: cues are dropped without touching the speaker
	p.Play(game.SoundShoot)
	p.Play(game.SoundExplosion)

	if err := p.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got %v", err)
	}

	var _ game.SoundPlayer = p
}
