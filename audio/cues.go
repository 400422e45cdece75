package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"spaceshooter/game"
)

// Cue timings
const (
	shootDuration     = 60 * time.Millisecond
	explosionDuration = 350 * time.Millisecond
	lifeLostHigh      = 120 * time.Millisecond
	lifeLostLow       = 220 * time.Millisecond
	gameOverDuration  = 1200 * time.Millisecond
	arpeggioNote      = 90 * time.Millisecond
)

// Cue builds the finite streamer for a sound. Unknown sounds give nil.
func Cue(s game.Sound, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	switch s {
	case game.SoundShoot:
		return gain(fade(tone(880, shootDuration, rate), shootDuration, rate), 0.35)

	case game.SoundExplosion:
		return beep.Mix(
			gain(noise(explosionDuration, rate, rng), 0.5),
			gain(fade(tone(70, explosionDuration, rate), explosionDuration, rate), 0.4),
		)

	case game.SoundLifeLost:
		return gain(beep.Seq(
			fade(tone(440, lifeLostHigh, rate), lifeLostHigh, rate),
			fade(tone(330, lifeLostLow, rate), lifeLostLow, rate),
		), 0.5)

	case game.SoundGameOver:
		return gain(fade(sweep(440, 110, gameOverDuration, rate), gameOverDuration, rate), 0.5)

	case game.SoundWave:
		notes := []float64{523.25, 659.25, 783.99, 1046.50} // C5 E5 G5 C6
		parts := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			parts = append(parts, fade(tone(f, arpeggioNote, rate), arpeggioNote, rate))
		}
		return gain(beep.Seq(parts...), 0.4)
	}
	return nil
}

// tone is a sine wave cut to d
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist for this rate
		return beep.Silence(n)
	}
	return beep.Take(n, sine)
}

// sweep glides a sine wave from one frequency to another over d
func sweep(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			progress := float64(pos) / float64(total)
			freq := from + (to-from)*progress

			v := math.Sin(2 * math.Pi * phase)
			samples[i][0] = v
			samples[i][1] = v

			phase += freq / float64(rate)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	})
}

// noise is white noise with an exponential decay over d
func noise(d time.Duration, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	total := rate.N(d)
	src := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			t := float64(pos) / float64(rate)
			v := math.Exp(-t*10) * (src.Float64()*2 - 1)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// fadeStreamer ramps the amplitude of its source linearly down to zero
type fadeStreamer struct {
	streamer beep.Streamer
	position int
	total    int
}

// fade applies a short attack and a linear release over d
func fade(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fadeStreamer{streamer: s, total: max(1, rate.N(d))}
}

// fadeAttack avoids a click at the start of every cue
const fadeAttack = 64

func (f *fadeStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(f.position)/float64(f.total)
		if f.position < fadeAttack {
			vol *= float64(f.position) / fadeAttack
		}
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fadeStreamer) Err() error { return f.streamer.Err() }

// gain scales a streamer by a linear factor
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
