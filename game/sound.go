package game

// Sound is a cue the game asks the host to play
type Sound int

const (
	SoundShoot Sound = iota
	SoundExplosion
	SoundLifeLost
	SoundGameOver
	SoundWave
)

// SoundPlayer plays cues. Play is called from the loop goroutine and must
// not block.
type SoundPlayer interface {
	Play(s Sound)
}

type nopSounds struct{}

func (nopSounds) Play(Sound) {}
