package game

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// waveLeadTime is how long before the next spawn an emptied screen
// advances the wave
const waveLeadTime = 0.5

// Options carries the collaborators of a Game. Zero values get defaults.
type Options struct {
	// Rand drives every randomized field. Defaults to a PCG seeded from
	// Config.Seed, or from the clock when the seed is 0.
	Rand *rand.Rand

	Logger *log.Logger
	Sounds SoundPlayer

	// Style draws the player and enemy ships
	Style Style
}

// Game represents the main game state. Everything except Post must be
// called from a single goroutine.
type Game struct {
	config   Config
	tuning   Tuning
	rng      *rand.Rand
	logger   *log.Logger
	sounds   SoundPlayer
	renderer *Renderer

	state        State
	screenWidth  float64
	screenHeight float64
	layout       Layout

	player     *Player
	bullets    []*Bullet
	enemies    []*Enemy
	explosions []*Explosion

	// Auto-fire while a finger is down
	shooting   bool
	shootTimer float64

	// Wave-based spawning
	spawnTimer     float64
	spawnInterval  float64
	enemiesPerWave int
	waveSpawned    bool // current wave has put enemies on screen

	score     int
	bestScore int
	lives     int
	wave      int
	kills     int
	sessionID string

	input   inputQueue
	pending []Event
}

// NewGame creates a game sitting in the menu
func NewGame(config Config, opts Options) *Game {
	if opts.Rand == nil {
		seed := config.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		opts.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Sounds == nil {
		opts.Sounds = nopSounds{}
	}
	if opts.Style == nil {
		opts.Style = VectorStyle{}
	}

	w := float64(config.Screen.Width)
	h := float64(config.Screen.Height)

	g := &Game{
		config:         config,
		tuning:         config.Tuning,
		rng:            opts.Rand,
		logger:         opts.Logger,
		sounds:         opts.Sounds,
		renderer:       NewRenderer(opts.Style),
		state:          StateMenu,
		screenWidth:    w,
		screenHeight:   h,
		layout:         NewLayout(w, h),
		bullets:        make([]*Bullet, 0, 64),
		enemies:        make([]*Enemy, 0, 16),
		explosions:     make([]*Explosion, 0, 16),
		spawnInterval:  config.Tuning.SpawnInterval,
		enemiesPerWave: config.Tuning.EnemiesPerWave,
		lives:          config.Tuning.Lives,
		wave:           1,
	}
	g.player = NewPlayer(g.playerHomeX(), g.playerHomeY(), g.tuning.PlayerSpeed, w)
	return g
}

// Post queues an input event. Safe to call from any goroutine; the event
// is applied at the start of the next Update.
func (g *Game) Post(ev Event) {
	g.input.push(ev)
}

// Update applies queued input and, while playing, advances the simulation
// by deltaTime seconds
func (g *Game) Update(deltaTime float64) {
	g.pending = g.input.drain(g.pending[:0])
	for _, ev := range g.pending {
		g.handleEvent(ev)
	}
	clear(g.pending)

	if g.state != StatePlaying {
		return
	}
	g.updatePlaying(deltaTime)
}

// Render draws the current screen
func (g *Game) Render(c Canvas) {
	g.renderer.Render(c, g)
}

func (g *Game) updatePlaying(deltaTime float64) {
	g.player.Update(deltaTime)

	if g.shooting {
		g.shootTimer += deltaTime
		if g.shootTimer >= g.tuning.ShootInterval {
			g.shootTimer = 0
			g.shoot()
		}
	}

	bullets := g.bullets[:0]
	for _, b := range g.bullets {
		b.Update(deltaTime)
		if b.OffScreen() || b.Destroyed {
			continue
		}
		bullets = append(bullets, b)
	}
	clear(g.bullets[len(bullets):])
	g.bullets = bullets

	enemies := g.enemies[:0]
	for _, e := range g.enemies {
		e.Update(deltaTime)
		if e.Y > g.screenHeight {
			g.loseLife("enemy escaped")
			continue
		}
		if e.Destroyed {
			continue
		}
		enemies = append(enemies, e)
	}
	clear(g.enemies[len(enemies):])
	g.enemies = enemies

	explosions := g.explosions[:0]
	for _, ex := range g.explosions {
		ex.Update(deltaTime)
		if !ex.Finished() {
			explosions = append(explosions, ex)
		}
	}
	clear(g.explosions[len(explosions):])
	g.explosions = explosions

	if g.state != StatePlaying {
		return
	}

	g.spawnTimer += deltaTime
	if g.spawnTimer >= g.spawnInterval {
		g.spawnTimer = 0
		g.spawnEnemies()
	}

	g.checkCollisions()
	if g.state != StatePlaying {
		return
	}

	if len(g.enemies) == 0 && g.waveSpawned && g.spawnTimer > g.spawnInterval-waveLeadTime {
		g.NextWave()
	}
}

// StartGame resets the session and starts playing
func (g *Game) StartGame() {
	g.score = 0
	g.lives = g.tuning.Lives
	g.wave = 1
	g.kills = 0
	g.spawnInterval = g.tuning.SpawnInterval
	g.enemiesPerWave = g.tuning.EnemiesPerWave
	g.spawnTimer = 0
	g.waveSpawned = false
	g.shootTimer = 0
	g.shooting = false

	clear(g.bullets)
	g.bullets = g.bullets[:0]
	clear(g.enemies)
	g.enemies = g.enemies[:0]
	clear(g.explosions)
	g.explosions = g.explosions[:0]

	g.player.Speed = g.tuning.PlayerSpeed
	g.player.Reset(g.playerHomeX(), g.playerHomeY())

	g.sessionID = uuid.NewString()
	g.logger.Info("game started", "session", g.sessionID)
	g.setState(StatePlaying)
}

// NextWave escalates the spawning: more enemies every second wave and a
// shorter interval down to the floor
func (g *Game) NextWave() {
	g.wave++
	if g.wave%2 == 0 {
		g.enemiesPerWave++
	}
	g.spawnInterval = max(g.tuning.MinSpawnInterval, g.spawnInterval-g.tuning.SpawnStep)
	g.waveSpawned = false

	g.sounds.Play(SoundWave)
	g.logger.Info("wave advanced",
		"session", g.sessionID,
		"wave", g.wave,
		"enemies", g.enemiesPerWave,
		"interval", g.spawnInterval)
}

// State returns the current phase
func (g *Game) State() State {
	return g.state
}

// Layout returns the current button rectangles
func (g *Game) Layout() Layout {
	return g.layout
}

// Session returns a snapshot of the scoring state
func (g *Game) Session() Session {
	return Session{
		ID:             g.sessionID,
		State:          g.state,
		Score:          g.score,
		BestScore:      g.bestScore,
		Lives:          g.lives,
		Wave:           g.wave,
		Kills:          g.kills,
		EnemiesPerWave: g.enemiesPerWave,
		SpawnInterval:  g.spawnInterval,
	}
}

func (g *Game) handleEvent(ev Event) {
	switch ev.Kind {
	case EventResize:
		g.resize(ev.W, ev.H)
	case EventRetune:
		g.retune(ev.Tuning)
	case EventBack:
		g.back()
	case EventPause:
		if g.state == StatePlaying {
			g.setState(StatePaused)
		}
	case EventConfirm:
		g.confirm()
	case EventPress:
		g.press(ev.X, ev.Y)
	case EventMove:
		if g.state == StatePlaying {
			g.player.MoveTo(ev.X)
		}
	case EventRelease:
		if g.state == StatePlaying {
			g.shooting = false
			g.shootTimer = 0
		}
	}
}

func (g *Game) press(x, y float64) {
	switch g.state {
	case StateMenu:
		if g.layout.Start.Contains(x, y) {
			g.StartGame()
		}
	case StatePlaying:
		if g.layout.Pause.Contains(x, y) {
			g.back()
			return
		}
		g.shooting = true
		// Prime the timer so the first bullet leaves on the next tick
		g.shootTimer = g.tuning.ShootInterval
		g.player.MoveTo(x)
	case StatePaused:
		if g.layout.Continue.Contains(x, y) {
			g.setState(StatePlaying)
		} else if g.layout.Restart.Contains(x, y) {
			g.StartGame()
		}
	case StateGameOver:
		if g.layout.Menu.Contains(x, y) {
			g.setState(StateMenu)
		}
	}
}

func (g *Game) back() {
	switch g.state {
	case StatePlaying:
		g.shooting = false
		g.shootTimer = 0
		g.setState(StatePaused)
	case StatePaused:
		g.setState(StatePlaying)
	}
}

func (g *Game) confirm() {
	switch g.state {
	case StateMenu:
		g.StartGame()
	case StatePaused:
		g.setState(StatePlaying)
	case StateGameOver:
		g.setState(StateMenu)
	}
}

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	g.logger.Debug("state change", "from", g.state, "to", s)
	g.state = s
}

func (g *Game) loseLife(reason string) {
	if g.lives > 0 {
		g.lives--
	}
	g.logger.Debug("life lost", "session", g.sessionID, "reason", reason, "lives", g.lives)

	if g.lives > 0 {
		g.sounds.Play(SoundLifeLost)
		return
	}
	if g.state == StatePlaying {
		g.gameOver()
	}
}

func (g *Game) gameOver() {
	if g.score > g.bestScore {
		g.bestScore = g.score
	}
	g.shooting = false
	g.sounds.Play(SoundGameOver)
	g.logger.Info("game over",
		"session", g.sessionID,
		"score", g.score,
		"wave", g.wave,
		"kills", g.kills)
	g.setState(StateGameOver)
}

func (g *Game) shoot() {
	x := g.player.X + g.player.Width/2 - bulletWidth/2
	g.bullets = append(g.bullets, NewBullet(x, g.player.Y, g.tuning.BulletSpeed))
	g.sounds.Play(SoundShoot)
}

func (g *Game) spawnEnemies() {
	span := max(0, g.screenWidth-2*enemySpawnMargin)
	for i := 0; i < g.enemiesPerWave; i++ {
		x := enemySpawnMargin + g.rng.Float64()*span
		g.enemies = append(g.enemies, NewEnemy(x, enemySpawnY, g.tuning, g.screenWidth, g.rng))
	}
	g.waveSpawned = true
}

func (g *Game) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	g.screenWidth = float64(w)
	g.screenHeight = float64(h)
	g.layout = NewLayout(g.screenWidth, g.screenHeight)

	g.player.SetScreenWidth(g.screenWidth)
	g.player.Y = g.playerHomeY()
	for _, e := range g.enemies {
		e.screenWidth = g.screenWidth
	}
	g.logger.Debug("resized", "width", w, "height", h)
}

func (g *Game) retune(t *Tuning) {
	if t == nil {
		return
	}
	if err := t.Validate(); err != nil {
		g.logger.Warn("ignoring tuning update", "err", err)
		return
	}
	g.tuning = *t
	g.player.Speed = t.PlayerSpeed
	g.logger.Info("tuning updated")
}

func (g *Game) playerHomeX() float64 {
	return g.screenWidth/2 - playerWidth/2
}

func (g *Game) playerHomeY() float64 {
	return g.screenHeight - playerHeight - playerBottomMargin
}
