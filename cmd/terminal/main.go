package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"spaceshooter/audio"
	"spaceshooter/game"
	"spaceshooter/host/termhost"
	"spaceshooter/loop"
)

// defaultLogFile keeps log lines off the screen tcell draws on
const defaultLogFile = "spaceshooter.log"

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "TOML config file (or set "+game.ConfigEnvVar+")")
	seed := flag.Uint64("seed", 0, "Random seed, 0 uses the config value")
	style := flag.String("style", "", "Ship style: vector or sprite")
	profile := flag.Bool("profile", false, "Capture CPU profiles and traces when a frame overruns")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	flag.Parse()

	path := game.ConfigPath(*configPath)
	config, err := game.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spaceshooter: %v\n", err)
		os.Exit(1)
	}

	// Flags win over the file
	if *seed != 0 {
		config.Seed = *seed
	}
	if *style != "" {
		config.Render.Style = *style
	}
	if *profile {
		config.Profile.Enabled = true
	}
	if *logLevel != "" {
		config.Log.Level = *logLevel
	}
	if config.Log.File == "" {
		config.Log.File = defaultLogFile
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "spaceshooter: %v\n", err)
		os.Exit(1)
	}

	if err := run(path, config); err != nil {
		fmt.Fprintf(os.Stderr, "spaceshooter: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, config game.Config) error {
	logger, closer, err := game.OpenLog(config.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting terminal mode", "gomaxprocs", runtime.GOMAXPROCS(0), "seed", config.Seed)

	shipStyle, err := game.NewStyle(config.Render.Style)
	if err != nil {
		logger.Warn("sprites unavailable, drawing vectors", "err", err)
	}

	sounds := audio.New(config.Audio, logger)
	if config.Audio.Enabled {
		if err := sounds.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		}
	}
	defer sounds.Close()

	g := game.NewGame(config, game.Options{
		Logger: logger,
		Sounds: sounds,
		Style:  shipStyle,
	})

	opts := loop.Options{Logger: logger}
	if config.Profile.Enabled {
		profiler, err := loop.NewProfiler(config.Profile.Dir, config.Profile.Cooldown.Duration,
			config.Profile.Duration.Duration, loop.SystemClock{}, logger)
		if err != nil {
			return err
		}
		defer profiler.Wait()

		// A tick taking twice its budget is worth a profile
		opts.OnOverrun = profiler.OverrunHook(2 * config.FrameTime())
		logger.Info("profiling enabled", "dir", config.Profile.Dir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if path != "" {
		err := game.WatchConfig(ctx, path, logger, func(c game.Config) {
			g.Post(game.Retune(c.Tuning))
		})
		if err != nil {
			logger.Warn("config reload disabled", "err", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	host := termhost.New(screen, g, config, opts)
	if err := host.Run(ctx); err != nil {
		return err
	}

	s := g.Session()
	logger.Info("bye", "frames", host.Frames(), "score", s.Score, "best", s.BestScore, "wave", s.Wave)
	return nil
}
