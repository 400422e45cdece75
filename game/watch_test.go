package game

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestWatchConfigReloads(t *testing.T) {
	path := writeConfig(t, "[tuning]\nlives = 3\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 8)
	err := WatchConfig(ctx, path, log.New(io.Discard), func(cfg Config) {
		changes <- cfg
	})
	if err != nil {
		t.Fatalf("WatchConfig failed: %v", err)
	}

	// A broken file is skipped
	if err := os.WriteFile(path, []byte("[tuning]\nlives = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(path, []byte("[tuning]\nlives = 7\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Tuning.Lives == 0 {
				t.Fatalf("Expected invalid config to be dropped")
			}
			if cfg.Tuning.Lives == 7 {
				return
			}
		case <-deadline:
			t.Fatalf("Timed out waiting for the reload")
		}
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	err := WatchConfig(context.Background(), "/nonexistent/dir/shooter.toml", log.New(io.Discard), func(Config) {})
	if err == nil {
		t.Errorf("Expected an error watching a missing directory")
	}
}
