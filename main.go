// rima TUI - a chat-centric workspace organizer with a local assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rimahq/rima-tui/internal/assistant"
	"github.com/rimahq/rima-tui/internal/cli"
	"github.com/rimahq/rima-tui/internal/config"
	"github.com/rimahq/rima-tui/internal/member"
	"github.com/rimahq/rima-tui/internal/ollama"
	"github.com/rimahq/rima-tui/internal/router"
	"github.com/rimahq/rima-tui/internal/seed"
	"github.com/rimahq/rima-tui/internal/store"
	"github.com/rimahq/rima-tui/internal/telemetry"
	"github.com/rimahq/rima-tui/internal/ui/app"
	"github.com/rimahq/rima-tui/internal/view"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		plain       = flag.Bool("plain", false, "line-based chat instead of the full-screen UI")
		configPath  = flag.String("config", "", "config file path (default ~/.rima/config.toml)")
		modelName   = flag.String("model", "", "override the configured assistant model")
		seedPath    = flag.String("seed", "", "JSON fixture replacing the built-in workspaces")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("rima %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if err := run(*plain, *configPath, *modelName, *seedPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(plain bool, configPath, modelName, seedPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if modelName != "" {
		cfg.Ollama.Model = modelName
	}
	if seedPath != "" {
		cfg.SeedPath = seedPath
	}

	fixture, err := seed.Load(cfg.SeedPath)
	if err != nil {
		return fmt.Errorf("loading seed fixture: %w", err)
	}

	s := store.New(fixture.Roster, fixture.Workspaces, fixture.CurrentUserID)
	vs := view.NewController(s)
	rt := router.New(s, vs)
	mm := member.NewManager(s)

	client := ollama.NewClientWithConfig(&ollama.ClientConfig{
		BaseURL:           cfg.Ollama.URL,
		Timeout:           time.Duration(cfg.Ollama.TimeoutSecs) * time.Second,
		DefaultModel:      cfg.Ollama.Model,
		RequestsPerMinute: cfg.Ollama.RequestsPerMinute,
	})

	// Probe the collaborator before any screen takes over. Dispatch
	// failures are silent in the transcript, so this is the one chance
	// to tell the user replies will not arrive.
	probeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if !client.IsRunning(probeCtx) {
		fmt.Fprintf(os.Stderr, "Warning: Ollama is not reachable at %s; assistant replies will not arrive.\n", cfg.Ollama.URL)
	}
	cancel()

	tracker := telemetry.NewTracker(cfg.TelemetryDBPath())
	defer tracker.Close()

	delay := time.Duration(cfg.Assistant.TypingDelayMs) * time.Millisecond
	d := assistant.NewDispatcher(s, client, tracker, cfg.Ollama.Model, delay)

	if plain || !cli.IsTTY() {
		repl := cli.NewREPL(s, vs, rt, d, mm)
		defer repl.Close()
		return repl.Run(context.Background())
	}

	a := app.New(s, vs, rt, d, mm, cfg)
	p := tea.NewProgram(a, tea.WithAltScreen())

	// Live-reload config edits into the running program. A watcher
	// failure is not fatal; the session just keeps its startup config.
	watchPath := configPath
	if watchPath == "" {
		watchPath, _ = config.Path()
	}
	if watchPath != "" {
		w, err := config.NewWatcher(watchPath, func(c *config.Config) {
			p.Send(app.ConfigReloaded(c))
		})
		if err == nil {
			if w.Watch() == nil {
				defer w.Close()
			} else {
				w.Close()
			}
		}
	}

	_, err = p.Run()
	return err
}
