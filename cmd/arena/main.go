package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"

	"github.com/lixenwraith/arena/audio"
	"github.com/lixenwraith/arena/config"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/game"
	"github.com/lixenwraith/arena/input"
	"github.com/lixenwraith/arena/parameter"
	"github.com/lixenwraith/arena/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if logFile := setupLogging(cfg.Debug.Log); logFile != nil {
		defer logFile.Close()
	}

	switch cfg.Debug.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(logDir), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(logDir), profile.Quiet).Stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack trace is printed
	core.SetCrashFinalizer(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.HideCursor()
	screen.Clear()

	cues := audio.Open(cfg.Audio.Enabled, cfg.Audio.Volume)
	if player, ok := cues.(*audio.Player); ok {
		defer player.Close()
	}

	keys := input.NewTracker(nil, parameter.KeyHoldWindow)
	session, err := game.New(cfg, keys, cues)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	renderer := render.NewRenderer(screen, cfg.Render.UnitsPerCell, session.World.Resources.Status)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	ticker := time.NewTicker(session.Step())
	defer ticker.Stop()

	defer func() {
		log.Printf("[arena] exit: %s", session.World.Resources.Status.Summary())
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if keys.HandleEvent(ev) == input.CommandExit {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			session.Tick()
			renderer.Draw(session.Snapshot())
		}
	}
}
