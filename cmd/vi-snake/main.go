package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/manifest"
	"github.com/lixenwraith/vi-snake/render/terminal"
)

func main() {
	// Panic Recovery: restore the display before printing the crash report
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	world := engine.NewWorld()
	scheduler, err := manifest.NewGame(world, cfg.Tick)
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	} else {
		sound.SetMuted(cfg.Mute)
		world.Resources.Audio.Player = sound
		defer sound.Cleanup()
	}

	log.Printf("session %s: ui=%s tick=%v", world.Resources.Game.SessionID(), cfg.UI, cfg.Tick)

	if cfg.Autostart {
		world.PushEvent(event.EventGameStart, nil)
	}

	switch cfg.UI {
	case config.UITerminal:
		return runTerminal(world, scheduler, cfg.Debug)
	default:
		return runWindow(world, scheduler, cfg.Debug)
	}
}

func runTerminal(world *engine.World, scheduler *engine.Scheduler, debug bool) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("terminal ui requires an interactive terminal")
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := terminal.NewApp(screen, world, scheduler, debug)
	return app.Run(ctx, constant.FrameUpdateInterval)
}
