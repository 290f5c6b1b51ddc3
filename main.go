// Command pongduel runs a two-player Pong match in the terminal or in a
// window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lguibr/pongduel/audio"
	"github.com/lguibr/pongduel/bollywood"
	"github.com/lguibr/pongduel/console"
	"github.com/lguibr/pongduel/game"
	"github.com/lguibr/pongduel/server"
	"github.com/lguibr/pongduel/utils"
	"github.com/lguibr/pongduel/window"
)

const shutdownTimeout = 2 * time.Second

type flags struct {
	config   string
	frontend string
	mode     string
	spectate string
	mute     bool
	logFile  string
}

func registerFlags(fs *flag.FlagSet) *flags {
	f := &flags{}
	fs.StringVar(&f.config, "config", "", "TOML config file")
	fs.StringVar(&f.frontend, "frontend", utils.FrontendTerminal, "front-end: terminal or window")
	fs.StringVar(&f.mode, "mode", utils.ModeDuel, "players: duel or solo")
	fs.StringVar(&f.spectate, "spectate", "", "serve the spectator feed on this address, e.g. :3001")
	fs.BoolVar(&f.mute, "mute", false, "disable audio")
	fs.StringVar(&f.logFile, "log", "", `log file, "-" for stderr`)
	return f
}

func main() {
	f := registerFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := loadConfig(flag.CommandLine, f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pongduel:", err)
		os.Exit(2)
	}

	logCloser, err := utils.SetupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pongduel:", err)
		os.Exit(2)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Main: starting %s front-end in %s mode", cfg.Frontend, cfg.Mode)
	if err := run(ctx, cfg); err != nil {
		log.Printf("Main: %v", err)
		fmt.Fprintln(os.Stderr, "pongduel:", err)
		stop()
		logCloser.Close()
		os.Exit(1)
	}
	log.Printf("Main: bye")
}

// loadConfig applies the flags given on the command line on top of the
// layered configuration.
func loadConfig(fs *flag.FlagSet, f *flags) (utils.Config, error) {
	cfg, err := utils.LoadConfig(f.config)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "frontend":
			cfg.Frontend = f.frontend
		case "mode":
			cfg.Mode = f.mode
		case "spectate":
			cfg.SpectatorAddr = f.spectate
		case "mute":
			cfg.AudioEnabled = !f.mute
		case "log":
			cfg.LogFile = f.logFile
		}
	})
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg utils.Config) error {
	engine := bollywood.NewEngine()
	defer engine.Shutdown(shutdownTimeout)

	var events game.EventSink
	if cfg.AudioEnabled {
		sounds := audio.NewSoundManager(cfg)
		if err := sounds.Initialize(); err != nil {
			log.Printf("Main: audio disabled: %v", err)
		}
		defer sounds.Cleanup()
		pid := engine.Spawn(bollywood.NewProps(audio.NewSoundActorProducer(sounds)).WithName("sound"))
		events = audio.NewEventSink(engine, pid)
	}

	var frames game.FrameSink
	if cfg.SpectatorAddr != "" {
		spectators := server.New(engine, cfg)
		frames = spectators
		go func() {
			if err := spectators.Serve(ctx, cfg.SpectatorAddr); err != nil {
				log.Printf("Main: spectator feed stopped: %v", err)
			}
		}()
	}

	session := game.NewSession(game.New(utils.StandardRules(), cfg.Mode, nil), events, frames)

	if cfg.Frontend == utils.FrontendWindow {
		return window.New(ctx, session).Run(cfg)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	return console.New(screen, session, cfg).Run(ctx)
}
