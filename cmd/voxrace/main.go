package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/gordonklaus/portaudio"
	"github.com/joho/godotenv"

	"voxrace/internal/audio"
	"voxrace/internal/config"
	"voxrace/internal/provider"
	"voxrace/internal/session"
	"voxrace/internal/ui"
)

var version = "0.1.0-dev"

func main() {
	var (
		configPath  string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "voxrace.yaml", "Path to configuration file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		return
	}

	// stderr keeps logs out of the toolkit's way
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// best effort; API keys may come from a .env next to the binary
	_ = godotenv.Load()

	if !flagPassed("config") {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = ""
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	if err := portaudio.Initialize(); err != nil {
		logger.Error("failed to initialize portaudio", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer portaudio.Terminate()

	if devices, err := audio.InputDevices(); err != nil {
		logger.Warn("could not list input devices", slog.String("error", err.Error()))
	} else if len(devices) == 0 {
		logger.Warn("no input devices found")
	} else {
		logger.Info("input devices available", slog.Any("devices", devices))
	}

	recorder := audio.NewRecorder(cfg.Audio, logger)

	factory := func(creds session.Credentials) []provider.Transcriber {
		groqCfg := cfg.Groq
		groqCfg.APIKey = creds.GroqKey
		deepgramCfg := cfg.Deepgram
		deepgramCfg.APIKey = creds.DeepgramKey
		return []provider.Transcriber{
			provider.NewGroq(groqCfg),
			provider.NewDeepgram(deepgramCfg),
		}
	}

	ctrl := session.NewController(context.Background(), recorder, factory, logger)
	defer ctrl.Close()

	panelNames := []string{
		provider.NewGroq(cfg.Groq).Name(),
		provider.NewDeepgram(cfg.Deepgram).Name(),
	}

	a := app.New()
	w := ui.Build(a, cfg, ctrl, panelNames, logger)

	logger.Info("voxrace started", slog.String("version", version))
	w.ShowAndRun()
	logger.Info("shutdown complete")
}

func flagPassed(name string) bool {
	passed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}
