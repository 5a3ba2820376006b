package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/audio"
	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/loop"
	gamecfg "github.com/tomz197/spaceshooter/internal/loop/config"
)

const (
	defaultAssetsDir = "assets/sounds"
	defaultLogFile   = "spaceshooter.log"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(logger); err != nil {
		logger.Error("Game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cues loop.Cues = audio.Nop{}
	spk := audio.NewSpeaker(logger)
	if err := spk.Initialize(); err != nil {
		logger.Warn("Audio disabled", "err", err)
	} else {
		defer spk.Close()
		cues = spk
	}

	assetsDir := config.GetEnv("SHOOTER_ASSETS_DIR", defaultAssetsDir)
	loader := asset.NewLoader(logger, audio.Manifest(assetsDir)...)

	logger.Info("Starting game", "assets", assetsDir)
	return loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, loop.SessionOptions{
		Config: gamecfg.FromEnv(),
		Cues:   cues,
		Assets: loader,
		Logger: logger,
	})
}

// newLogger writes to SHOOTER_LOG_FILE since stdout and stderr belong to
// the game screen. An empty value disables logging.
func newLogger() (*log.Logger, func(), error) {
	path := config.GetEnv("SHOOTER_LOG_FILE", defaultLogFile)
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "game",
	})
	if level, err := log.ParseLevel(config.GetEnv("SHOOTER_LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(level)
	}
	return logger, func() { f.Close() }, nil
}
