package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/jeopardy/internal/bank"
	"github.com/lox/jeopardy/internal/catalog"
	"github.com/lox/jeopardy/internal/config"
	"github.com/lox/jeopardy/internal/console"
	"github.com/lox/jeopardy/internal/display"
	"github.com/lox/jeopardy/internal/game"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"HCL config file" default:"${config_file}" type:"path"`
	Players  int              `short:"p" help:"Number of players (overrides config)"`
	LogLevel string           `help:"Log level: debug, info, warn or error (overrides config)"`
	LogFile  string           `help:"Write logs to this file instead of stderr (overrides config)" type:"path"`
	NoColor  bool             `help:"Disable colored output"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("jeopardy"),
		kong.Description("Terminal trivia game for a room full of players"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run plays one game on the process's terminal.
func (c *CLI) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	prompter, err := console.New(os.Stdin, os.Stdout, !cfg.UI.NoColor)
	if err != nil {
		return err
	}
	defer func() {
		if err := prompter.Close(); err != nil {
			logger.Error("Failed to close prompter", "error", err)
		}
	}()

	stop := closeOnSignal(prompter, logger)
	defer stop()

	_, err = play(cfg, prompter, os.Stdout, logger, quartz.NewReal())
	return err
}

// loadConfig reads the config file and applies command line overrides.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}

	if c.Players != 0 {
		cfg.Game.Players = c.Players
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.NoColor {
		cfg.UI.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to the configured file, or
// to fallback when no file is set.
func newLogger(cfg *config.Config, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeLog := func() {}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeLog = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "jeopardy",
		Level:           cfg.LogLevel(),
	})
	return logger, closeLog, nil
}

// play runs a game with the built-in catalog.
func play(cfg *config.Config, prompter game.Prompter, out io.Writer, logger *log.Logger, clock quartz.Clock) (game.Results, error) {
	session := game.NewSession(
		bank.New(catalog.Default()),
		prompter,
		display.NewTerminal(out),
		display.NewRenderer(out, !cfg.UI.NoColor),
		game.WithPlayers(cfg.Game.Players),
		game.WithLogger(logger),
		game.WithClock(clock),
	)
	return session.Run()
}

// closeOnSignal closes the prompter on the first interrupt, which ends the
// game early and prints results. A second interrupt exits immediately.
func closeOnSignal(prompter io.Closer, logger *log.Logger) (stop func()) {
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, ending game", "signal", sig.String())
			if err := prompter.Close(); err != nil {
				logger.Error("Failed to close prompter", "error", err)
			}
		case <-done:
			return
		}

		select {
		case <-sigChan:
			os.Exit(130)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
	}
}
