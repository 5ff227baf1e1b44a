package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/jeopardy/internal/catalog"
	"github.com/lox/jeopardy/internal/config"
	"github.com/lox/jeopardy/internal/console"
	"github.com/lox/jeopardy/internal/game"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func TestPlayPipedGame(t *testing.T) {
	t.Parallel()

	var input strings.Builder
	input.WriteString("Ada\nGrace\n")
	for i, e := range catalog.Default().Entries() {
		player := "Ada"
		if i%3 == 0 {
			player = "Grace"
		}
		input.WriteString(player + "\n" + e.Category + "\n")
		input.WriteString(strconv.Itoa(e.Value) + "\n")
		input.WriteString("who is " + e.Answer + "\n")
	}

	cfg := config.DefaultConfig()
	cfg.Game.Players = 2
	cfg.UI.NoColor = true

	var out bytes.Buffer
	prompter := console.NewLineReader(strings.NewReader(input.String()), &out)

	results, err := play(cfg, prompter, &out, quietLogger(), quartz.NewMock(t))
	require.NoError(t, err)

	// Grace takes questions 0, 3, 6, 9: $100 + $400 + $300 + $200.
	assert.Equal(t, []game.Player{
		{Name: "Ada", Score: 2000},
		{Name: "Grace", Score: 1000},
	}, results.Ranking)
	assert.False(t, results.EndedEarly)
	assert.Equal(t, 12, results.Rounds)

	text := out.String()
	assert.Contains(t, text, "Welcome to Jeopardy!")
	assert.Contains(t, text, "FINAL RESULTS")
	assert.Contains(t, text, "Winner: Ada with $2000!")
	assert.Contains(t, text, "Players registered! Let the game begin!")
	assert.NotContains(t, text, "\x1b[")
}

func TestPlayEndsEarlyOnEOF(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()
	cfg.Game.Players = 1
	cfg.UI.NoColor = true

	var out bytes.Buffer
	prompter := console.NewLineReader(strings.NewReader("Ada\nAda\nprogramming\n300\nwhat is malloc\n"), &out)

	results, err := play(cfg, prompter, &out, quietLogger(), quartz.NewMock(t))
	require.NoError(t, err)
	assert.True(t, results.EndedEarly)
	assert.Equal(t, 300, results.Winner.Score)
	assert.Contains(t, out.String(), "Game ended early after 1 round.")
}

func TestPlayScriptedGame(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()
	cfg.Game.Players = 2
	cfg.UI.NoColor = true

	var out bytes.Buffer
	prompter := console.NewScript(&out,
		"Ada", "Grace",
		"Grace", "databases", "100", "what is select",
	)

	results, err := play(cfg, prompter, &out, quietLogger(), quartz.NewMock(t))
	require.NoError(t, err)
	assert.True(t, results.EndedEarly)
	assert.Equal(t, "Grace", results.Winner.Name)
	assert.Equal(t, 100, results.Winner.Score)
	assert.Zero(t, prompter.Remaining())

	text := out.String()
	assert.Contains(t, text, "Player 1 name: Ada\n")
	assert.Contains(t, text, "Players registered! Let the game begin!")
}

func TestPlayFailsDuringSetup(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()

	prompter := console.NewLineReader(strings.NewReader("Ada\n"), io.Discard)
	_, err := play(cfg, prompter, io.Discard, quietLogger(), quartz.NewMock(t))
	assert.ErrorIs(t, err, game.ErrEndOfInput)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "jeopardy.hcl")
	require.NoError(t, os.WriteFile(path, []byte("game {\n  players = 3\n}\nlog {\n  level = \"info\"\n}\n"), 0o600))

	t.Run("file values", func(t *testing.T) {
		cli := CLI{Config: path}
		cfg, err := cli.loadConfig()
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Game.Players)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.UI.NoColor)
	})

	t.Run("flags win", func(t *testing.T) {
		cli := CLI{Config: path, Players: 5, LogLevel: "debug", LogFile: "x.log", NoColor: true}
		cfg, err := cli.loadConfig()
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Game.Players)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "x.log", cfg.Log.File)
		assert.True(t, cfg.UI.NoColor)
	})

	t.Run("invalid override", func(t *testing.T) {
		cli := CLI{Config: path, Players: -1}
		_, err := cli.loadConfig()
		assert.ErrorContains(t, err, "invalid configuration")
	})

	t.Run("missing file", func(t *testing.T) {
		cli := CLI{Config: filepath.Join(t.TempDir(), "absent.hcl")}
		cfg, err := cli.loadConfig()
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Game.Players)
	})
}

func TestNewLoggerWritesFile(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()
	cfg.Log.Level = "info"
	cfg.Log.File = filepath.Join(t.TempDir(), "game.log")

	logger, closeLog, err := newLogger(cfg, io.Discard)
	require.NoError(t, err)
	logger.Info("Starting game", "players", 4)
	logger.Debug("hidden")
	closeLog()

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Starting game")
	assert.Contains(t, string(data), "players=4")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewLoggerFallback(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger, closeLog, err := newLogger(config.DefaultConfig(), &buf)
	require.NoError(t, err)
	defer closeLog()

	logger.Info("not at warn")
	logger.Warn("Input exhausted")
	assert.NotContains(t, buf.String(), "not at warn")
	assert.Contains(t, buf.String(), "Input exhausted")
}

func TestNewLoggerBadPath(t *testing.T) {
	t.Parallel()
	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "missing", "dir", "game.log")

	_, _, err := newLogger(cfg, io.Discard)
	assert.ErrorContains(t, err, "failed to open log file")
}

type closeRecorder struct {
	closed chan struct{}
}

func (c *closeRecorder) Close() error {
	close(c.closed)
	return nil
}

func TestCloseOnSignalClosesPrompter(t *testing.T) {
	prompter := &closeRecorder{closed: make(chan struct{})}
	stop := closeOnSignal(prompter, quietLogger())
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-prompter.closed:
	case <-time.After(2 * time.Second):
		t.Fatal("prompter not closed after SIGTERM")
	}
}

func TestCloseOnSignalStop(t *testing.T) {
	prompter := &closeRecorder{closed: make(chan struct{})}
	stop := closeOnSignal(prompter, quietLogger())
	stop()

	select {
	case <-prompter.closed:
		t.Fatal("prompter closed without a signal")
	case <-time.After(50 * time.Millisecond):
	}
}
