package cmd

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/s0up4200/lfm/config"
)

// setupLogger configures the zerolog logger. Logs go to stderr so that
// stdout stays clean for JSON and YAML output. When a log file is
// configured, JSON lines are also written to a rotating file and the
// returned closer must be closed on exit.
func setupLogger(cfg config.LoggingConfig) (zerolog.Logger, io.Closer) {
	return newLogger(cfg, os.Stderr, isTerminal(os.Stderr))
}

func newLogger(cfg config.LoggingConfig, out io.Writer, tty bool) (zerolog.Logger, io.Closer) {
	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	var console io.Writer = out
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    !cfg.Color || !tty,
		}
	}

	if cfg.File == "" {
		return zerolog.New(console).Level(level).With().Timestamp().Logger(), nil
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	w := zerolog.MultiLevelWriter(console, file)
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), file
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
