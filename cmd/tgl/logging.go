package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	tgl "github.com/snapcore/go-tgl"
	"github.com/snapcore/go-tgl/internal/config"
)

// setupLogging installs the logger used by the tool and the library. The
// -v flags win over the configured level.
func setupLogging(verbosity int, cfg *config.Config) {
	level := zerolog.InfoLevel
	if cfg != nil && cfg.Log.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
			level = parsed
		}
	}
	switch {
	case verbosity == 1:
		level = zerolog.DebugLevel
	case verbosity > 1:
		level = zerolog.TraceLevel
	}

	format := "auto"
	if cfg != nil && cfg.Log.Format != "" {
		format = cfg.Log.Format
	}

	var out io.Writer = Stderr
	if format == "console" || (format == "auto" && isTerminal(Stderr)) {
		out = zerolog.ConsoleWriter{Out: Stderr, TimeFormat: time.Kitchen}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = logger
	tgl.Logger = logger.With().Str("sys", "tgl").Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
