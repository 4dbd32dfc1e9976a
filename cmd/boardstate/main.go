// boardstate builds a board, places pieces on it and prints it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/boardstate-go/internal/board"
	"github.com/lgbarn/boardstate-go/internal/config"
	boarderrors "github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/output"
	"github.com/lgbarn/boardstate-go/internal/piece"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status: 0 on success,
// 1 on a configuration or board error, 2 on flag misuse.
func run(args []string, stdout, stderr io.Writer) int {
	opts := &options{}
	fs := newFlagSet(opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "boardstate version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	cfg.Output = stdout
	cfg.LogFile = stderr

	logger := zerolog.New(cfg.LogFile).With().Timestamp().Logger()

	if opts.configFile != "" {
		if err := cfg.LoadFile(opts.configFile); err != nil {
			logger.Error().Err(err).Msg("loading config")
			return 1
		}
	}
	if err := applyFlags(fs, opts, cfg); err != nil {
		logger.Error().Err(err).Msg("applying flags")
		return 2
	}
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		return 1
	}

	logger = newLogger(cfg)
	logger.Debug().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Stringer("setup", cfg.Setup).
		Stringer("format", cfg.Format).
		Int("placements", len(cfg.Placements)).
		Msg("loaded config")

	b, err := buildBoard(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("building board")
		return 1
	}

	if err := output.Write(cfg.Output, b, cfg.Format); err != nil {
		logger.Error().Err(err).Msg("writing board")
		return 1
	}
	return 0
}

// newLogger returns a stderr logger at the configured level. The level has
// already been checked by Validate.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(cfg.LogFile).Level(level).With().Timestamp().Logger()
}

// buildBoard creates the board described by cfg.
func buildBoard(cfg *config.Config, logger zerolog.Logger) (*board.Board, error) {
	b, err := board.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	switch cfg.Setup {
	case config.SetupStandard:
		if err := b.SetupStandard(); err != nil {
			return nil, err
		}
	default:
		b.Initialize()
	}

	for _, p := range cfg.Placements {
		x, y, code, err := p.Resolve()
		if err != nil {
			return nil, boarderrors.Wrapf(err, "placement %s", p)
		}
		if err := b.Set(x, y, code); err != nil {
			return nil, boarderrors.Wrapf(err, "placement %s", p)
		}
		if !code.Valid() {
			logger.Warn().Int("x", x).Int("y", y).Stringer("code", code).Msg("stored illegal piece code")
			continue
		}
		logger.Debug().Int("x", x).Int("y", y).Stringer("code", code).Msg("placed piece")
	}

	logger.Info().
		Int("width", b.Width()).
		Int("height", b.Height()).
		Int("occupied", len(b.Occupied())).
		Msg("board ready")
	return b, nil
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: boardstate [options]\n\n")
	fmt.Fprintf(w, "Builds a board of piece codes and prints it for inspection.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nPiece codes (-place) combine flags with '|' or give the integer:\n")
	for _, f := range piece.Flags() {
		fmt.Fprintf(w, "  %-7s %d\n", f.Name(), int(f))
	}
}
