// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"io"
	"strings"

	"github.com/lgbarn/boardstate-go/internal/config"
)

// placementList collects repeated -place flags.
type placementList []string

func (p *placementList) String() string {
	return strings.Join(*p, " ")
}

func (p *placementList) Set(s string) error {
	*p = append(*p, s)
	return nil
}

// options holds the raw flag values.
type options struct {
	// Board
	width      int
	height     int
	setup      string
	placements placementList

	// Output
	format string

	// Misc
	configFile string
	logLevel   string
	version    bool
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("boardstate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&opts.width, "width", 8, "Board width (columns)")
	fs.IntVar(&opts.height, "height", 8, "Board height (rows)")
	fs.StringVar(&opts.setup, "setup", "empty", "Initial contents: empty, standard")
	fs.Var(&opts.placements, "place", "Place a piece, square=code (e.g. e2=WHITE|PAWN or 4,1=10); repeatable")
	fs.StringVar(&opts.format, "format", "text", "Output format: text, diagram, json")
	fs.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error, disabled")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")

	fs.Usage = func() { usage(fs, stderr) }
	return fs
}

// applyFlags copies the flags given on the command line into cfg, so they
// override values loaded from a configuration file.
func applyFlags(fs *flag.FlagSet, opts *options, cfg *config.Config) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "width":
			cfg.Width = opts.width
		case "height":
			cfg.Height = opts.height
		case "setup":
			cfg.Setup, err = config.ParseSetupMode(opts.setup)
		case "format":
			cfg.Format, err = config.ParseOutputFormat(opts.format)
		case "log-level":
			cfg.LogLevel = opts.logLevel
		}
	})
	if err != nil {
		return err
	}

	for _, s := range opts.placements {
		p, perr := config.ParsePlacement(s)
		if perr != nil {
			return perr
		}
		cfg.Placements = append(cfg.Placements, p)
	}
	return nil
}
