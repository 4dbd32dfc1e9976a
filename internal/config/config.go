// Package config provides configuration for the boardstate command.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/lgbarn/boardstate-go/internal/board"
	"github.com/lgbarn/boardstate-go/internal/errors"
)

// OutputFormat selects how the board is written.
type OutputFormat int

const (
	Text    OutputFormat = iota // Numeric cell dump
	Diagram                     // One letter per cell
	JSON                        // Diagnostic JSON document
)

var formatNames = []string{"text", "diagram", "json"}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return OutputFormat(i), nil
		}
	}
	return 0, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// SetupMode selects the initial board contents.
type SetupMode int

const (
	SetupEmpty    SetupMode = iota // Every cell Empty
	SetupStandard                  // Chess starting position (8x8 only)
)

var setupNames = []string{"empty", "standard"}

// String returns the flag spelling of the setup mode.
func (m SetupMode) String() string {
	if m >= 0 && int(m) < len(setupNames) {
		return setupNames[m]
	}
	return fmt.Sprintf("SetupMode(%d)", int(m))
}

// ParseSetupMode converts a flag value to a SetupMode.
func ParseSetupMode(s string) (SetupMode, error) {
	for i, name := range setupNames {
		if strings.EqualFold(s, name) {
			return SetupMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown setup %q: %w", s, errors.ErrInvalidConfig)
}

// Log levels accepted by the command.
var logLevels = []string{"debug", "info", "warn", "error", "disabled"}

// Config holds all program configuration.
type Config struct {
	// Board
	Width      int
	Height     int
	Setup      SetupMode
	Placements []Placement

	// Output
	Format OutputFormat
	Output io.Writer

	// Logging
	LogLevel string
	LogFile  io.Writer
}

// NewConfig creates a Config with default values: an empty 8x8 board
// written as text to stdout.
func NewConfig() *Config {
	return &Config{
		Width:    board.StandardSize,
		Height:   board.StandardSize,
		Setup:    SetupEmpty,
		Format:   Text,
		Output:   os.Stdout,
		LogLevel: "info",
		LogFile:  os.Stderr,
	}
}

// Validate checks the configuration. Errors wrap errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := board.CheckDimensions(c.Width, c.Height); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "board size: %v", err)
	}
	if c.Setup == SetupStandard && (c.Width != board.StandardSize || c.Height != board.StandardSize) {
		return errors.Wrapf(errors.ErrInvalidConfig, "standard setup needs %dx%d, got %dx%d",
			board.StandardSize, board.StandardSize, c.Width, c.Height)
	}
	if c.Setup < SetupEmpty || c.Setup > SetupStandard {
		return errors.Wrapf(errors.ErrInvalidConfig, "setup %v", c.Setup)
	}
	if c.Format < Text || c.Format > JSON {
		return errors.Wrapf(errors.ErrInvalidConfig, "format %v", c.Format)
	}
	if !lo.Contains(logLevels, c.LogLevel) {
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.LogLevel)
	}
	for i, p := range c.Placements {
		x, y, _, err := p.Resolve()
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "placement %d: %v", i+1, err)
		}
		if x >= c.Width || y >= c.Height {
			return errors.Wrapf(errors.ErrInvalidConfig, "placement %d: square %s is off a %dx%d board",
				i+1, p.Square, c.Width, c.Height)
		}
	}
	return nil
}
