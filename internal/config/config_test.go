package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/boardstate-go/internal/board"
	"github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/piece"
	"github.com/lgbarn/boardstate-go/internal/testutil"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Width != 8 || cfg.Height != 8 {
		t.Errorf("size = %dx%d, want 8x8", cfg.Width, cfg.Height)
	}
	if cfg.Setup != SetupEmpty {
		t.Errorf("Setup = %v, want empty", cfg.Setup)
	}
	if cfg.Format != Text {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if len(cfg.Placements) != 0 {
		t.Errorf("Placements = %v, want none", cfg.Placements)
	}
	testutil.AssertTrue(t, cfg.Output == io.Writer(os.Stdout), "Output defaults to stdout")
	testutil.AssertNoError(t, cfg.Validate())
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithDimensions(3, 4).
		WithFormat(Diagram).
		WithPlacement("a1", "WHITE|KING").
		WithPlacement("2,3", "12").
		WithOutput(buf).
		WithLogLevel("debug").
		Build()

	if cfg.Width != 3 || cfg.Height != 4 {
		t.Errorf("size = %dx%d, want 3x4", cfg.Width, cfg.Height)
	}
	if cfg.Format != Diagram {
		t.Errorf("Format = %v, want diagram", cfg.Format)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	testutil.AssertTrue(t, cfg.Output == io.Writer(buf), "WithOutput did not set Output")
	testutil.AssertEqual(t, cfg.Placements, []Placement{{"a1", "WHITE|KING"}, {"2,3", "12"}})
	testutil.AssertNoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *ConfigBuilder) *ConfigBuilder
	}{
		{"zero width", func(b *ConfigBuilder) *ConfigBuilder { return b.WithDimensions(0, 8) }},
		{"negative height", func(b *ConfigBuilder) *ConfigBuilder { return b.WithDimensions(8, -1) }},
		{"overflowing size", func(b *ConfigBuilder) *ConfigBuilder { return b.WithDimensions(1<<32, 1<<32) }},
		{"too many cells", func(b *ConfigBuilder) *ConfigBuilder { return b.WithDimensions(100000, 100000) }},
		{"standard on 1x1", func(b *ConfigBuilder) *ConfigBuilder {
			return b.WithDimensions(1, 1).WithSetup(SetupStandard)
		}},
		{"unknown setup", func(b *ConfigBuilder) *ConfigBuilder { return b.WithSetup(SetupMode(7)) }},
		{"unknown format", func(b *ConfigBuilder) *ConfigBuilder { return b.WithFormat(OutputFormat(-1)) }},
		{"unknown log level", func(b *ConfigBuilder) *ConfigBuilder { return b.WithLogLevel("loud") }},
		{"bad square", func(b *ConfigBuilder) *ConfigBuilder { return b.WithPlacement("z", "1") }},
		{"bad code", func(b *ConfigBuilder) *ConfigBuilder { return b.WithPlacement("a1", "WHITE|DRAGON") }},
		{"square off board", func(b *ConfigBuilder) *ConfigBuilder {
			return b.WithDimensions(2, 2).WithPlacement("c1", "1")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.build(NewConfigBuilder()).Build()
			testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig)
		})
	}
}

func TestValidateLargestBoard(t *testing.T) {
	cfg := NewConfigBuilder().WithDimensions(board.MaxCells, 1).Build()
	testutil.AssertNoError(t, cfg.Validate())
}

func TestParseOutputFormat(t *testing.T) {
	for _, f := range []OutputFormat{Text, Diagram, JSON} {
		got, err := ParseOutputFormat(strings.ToUpper(f.String()))
		testutil.RequireNoError(t, err)
		testutil.AssertEqual(t, got, f)
	}
	_, err := ParseOutputFormat("xml")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
	testutil.AssertEqual(t, OutputFormat(9).String(), "OutputFormat(9)")
}

func TestParseSetupMode(t *testing.T) {
	got, err := ParseSetupMode("standard")
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, got, SetupStandard)

	got, err = ParseSetupMode("Empty")
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, got, SetupEmpty)

	_, err = ParseSetupMode("chess960")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		x, y int
	}{
		{"a1", 0, 0},
		{"e2", 4, 1},
		{"E7", 4, 6},
		{"h8", 7, 7},
		{"j10", 9, 9},
		{"4,1", 4, 1},
		{" 0 , 0 ", 0, 0},
		{"10,20", 10, 20},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			x, y, err := ParseSquare(tt.in)
			testutil.RequireNoError(t, err)
			if x != tt.x || y != tt.y {
				t.Errorf("ParseSquare(%q) = (%d, %d), want (%d, %d)", tt.in, x, y, tt.x, tt.y)
			}
		})
	}

	invalid := []string{
		"", "e", "e0", "11", "-1,0", "1,", "a,b", "#3",
		// rank and coordinates must be plain digits without a leading zero
		"e+2", "e02", "e-1", "e 2", "+1,0", "01,2", "1,02", "0x1,0",
	}
	for _, bad := range invalid {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, _, err := ParseSquare(bad)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig, "ParseSquare(%q)", bad)
		})
	}
}

func TestParsePlacement(t *testing.T) {
	p, err := ParsePlacement("e2 = WHITE|PAWN")
	testutil.RequireNoError(t, err)
	testutil.AssertEqual(t, p, Placement{Square: "e2", Code: "WHITE|PAWN"})
	testutil.AssertEqual(t, p.String(), "e2=WHITE|PAWN")

	x, y, code, err := p.Resolve()
	testutil.RequireNoError(t, err)
	if x != 4 || y != 1 {
		t.Errorf("Resolve() square = (%d, %d), want (4, 1)", x, y)
	}
	testutil.AssertEqual(t, code, piece.White|piece.Pawn)

	_, err = ParsePlacement("e2")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)

	_, _, _, err = Placement{Square: "e2", Code: "PURPLE"}.Resolve()
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPieceCode)
}

func TestLoad(t *testing.T) {
	doc := `
width: 4
height: 3
format: json
log_level: debug
placements:
  - square: a1
    code: WHITE|KING
  - square: "3,2"
    code: "12"
`
	cfg := NewConfigBuilder().WithPlacement("b1", "1").Build()
	testutil.RequireNoError(t, cfg.Load(strings.NewReader(doc)))

	if cfg.Width != 4 || cfg.Height != 3 {
		t.Errorf("size = %dx%d, want 4x3", cfg.Width, cfg.Height)
	}
	testutil.AssertEqual(t, cfg.Format, JSON)
	testutil.AssertEqual(t, cfg.Setup, SetupEmpty)
	testutil.AssertEqual(t, cfg.LogLevel, "debug")
	testutil.AssertEqual(t, cfg.Placements, []Placement{
		{Square: "b1", Code: "1"},
		{Square: "a1", Code: "WHITE|KING"},
		{Square: "3,2", Code: "12"},
	})
	testutil.AssertNoError(t, cfg.Validate())
}

func TestLoadEmptyDocument(t *testing.T) {
	cfg := NewConfig()
	testutil.RequireNoError(t, cfg.Load(strings.NewReader("")))
	testutil.AssertEqual(t, cfg.Width, 8)
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "depth: 3\n",
		"bad setup":    "setup: random\n",
		"bad format":   "format: svg\n",
		"wrong type":   "width: wide\n",
		"broken yaml":  "width: [\n",
		"unknown item": "placements:\n  - square: a1\n    piece: 1\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			err := NewConfig().Load(strings.NewReader(doc))
			testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.yaml")
	if err := os.WriteFile(path, []byte("setup: standard\nformat: diagram\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	testutil.RequireNoError(t, cfg.LoadFile(path))
	testutil.AssertEqual(t, cfg.Setup, SetupStandard)
	testutil.AssertEqual(t, cfg.Format, Diagram)

	err := cfg.LoadFile(filepath.Join(dir, "missing.yaml"))
	testutil.AssertErrorIs(t, err, os.ErrNotExist)
}
