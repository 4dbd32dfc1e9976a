package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDimensions sets the board size.
func (b *ConfigBuilder) WithDimensions(width, height int) *ConfigBuilder {
	b.cfg.Width = width
	b.cfg.Height = height
	return b
}

// WithSetup sets the initial board contents.
func (b *ConfigBuilder) WithSetup(mode SetupMode) *ConfigBuilder {
	b.cfg.Setup = mode
	return b
}

// WithPlacement adds a piece placement.
func (b *ConfigBuilder) WithPlacement(square, code string) *ConfigBuilder {
	b.cfg.Placements = append(b.cfg.Placements, Placement{Square: square, Code: code})
	return b
}

// WithFormat sets the output format.
func (b *ConfigBuilder) WithFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Format = format
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}
