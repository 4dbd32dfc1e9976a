package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/boardstate-go/internal/errors"
)

// fileConfig is the YAML form of Config. Absent keys leave the current
// value untouched.
type fileConfig struct {
	Width      *int        `yaml:"width"`
	Height     *int        `yaml:"height"`
	Setup      string      `yaml:"setup"`
	Format     string      `yaml:"format"`
	LogLevel   string      `yaml:"log_level"`
	Placements []Placement `yaml:"placements"`
}

// LoadFile merges the YAML file at path into c.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := c.Load(f); err != nil {
		return errors.Wrap(err, path)
	}
	return nil
}

// Load merges a YAML document into c. Unknown keys are rejected.
// Placements from the document are appended.
func (c *Config) Load(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fc fileConfig
	if err := dec.Decode(&fc); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}

	if fc.Width != nil {
		c.Width = *fc.Width
	}
	if fc.Height != nil {
		c.Height = *fc.Height
	}
	if fc.Setup != "" {
		mode, err := ParseSetupMode(fc.Setup)
		if err != nil {
			return err
		}
		c.Setup = mode
	}
	if fc.Format != "" {
		format, err := ParseOutputFormat(fc.Format)
		if err != nil {
			return err
		}
		c.Format = format
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	c.Placements = append(c.Placements, fc.Placements...)
	return nil
}
