// Package config reads the optional schemald.yaml used by the CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no -config flag is given.
const DefaultFile = "schemald.yaml"

// DefaultOutput is the generated file name.
const DefaultOutput = "zz_generated.schemald.go"

// Config mirrors schemald.yaml. Command-line flags override file values.
type Config struct {
	Output   string   `yaml:"output"`
	Packages []string `yaml:"packages"`
	Types    []string `yaml:"types"`
	Workers  int      `yaml:"workers"`
	Strict   bool     `yaml:"strict"`
	Tags     []string `yaml:"tags"`
}

// Default returns the configuration used when no file exists.
func Default() Config { return Config{}.withDefaults() }

func (c Config) withDefaults() Config {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if len(c.Packages) == 0 {
		c.Packages = []string{"."}
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	return c
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c.withDefaults(), nil
}

// Load reads path. When path is empty, DefaultFile is used if it exists and the
// defaults otherwise.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(bytes.NewReader(b))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", c.Workers)
	}
	if c.Output != "" && !isGoFile(c.Output) {
		return fmt.Errorf("config: output %q must be a .go file name", c.Output)
	}
	return nil
}

func isGoFile(name string) bool {
	return len(name) > len(".go") && strings.HasSuffix(name, ".go") && !strings.ContainsAny(name, `/\`)
}
