package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMemorySize     = 30000
	DefaultMaxNestedLoops = 1000
	DefaultMaxProgramSize = 1000000
)

// Config is the interpreter's configuration record, resolved once at
// startup and never mutated during a run.
type Config struct {
	WrapMemory bool `yaml:"wrap_memory"`
	DebugMode  bool `yaml:"debug_mode"`
	MemorySize int  `yaml:"memory_size"`
	ZeroOnEOF  bool `yaml:"eof_behavior"`

	MaxNestedLoops int    `yaml:"max_nested_loops"`
	MaxProgramSize int    `yaml:"max_program_size"`
	TraceFormat    string `yaml:"trace_format"`

	// Interactive is a capability of the input source, injected by the
	// boundary rather than read from a file.
	Interactive bool `yaml:"-"`
}

func Default() Config {
	return Config{
		MemorySize:     DefaultMemorySize,
		MaxNestedLoops: DefaultMaxNestedLoops,
		MaxProgramSize: DefaultMaxProgramSize,
		TraceFormat:    "text",
	}
}

// LoadFile reads a YAML configuration file on top of the defaults.
func LoadFile(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config: %w", err)
	}

	return config, nil
}

// DefaultPath returns the default location for the config file.
func DefaultPath() string {
	if path := os.Getenv("BFVM_CONFIG"); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bfvm", "config.yaml")
}

// Normalize replaces non-positive sizes and ceilings with their
// defaults, the same fallback the flag parser applies to a bad -m
// value, and pins the trace format to a known one.
func (c Config) Normalize() Config {
	if c.MemorySize <= 0 {
		c.MemorySize = DefaultMemorySize
	}
	if c.MaxNestedLoops <= 0 {
		c.MaxNestedLoops = DefaultMaxNestedLoops
	}
	if c.MaxProgramSize <= 0 {
		c.MaxProgramSize = DefaultMaxProgramSize
	}
	if c.TraceFormat != "json" {
		c.TraceFormat = "text"
	}
	return c
}
