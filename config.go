package main

import (
	"io"
	"slices"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel  string   `yaml:"log_level"`
	Scenarios []string `yaml:"scenarios,omitempty"`

	Plain   PlainConfig   `yaml:"plain"`
	Logging LoggingConfig `yaml:"logging"`
	Checked CheckedConfig `yaml:"checked"`
}

// PlainConfig holds the operands of c = a + b - c * (a / b).
type PlainConfig struct {
	A int64 `yaml:"a"`
	B int64 `yaml:"b"`
	C int64 `yaml:"c"`
}

// LoggingConfig holds the operands of op = op + op2 / (op * op2).
type LoggingConfig struct {
	Op  int64   `yaml:"op"`
	Op2 float64 `yaml:"op2"`
}

// CheckedConfig drives x = x * factor until it overflows int32.
type CheckedConfig struct {
	X        int32 `yaml:"x"`
	Factor   int32 `yaml:"factor"`
	MaxSteps int   `yaml:"max_steps"`
}

func defaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Plain:    PlainConfig{A: 3, B: 4, C: 55},
		Logging:  LoggingConfig{Op: 3, Op2: 5},
		Checked:  CheckedConfig{X: 3, Factor: 3, MaxSteps: 64},
	}
}

// loadConfig reads name from fs over the defaults. An empty name yields the
// defaults.
func loadConfig(fs billy.Filesystem, name string) (*Config, error) {
	cfg := defaultConfig()
	if name == "" {
		return cfg, cfg.validate()
	}

	file, err := fs.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", name)
	}
	defer file.Close()

	blob, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", name)
	}

	if err := yaml.Unmarshal(blob, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", name)
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", name)
	}
	return cfg, nil
}

func storeConfig(fs billy.Filesystem, name string, cfg *Config) error {
	blob, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return util.WriteFile(fs, name, blob, 0666)
}

func (c *Config) validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	for _, s := range c.Scenarios {
		if !slices.Contains(scenarioNames, s) {
			return errors.Errorf("scenario '%s' does not exist", s)
		}
	}

	if c.Plain.B == 0 {
		return errors.New("plain.b must not be zero")
	}
	if c.Logging.Op == 0 || c.Logging.Op2 == 0 {
		return errors.New("logging.op and logging.op2 must not be zero")
	}
	if c.Checked.MaxSteps <= 0 {
		return errors.New("checked.max_steps must be positive")
	}

	return nil
}

// selectedScenarios returns the configured scenarios, or all of them in
// declaration order.
func (c *Config) selectedScenarios() []string {
	if len(c.Scenarios) == 0 {
		return scenarioNames
	}
	return c.Scenarios
}
