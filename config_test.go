package main

import (
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil, "")
	require.NoError(t, err)

	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("loadConfig() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, scenarioNames, cfg.selectedScenarios())
}

func TestConfigRoundTrip(t *testing.T) {
	fs := newMemFs()
	cfg := defaultConfig()
	cfg.Scenarios = []string{"checked"}
	cfg.Checked.Factor = 7

	require.NoError(t, storeConfig(fs, "exprnode.yaml", cfg))

	got, err := loadConfig(fs, "exprnode.yaml")
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("loadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigKeepsDefaultsForMissingSections(t *testing.T) {
	fs := newMemFs()
	err := util.WriteFile(fs, "partial.yaml", []byte("plain:\n  a: 10\n  b: 5\n  c: 1\n"), 0666)
	require.NoError(t, err)

	cfg, err := loadConfig(fs, "partial.yaml")
	require.NoError(t, err)

	assert.Equal(t, PlainConfig{A: 10, B: 5, C: 1}, cfg.Plain)
	assert.Equal(t, defaultConfig().Logging, cfg.Logging)
	assert.Equal(t, defaultConfig().Checked, cfg.Checked)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown scenario", body: "scenarios: [parser]\n"},
		{name: "zero divisor", body: "plain:\n  a: 1\n  b: 0\n  c: 1\n"},
		{name: "zero logging operand", body: "logging:\n  op: 0\n  op2: 5\n"},
		{name: "zero logging divisor", body: "logging:\n  op: 3\n  op2: 0\n"},
		{name: "no steps", body: "checked:\n  x: 1\n  factor: 2\n  max_steps: 0\n"},
		{name: "bad level", body: "log_level: loud\n"},
		{name: "not yaml", body: "plain: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newMemFs()
			require.NoError(t, util.WriteFile(fs, "bad.yaml", []byte(tt.body), 0666))

			_, err := loadConfig(fs, "bad.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "bad.yaml")
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(newMemFs(), "missing.yaml")
	require.Error(t, err)
}
