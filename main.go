package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	configPath string
	scenarios  []string

	logger *zap.Logger
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

var rootCmd = &cobra.Command{
	Use:   "exprnode",
	Short: "Build and evaluate typed expression trees",
	Long: `exprnode runs small programs built from typed expression nodes.

Each scenario builds a tree from operands of one node family (plain,
logging or overflow checked), evaluates it and assigns the result back
to an operand.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			level.SetLevel(zapcore.DebugLevel)
		}
		config.Level = level

		var err error
		logger, err = config.Build()
		if err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the configured scenarios",
	Args:  cobra.NoArgs,
	RunE:  runScenarios,
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the known scenarios and their node families",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range scenarioNames {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, scenarioFamilies[name])
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "exprnode.yaml"
		if len(args) == 1 {
			path = args[0]
		}

		fs, name := splitConfigPath(path)
		if err := storeConfig(fs, name, defaultConfig()); err != nil {
			return err
		}

		logger.Info("wrote default config", zap.String("path", path))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	runCmd.Flags().StringSliceVarP(&scenarios, "scenario", "s", nil, "Scenarios to run (default: all configured)")

	rootCmd.AddCommand(runCmd, scenariosCmd, initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScenarios(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigPath(configPath)
	if err != nil {
		return err
	}

	if len(scenarios) > 0 {
		cfg.Scenarios = scenarios
		if err := cfg.validate(); err != nil {
			return err
		}
	}

	if !verbose {
		lvl, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		level.SetLevel(lvl)
	}

	r := newRunner(cfg, logger, prometheus.NewRegistry())
	return r.run(cmd.Context(), cmd.OutOrStdout())
}

func loadConfigPath(path string) (*Config, error) {
	if path == "" {
		return loadConfig(nil, "")
	}

	fs, name := splitConfigPath(path)
	return loadConfig(fs, name)
}
