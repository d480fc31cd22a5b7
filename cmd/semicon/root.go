// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/parameters"
)

// app carries the per-invocation state shared by subcommands.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
	cache  *parameters.BankCache
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "semicon",
		Short: "k·p Hamiltonians and band parameters of semiconductors",
		Long: `semicon builds symbolic multi-band k·p Hamiltonians of zinc-blende
semiconductors and converts tabulated effective parameters into the bare
parameters of the explicit bands.

Available commands:
  banks       - List data banks or print one as a table
  params      - Bare (or effective) parameters of a material
  hamiltonian - Symbolic Hamiltonian of a band model
  spin        - Spin matrices of spin s`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Debug logging")
	root.PersistentFlags().Bool("json", false, "JSON log output")
	root.PersistentFlags().String("config", "", "Config file (toml, yaml or json)")

	root.AddCommand(a.banksCmd(), a.paramsCmd(), a.hamiltonianCmd(), a.spinCmd())

	return root
}

// setup binds flags, environment and config file, then builds the logger
// and the bank cache.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("SEMICON")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(errors.ErrConfiguration, "semicon: read config %s: %v", file, err)
		}
	}

	logger, err := newLogger(a.v.GetBool("verbose"), a.v.GetBool("json"))
	if err != nil {
		return err
	}
	a.logger = logger
	a.cache = parameters.NewBankCache(parameters.WithLogger(logger.Named("banks")))

	return nil
}

func newLogger(verbose, json bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if json {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

// stringList reads a list flag that may come from the environment as a
// comma-separated string.
func (a *app) stringList(key string) []string {
	var out []string
	for _, s := range a.v.GetStringSlice(key) {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}
