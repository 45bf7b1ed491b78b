// SPDX-License-Identifier: MIT
// Package: masseyramanujan/cmd/polydomain

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/config"
	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/domain"
	"github.com/RaviSriTejaKuriseti/MasseyRamanujan/logger"
)

var version = "dev"

// app carries state shared by all subcommands of one invocation.
type app struct {
	logLevel  string
	logFormat string
	log       logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "polydomain",
		Short: "Enumerate convergence-screened continued fraction candidates",
		Long: `polydomain walks the cartesian product of coefficient ranges for the
a(n) and b(n) sequences of a polynomial continued fraction, drops pairs
that fail the family's convergence screen, and streams the rest.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = logger.New(logger.Options{
				Level:     a.logLevel,
				Format:    a.logFormat,
				Component: cmd.Name(),
				Writer:    cmd.ErrOrStderr(),
			})
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (trace|debug|info|warn|error|off)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", logger.FormatConsole, "log format (console|json)")

	root.AddCommand(
		newEnumerateCmd(a),
		newSizeCmd(a),
		newVerifyCmd(a),
		newFamiliesCmd(),
		newVersionCmd(),
	)

	return root
}

// loadDomain reads the config file and builds its Enumerator.
func (a *app) loadDomain(path string, opts ...domain.Option) (*config.File, *domain.Enumerator, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := f.DomainConfig()
	if err != nil {
		return nil, nil, err
	}
	opts = append(f.Options(), opts...)
	opts = append(opts, domain.WithLogger(a.log))
	e, err := domain.New(cfg, opts...)
	if err != nil {
		return nil, nil, err
	}

	return f, e, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "polydomain version %s\n", version)

			return err
		},
	}
}
