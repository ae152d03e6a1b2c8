// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/axiomic/config"
	"github.com/katalvlaran/axiomic/internal/session"
	"github.com/katalvlaran/axiomic/internal/tui"
	"github.com/katalvlaran/axiomic/render"
)

// app carries flag values and the objects built from them.
type app struct {
	configPath string
	jsonOut    bool
	verbose    bool

	exportOpts []render.ExportOption

	log  *zap.Logger
	sess *session.Session
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "axiomcalc",
		Short: "Prime analytics, axiom projection and semantic arithmetic",
		Long: `axiomcalc explores integers through three lenses:

  primes    primality, enumeration, gaps, twins, Goldbach pairs, factors
  axioms    every integer projects onto one of 11 axioms (n mod 11)
  calculus  symbolic derivatives and integrals of typed expressions

Run "axiomcalc pad" for an interactive session.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print a JSON envelope instead of text")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	for _, c := range []struct{ use, short string }{
		{"isprime N", "Report whether N is prime and its axiom"},
		{"primes N", "List the primes up to N"},
		{"next N", "Find the smallest prime greater than N"},
		{"nth K", "Find the K-th prime"},
		{"factor N", "Factorize N"},
		{"gaps N", "List the gaps between consecutive primes up to N"},
		{"twins N", "List the twin-prime pairs up to N"},
		{"goldbach N", "Write an even N as the sum of two primes"},
	} {
		root.AddCommand(a.lineCmd(c.use, c.short, cobra.ExactArgs(1)))
	}
	root.AddCommand(
		a.lineCmd("calc EXPR...", "Apply a semantic operation, e.g. calc 5 + 6", cobra.MinimumNArgs(1)),
		a.lineCmd("compose LIST...", "Trace an idea path, e.g. compose 0,1,12", cobra.MinimumNArgs(1)),
		a.lineCmd("legend", "Print the axiom table", cobra.NoArgs),
		a.calculusCmd("derive", "Differentiate an expression"),
		a.calculusCmd("integrate", "Integrate an expression"),
		a.chartCmd(),
		a.padCmd(),
	)

	return root
}

// setup loads the config and builds the logger and session once.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return a.fail(cmd, "config", err)
	}

	if a.log == nil {
		zc := zap.NewProductionConfig()
		lvl, _ := cfg.ZapLevel()
		zc.Level = zap.NewAtomicLevelAt(lvl)
		if a.verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if a.log, err = zc.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	a.sess = session.New(cfg, a.log)
	a.log.Debug("config loaded", zap.String("path", a.configPath), zap.Int64("max_prime_range", cfg.Limits.MaxPrimeRange))

	return nil
}

// lineCmd maps "axiomcalc <name> args..." onto the pad line "<name> args...".
func (a *app) lineCmd(use, short string, args cobra.PositionalArgs) *cobra.Command {
	name, _, _ := strings.Cut(use, " ")

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, strings.TrimSpace(name+" "+strings.Join(args, " ")))
		},
	}
}

func (a *app) calculusCmd(name, short string) *cobra.Command {
	var variable string
	c := &cobra.Command{
		Use:   name + " EXPR...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, fmt.Sprintf("%s %s wrt %s", name, strings.Join(args, " "), variable))
		},
	}
	c.Flags().StringVar(&variable, "var", "x", "variable to differentiate or integrate by")

	return c
}

func (a *app) chartCmd() *cobra.Command {
	var bucket int64
	c := &cobra.Command{
		Use:   "chart N",
		Short: "Draw the distribution of primes up to N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := "chart " + args[0]
			if bucket > 0 {
				line = fmt.Sprintf("%s %d", line, bucket)
			}
			return a.run(cmd, line)
		},
	}
	c.Flags().Int64Var(&bucket, "bucket", 0, "bucket width (default N/10)")

	return c
}

func (a *app) padCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pad",
		Short: "Start the interactive calculator pad",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(a.sess)
		},
	}
}

// run executes one pad line and prints the reply as text or JSON.
func (a *app) run(cmd *cobra.Command, line string) error {
	reply, err := a.sess.Run(line)
	if err != nil {
		return a.fail(cmd, reply.Command, err)
	}

	out := cmd.OutOrStdout()
	if a.jsonOut {
		return render.Export(out, reply.Command, reply.Data, a.exportOpts...)
	}
	_, err = fmt.Fprintln(out, reply.Text)

	return err
}

// fail reports err on the error stream (or as a JSON envelope) and returns
// it so the process exits non-zero.
func (a *app) fail(cmd *cobra.Command, kind string, err error) error {
	if a.jsonOut {
		if kind == "" {
			kind = cmd.Name()
		}
		_ = render.ExportError(cmd.OutOrStdout(), kind, err, a.exportOpts...)
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), render.Error(err))

	return err
}
