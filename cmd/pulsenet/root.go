package main

import (
	"fmt"
	"os"

	"github.com/aretw0/pulsenet/internal/cli"
	"github.com/aretw0/pulsenet/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:           "pulsenet",
	Short:         "pulsenet simulates pulse-propagation networks",
	Long:          `pulsenet presses the button of a network of broadcaster, flip-flop and conjunction modules and reports what happens.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	addPersistentFlags(rootCmd.PersistentFlags())
}

func addPersistentFlags(pf *pflag.FlagSet) {
	pf.String("config", "", "YAML profile with default settings")
	pf.Bool("debug", false, "Log every press to stderr")
	pf.String("metrics", "", "Write Prometheus metrics to this file after the run")
	pf.Int("max-presses", 0, "Press limit for searches")
	pf.Int("max-pulses", 0, "Pulse limit for a single press")
	pf.Bool("no-cycle-detection", false, "Simulate every press even when the state repeats")
	pf.Bool("plain", false, "Plain output without colours or Markdown rendering")
}

// loadOptions builds the command options from the profile, then flags that were set explicitly.
func loadOptions(cmd *cobra.Command, args []string) (cli.Options, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	p, err := config.Load(path)
	if err != nil {
		return cli.Options{}, err
	}

	if flags.Changed("metrics") {
		p.Metrics, _ = flags.GetString("metrics")
	}
	if flags.Changed("max-presses") {
		p.MaxPresses, _ = flags.GetInt("max-presses")
	}
	if flags.Changed("max-pulses") {
		p.MaxPulses, _ = flags.GetInt("max-pulses")
	}
	if flags.Changed("no-cycle-detection") {
		off, _ := flags.GetBool("no-cycle-detection")
		p.CycleDetection = !off
	}
	if flags.Changed("plain") {
		p.Plain, _ = flags.GetBool("plain")
	}
	if flags.Lookup("presses") != nil && flags.Changed("presses") {
		p.Presses, _ = flags.GetInt("presses")
	}
	if flags.Lookup("target") != nil && flags.Changed("target") {
		p.Target, _ = flags.GetString("target")
	}
	if flags.Lookup("level") != nil && flags.Changed("level") {
		p.Level, _ = flags.GetString("level")
	}
	if err := p.Validate(); err != nil {
		return cli.Options{}, err
	}

	debug, _ := flags.GetBool("debug")
	return cli.Options{Path: args[0], Profile: p, Debug: debug}, nil
}

// withSignals runs fn with a context cancelled on SIGINT or SIGTERM.
func withSignals(cmd *cobra.Command, fn func(*cli.SignalContext) error) error {
	sigCtx := cli.NewSignalContext(cmd.Context())
	defer sigCtx.Cancel()
	err := fn(sigCtx)
	cli.ReportSignal(cmd.ErrOrStderr(), sigCtx.Signal())
	return err
}
