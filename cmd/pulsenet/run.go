package main

import (
	"github.com/aretw0/pulsenet/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Press the button a fixed number of times",
	Long:  `Simulates --presses button presses and prints the low and high pulse counts and their product.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd, args)
		if err != nil {
			return err
		}
		return withSignals(cmd, func(ctx *cli.SignalContext) error {
			return cli.RunFixed(ctx, opts)
		})
	},
}

var untilCmd = &cobra.Command{
	Use:   "until FILE",
	Short: "Find the first press on which a module receives a pulse",
	Long: `Presses the button until --target receives a --level pulse and prints the press number.
With --period the answer is predicted from the counters feeding the target.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd, args)
		if err != nil {
			return err
		}
		period, _ := cmd.Flags().GetBool("period")
		return withSignals(cmd, func(ctx *cli.SignalContext) error {
			return cli.RunUntil(ctx, opts, period)
		})
	},
}

var traceCmd = &cobra.Command{
	Use:   "trace FILE",
	Short: "Print every pulse of the first presses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd, args)
		if err != nil {
			return err
		}
		presses, _ := cmd.Flags().GetInt("presses")
		state, _ := cmd.Flags().GetBool("state")
		return withSignals(cmd, func(ctx *cli.SignalContext) error {
			return cli.Trace(ctx, opts, presses, state)
		})
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-run the fixed simulation whenever the file changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd, args)
		if err != nil {
			return err
		}
		return withSignals(cmd, func(ctx *cli.SignalContext) error {
			return cli.Watch(ctx, opts)
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd, untilCmd, traceCmd, watchCmd)

	runCmd.Flags().IntP("presses", "n", 1000, "Number of button presses")
	watchCmd.Flags().IntP("presses", "n", 1000, "Number of button presses")
	traceCmd.Flags().IntP("presses", "n", 1, "Number of button presses to trace")
	traceCmd.Flags().Bool("state", false, "Print the node state changes of each press")

	untilCmd.Flags().StringP("target", "t", "rx", "Module to observe")
	untilCmd.Flags().String("level", "low", "Pulse level to wait for (low or high)")
	untilCmd.Flags().Bool("period", false, "Predict the press from counter periods instead of simulating")
}
