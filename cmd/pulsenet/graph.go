package main

import (
	"github.com/aretw0/pulsenet/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph FILE",
	Short: "Export the network as a Mermaid diagram",
	Long: `Outputs a Mermaid diagram (graph LR) with one shape per module kind.
With --presses, modules that are on or all-high after that many presses are highlighted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd, args)
		if err != nil {
			return err
		}
		presses, _ := cmd.Flags().GetInt("presses")
		return withSignals(cmd, func(ctx *cli.SignalContext) error {
			return cli.Graph(ctx, opts, presses)
		})
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check the network description",
	Long:  `Builds the network, prints its shape and warns about modules no pulse can reach.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd, args)
		if err != nil {
			return err
		}
		return cli.Validate(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd, validateCmd)
	graphCmd.Flags().IntP("presses", "n", 0, "Highlight state after this many presses")
}
