package main

import (
	"fmt"

	"github.com/aretw0/pulsenet"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pulsenet",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pulsenet version %s\n", pulsenet.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
