package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "blight-run",
		Short: "Headless driver for the blight spread simulator",
		Long: `blight-run advances pest/pathogen spread scenarios without a GUI.

It loads a scenario YAML, runs the stochastic spread engine for the
configured number of steps and writes CSV statistics, a compartment
chart and an MJPEG animation of the outbreak.`,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newSweepCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("blight-run version %s\n", version)
		},
	}
}
