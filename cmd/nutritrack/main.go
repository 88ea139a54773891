package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:           "nutritrack",
	Short:         "Nutrition targets and food portions",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Running the binary without a subcommand starts the API server
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, estimateCmd, searchCmd, scaleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
