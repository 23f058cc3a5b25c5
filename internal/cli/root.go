package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is the CLI version
var Version = "v0.0.0-dev"

// NewRootCmd returns the showdown command with all of its subcommands
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "showdown",
		Short: "Compare five-card poker hands",
		Long: `Showdown classifies five-card poker hands and picks the winners.

Hands are five space-separated cards such as "4H 5H 2H 3H AH".
Ranks are 2-10, J, Q, K and A; suits are H, D, S and C.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newWinnersCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "showdown %s\n", Version)
		},
	})

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
