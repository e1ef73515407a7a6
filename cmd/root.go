package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "arcanaview",
	Short: "Tool for displaying tarot cards and readings",
	Long: `Arcanaview renders tarot cards from your deck library, upright or reversed.
It draws readings, serves them as web pages, generates reversed card images,
and reports which cards of a rendered page are reversed.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
