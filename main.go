package main

import (
	"os"

	"github.com/nvallet/jtype/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "jtype [subcommand]",
	Short:        "jtype ☕\n a structural model of Java types, with erasure",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.EraseCmd)
	rootCmd.AddCommand(cmd.CheckCmd)
}
