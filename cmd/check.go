package cmd

import (
	"github.com/nvallet/jtype/loader"
	"github.com/spf13/cobra"
)

var CheckCmd = &cobra.Command{
	Use:          "check model.json",
	Short:        "Validate a model description",
	RunE:         runCheck,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func runCheck(cmd *cobra.Command, args []string) error {
	loaded, err := loader.LoadFile(args[0])
	if err != nil {
		return err
	}
	if loaded.Errors().HasError() {
		return formatErrors(loaded.Errors())
	}
	cmd.Printf("%s: %d classes ok\n", args[0], len(loaded.Classes()))
	return nil
}
