package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nvallet/jtype/generics"
	"github.com/nvallet/jtype/internal/log"
	"github.com/nvallet/jtype/java"
	"github.com/nvallet/jtype/jerr"
	"github.com/nvallet/jtype/loader"
	"github.com/spf13/cobra"
)

var EraseCmd = &cobra.Command{
	Use:          "erase model.json [class...]",
	Short:        "Print the erasure of declared classes' type parameters",
	RunE:         runErase,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var logLevel *int

func init() {
	logLevel = EraseCmd.PersistentFlags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runErase(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	loaded, err := loader.LoadFile(args[0])
	if err != nil {
		return err
	}
	if loaded.Errors().HasError() {
		return formatErrors(loaded.Errors())
	}

	classes := loaded.Classes()
	if len(args) > 1 {
		classes = classes[:0:0]
		for _, name := range args[1:] {
			class, ok := loaded.Class(name)
			if !ok {
				return fmt.Errorf("class '%s' is not declared in %s", name, args[0])
			}
			classes = append(classes, class)
		}
	}

	for _, class := range classes {
		for _, p := range class.TypeParameters() {
			erased := generics.Erase(p.DefaultType(), java.EmptySubstitutor)
			rendered := "<none>"
			if erased != nil {
				rendered = erased.String()
			}
			cmd.Printf("%s.%s -> %s\n", class.Name(), p.Name(), rendered)
		}
	}
	return nil
}

func formatErrors(errs *jerr.Errors) error {
	sb := &strings.Builder{}
	for _, e := range errs.Errors() {
		sb.WriteString("\n")
		sb.WriteString(jerr.FormatWithCode(e))
	}
	return fmt.Errorf("errors found in model description:%s", sb.String())
}
