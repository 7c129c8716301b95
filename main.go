package main

import (
	"os"

	"github.com/cottand/monoc/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "monoc [subcommand]",
	Short:        "monoc lowers type-checked polymorphic IR to monomorphic IR",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.LowerCmd)
}
