package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wowstarworld/lambda-go/internal/stdlib"
)

var stdlibCmd = &cobra.Command{
	Use:   "stdlib [file]",
	Short: "Inspect the bundled standard-library sources",
	Long: `With no arguments, lists every bundled standard-library file and
its one-line description. With a file argument, prints that file's
source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStdlib,
}

func init() {
	rootCmd.AddCommand(stdlibCmd)
}

func runStdlib(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprint(w, stdlib.String())
		return nil
	}
	src, ok := stdlib.Lookup(args[0])
	if !ok {
		return fmt.Errorf("no such bundled file: %s", args[0])
	}
	fmt.Fprint(w, src)
	return nil
}
