package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wowstarworld/lambda-go/internal/manifest"
)

var initOut string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter lambda.yaml manifest",
	Long: `Write a starter manifest with a default package name, an empty
source list, and comment preservation disabled.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initOut, "out", "o", "lambda.yaml", "path to write the manifest to")
}

func runInit(cmd *cobra.Command, args []string) error {
	m := manifest.Default()
	if err := m.WriteFile(initOut); err != nil {
		return fmt.Errorf("failed to write %s: %w", initOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", initOut)
	return nil
}
