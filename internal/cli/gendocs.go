package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var genDocsDir string

// genDocsCmd regenerates the markdown CLI reference. Hidden: it exists for
// the release script, not for users.
var genDocsCmd = &cobra.Command{
	Use:    "doc",
	Short:  "Generate markdown reference docs for every command",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(genDocsDir, 0755); err != nil {
			return fmt.Errorf("creating docs directory %s: %w", genDocsDir, err)
		}
		if err := doc.GenMarkdownTree(rootCmd, genDocsDir); err != nil {
			return fmt.Errorf("generating docs: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Docs written to %s\n", genDocsDir)
		return nil
	},
}

func init() {
	genDocsCmd.Flags().StringVar(&genDocsDir, "dir", "docs/cli", "output directory for generated markdown")
	rootCmd.AddCommand(genDocsCmd)
}
