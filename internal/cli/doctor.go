package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dataforge-labs/dataforge/internal/workspace"
)

var (
	doctorFix bool
	doctorDir string
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Recreate missing entries and seed empty dataset files")
	doctorCmd.Flags().StringVar(&doctorDir, "dir", "", "Workspace directory (default: nearest workspace above the current directory)")
	doctorCmd.Flags().StringVar(&workspaceBlueprint, "blueprint", "", "Check against a blueprint YAML file instead of the built-in layout")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for a materialized workspace",
	Long: `Verify a workspace against its blueprint: the manifest, every directory
and file, and whether the guarded dataset files hold data yet. With --fix,
missing entries are recreated; files that already hold data are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bp, err := loadBlueprint(workspaceBlueprint)
		if err != nil {
			return err
		}

		dir := doctorDir
		if dir == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			dir, err = workspace.Find(cwd)
			if err != nil {
				return fmt.Errorf("%w (run '%s doctor --dir <path>' to pick one explicitly)", err, cmd.Root().Name())
			}
		}

		missing, err := workspace.Check(cmd.OutOrStdout(), dir, bp, buildVersion, doctorFix)
		if err != nil {
			return err
		}
		if missing > 0 {
			return fmt.Errorf("%d blueprint entr%s missing (re-run with --fix to create them)",
				missing, plural(missing, "y is", "ies are"))
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Workspace is healthy.")
		return nil
	},
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
