package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dataforge-labs/dataforge/internal/materialize"
)

func init() {
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan [name]",
	Short: "Show what 'new' would do without writing anything",
	Long: `Walk the blueprint against the target directory and report, per entry,
whether a run of 'new' would create it, overwrite it, or preserve it.
Nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bp, err := loadBlueprint(workspaceBlueprint)
		if err != nil {
			return err
		}

		name := workspaceName(args)
		if err := validateName(name); err != nil {
			return err
		}

		root := resolveWorkspaceDir(name)
		actions, err := materialize.Plan(bp, root)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Plan for %s (blueprint %s %s):\n", root, bp.Name, bp.Version)
		counts := map[materialize.Op]int{}
		for _, a := range actions {
			fmt.Fprintf(out, "  %-9s %s\n", a.Op, a.Path)
			counts[a.Op]++
		}
		fmt.Fprintf(out, "\n%d to create, %d to overwrite, %d preserved\n",
			counts[materialize.OpCreate],
			counts[materialize.OpOverwrite],
			counts[materialize.OpPreserve]+counts[materialize.OpExists])
		if n := counts[materialize.OpConflict]; n > 0 {
			fmt.Fprintf(out, "%d conflict(s): an existing path has the wrong type\n", n)
		}
		return nil
	},
}
