package cli

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/dataforge-labs/dataforge/internal/blueprint"
	"github.com/dataforge-labs/dataforge/internal/branding"
	"github.com/dataforge-labs/dataforge/internal/materialize"
	"github.com/dataforge-labs/dataforge/internal/workspace"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Flags shared by new and plan.
var (
	workspaceBlueprint string
	workspaceOutputDir string
)

func init() {
	for _, c := range []*cobra.Command{newCmd, planCmd} {
		c.Flags().StringVar(&workspaceBlueprint, "blueprint", "", "Materialize a blueprint YAML file instead of the built-in layout")
		c.Flags().StringVar(&workspaceOutputDir, "output", "", "Parent directory for the workspace (default: current directory)")
	}
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Materialize an analytics workspace",
	Long: `Materialize the directory tree for an analytics workspace.

Without arguments, creates '` + blueprint.DefaultWorkspaceName + `' in the
current directory. Re-running over an existing workspace is safe: dataset
files that already hold data are preserved, everything else is refreshed.

Examples:
  dataforge new
  dataforge new retail-analysis
  dataforge new retail-analysis --blueprint custom.yaml --output ~/projects`,
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
		result, err := materialize.Materialize(bp, root)
		if err != nil {
			return err
		}
		if err := workspace.WriteManifest(result.Root, bp.Name, bp.Version, buildVersion); err != nil {
			return err
		}

		printMaterializeResult(cmd, bp, result)
		return nil
	},
}

// loadBlueprint returns the built-in blueprint, or a schema-validated one
// parsed from path.
func loadBlueprint(path string) (*blueprint.Blueprint, error) {
	if path == "" {
		return blueprint.Builtin(), nil
	}
	return blueprint.ParseFile(path)
}

func workspaceName(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return blueprint.DefaultWorkspaceName
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}
	return nil
}

func resolveWorkspaceDir(name string) string {
	if workspaceOutputDir != "" {
		return filepath.Join(workspaceOutputDir, name)
	}
	return filepath.Join(".", name)
}

func printMaterializeResult(cmd *cobra.Command, bp *blueprint.Blueprint, result *materialize.Result) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Workspace %s at %s\n", bp.Name, result.Root)
	for _, p := range result.Created {
		fmt.Fprintf(out, "  created   %s\n", p)
	}
	for _, p := range result.Skipped {
		fmt.Fprintf(out, "  preserved %s\n", p)
	}

	if bp.Name != blueprint.DefaultWorkspaceName {
		return
	}
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Drop your dataset into %s\n", blueprint.RawDatasetPath)
	fmt.Fprintf(out, "  2. Load it with '%s db load %s'\n", branding.CLIName(), blueprint.RawDatasetPath)
	fmt.Fprintln(out, "  3. Work through the notebooks in notebooks/")
}
