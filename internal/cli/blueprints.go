package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dataforge-labs/dataforge/internal/blueprint"
)

var blueprintsJSON bool

func init() {
	blueprintsCmd.Flags().BoolVar(&blueprintsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(blueprintsCmd)
}

var blueprintsCmd = &cobra.Command{
	Use:   "blueprints",
	Short: "List built-in workspace blueprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		builtins := blueprint.Builtins()

		if blueprintsJSON {
			data, err := json.MarshalIndent(builtins, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling blueprints: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tVERSION\tENTRIES\tDESCRIPTION")
		for _, bp := range builtins {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", bp.Name, bp.Version, len(bp.Entries), bp.Description)
		}
		return w.Flush()
	},
}
