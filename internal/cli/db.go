package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dataforge-labs/dataforge/internal/branding"
	"github.com/dataforge-labs/dataforge/internal/config"
	"github.com/dataforge-labs/dataforge/internal/dataset"
	"github.com/dataforge-labs/dataforge/internal/db"
)

var (
	loadTable     string
	loadMode      string
	loadBatchSize int
	queryFormat   string
)

// msgPrinter renders row counts with digit grouping (12,345 not 12345).
var msgPrinter = message.NewPrinter(language.English)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Load datasets into and query the analytics database",
	Long: `Database commands for the analytics workspace.

Connection settings come from config keys and environment variables (see
'` + branding.CLIName() + ` config list'). The password is read from ` + branding.EnvVar("DB_PASSWORD") + `,
a .env file, or the db.password config key; there is no password flag.`,
}

var dbPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Verify database connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := dbConfig()

		conn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s\n", cfg.Redacted())
		return nil
	},
}

var dbLoadCmd = &cobra.Command{
	Use:   "load <csv-file>",
	Short: "Load a CSV dataset into a database table",
	Long: `Read a CSV file, infer a column type for each header, and load the rows
into the configured database in batched transactions.

By default the destination table is replaced; use --mode append to add to
an existing table. Empty CSV values become NULL.

Examples:
  ` + branding.CLIName() + ` db load data/raw/customer_shopping_behavior.csv
  ` + branding.CLIName() + ` db load sales.csv --table sales_2024 --mode append`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		table := loadTable
		if table == "" {
			table = dataset.TableName(path)
		}

		tbl, err := dataset.ReadFile(path)
		if err != nil {
			return err
		}
		types := dataset.InferColumns(tbl)

		cfg := dbConfig()
		conn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		n, err := conn.Load(cmd.Context(), table, tbl.Columns, tbl.Rows, db.LoadOptions{
			Mode:      db.Mode(loadMode),
			BatchSize: loadBatchSize,
			Types:     types,
		})
		if err != nil {
			return err
		}

		msgPrinter.Fprintf(cmd.OutOrStdout(), "Loaded %d rows into %s (%s)\n", n, table, cfg.Redacted())
		return nil
	},
}

var dbQueryCmd = &cobra.Command{
	Use:   "query [sql]",
	Short: "Run a SQL statement and print the result",
	Long: `Run a SQL statement against the configured database. The statement comes
from the argument, or from stdin when no argument (or "-") is given.

Examples:
  ` + branding.CLIName() + ` db query "SELECT category, COUNT(*) FROM customer_shopping_behavior GROUP BY category"
  cat report.sql | ` + branding.CLIName() + ` db query --format csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stmt, err := queryStatement(cmd, args)
		if err != nil {
			return err
		}

		conn, err := db.Open(cmd.Context(), dbConfig())
		if err != nil {
			return err
		}
		defer conn.Close()

		res, err := conn.Query(cmd.Context(), stmt)
		if err != nil {
			return err
		}
		return printQueryResult(cmd.OutOrStdout(), res, queryFormat)
	},
}

func init() {
	dbLoadCmd.Flags().StringVar(&loadTable, "table", "", "destination table (default: derived from the file name)")
	dbLoadCmd.Flags().StringVar(&loadMode, "mode", string(db.ModeReplace), "load mode: replace or append")
	dbLoadCmd.Flags().IntVar(&loadBatchSize, "batch-size", 0, "rows per transaction (default 500)")
	dbQueryCmd.Flags().StringVar(&queryFormat, "format", "table", "output format: table, csv, or json")

	dbCmd.AddCommand(dbPingCmd)
	dbCmd.AddCommand(dbLoadCmd)
	dbCmd.AddCommand(dbQueryCmd)
	rootCmd.AddCommand(dbCmd)
}

// dbConfig assembles connection settings from config and environment. The
// password deliberately has no flag or default; it is supplied through
// env, a .env file, or the config file.
func dbConfig() db.Config {
	return db.Config{
		Driver:   config.Get(config.KeyDBDriver),
		Host:     config.Get(config.KeyDBHost),
		Port:     config.GetInt(config.KeyDBPort),
		User:     config.Get(config.KeyDBUser),
		Password: config.Get(config.KeyDBPassword),
		Database: config.Get(config.KeyDBName),
		Path:     config.Get(config.KeyDBPath),
	}
}

func queryStatement(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading query from stdin: %w", err)
	}
	stmt := strings.TrimSpace(string(data))
	if stmt == "" {
		return "", fmt.Errorf("no query given (pass SQL as an argument or on stdin)")
	}
	return stmt, nil
}

func printQueryResult(out io.Writer, res *db.Result, format string) error {
	switch format {
	case "table":
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, strings.Join(res.Columns, "\t"))
		for _, row := range res.Rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		msgPrinter.Fprintf(out, "(%d rows)\n", len(res.Rows))
		return nil

	case "csv":
		w := csv.NewWriter(out)
		if err := w.Write(res.Columns); err != nil {
			return err
		}
		for _, row := range res.Rows {
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()

	case "json":
		records := make([]map[string]string, len(res.Rows))
		for i, row := range res.Rows {
			rec := make(map[string]string, len(res.Columns))
			for j, col := range res.Columns {
				rec[col] = row[j]
			}
			records[i] = rec
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil

	default:
		return fmt.Errorf("unknown format %q (expected table, csv, or json)", format)
	}
}
