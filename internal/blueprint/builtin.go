package blueprint

// DefaultWorkspaceName is the workspace directory created when no name is
// given on the command line.
const DefaultWorkspaceName = "customer-shopping-analytics"

// Canonical CSV headers seeded into the guarded dataset placeholders.
const (
	RawCSVHeader     = "customer_id,visit_date,product_id,category,quantity,price,total_spent\n"
	CleanedCSVHeader = "customer_id,visit_date,product_id,category,quantity,price,total_spent,cleaned_flag\n"
)

// Relative paths of the guarded dataset placeholders.
const (
	RawDatasetPath     = "data/raw/customer_shopping_behavior.csv"
	CleanedDatasetPath = "data/processed/customer_cleaned.csv"
)

const gitignoreContent = `# Python artifacts
__pycache__/
*.pyc
*.pyo
*.pyd
env/
.venv/
venv/
.Python
# Jupyter
.ipynb_checkpoints/
# Data and outputs
data/raw/*
!data/raw/customer_shopping_behavior.csv
data/processed/*
# VSCode
.vscode/
`

const configPyContent = `# Configuration variables
DB_PATH = 'data/processed/customer_cleaned.db'
`

const dbConnectionPyContent = `# Simple sqlite database connection helper
import sqlite3
from pathlib import Path

DB_FILE = Path(__file__).resolve().parents[1] / 'data' / 'processed' / 'customer_cleaned.db'

def get_connection(db_path: str = None):
    """Return a sqlite3 connection. If db_path is None, a file in data/processed will be used."""
    path = DB_FILE if db_path is None else Path(db_path)
    path.parent.mkdir(parents=True, exist_ok=True)
    conn = sqlite3.connect(str(path))
    return conn
`

const readmeContent = `# customer-shopping-analytics

Project skeleton for customer shopping analytics.

## Structure
See folders for data, notebooks, SQL, reports and src.
`

// Builtin returns the built-in customer-shopping-analytics blueprint: raw
// and processed dataset placeholders, notebook and SQL skeletons, report
// and dashboard stubs, and a small Python src/ package. The two dataset
// CSVs are guarded so re-runs never clobber collected data.
func Builtin() *Blueprint {
	return &Blueprint{
		Name:        DefaultWorkspaceName,
		Version:     "1.0.0",
		Description: "Analytics workspace for the customer shopping behavior dataset",
		Entries: []Entry{
			{Path: "data/raw", Kind: KindDir},
			{Path: RawDatasetPath, Kind: KindEmpty, Seed: RawCSVHeader},
			{Path: "data/processed", Kind: KindDir},
			{Path: CleanedDatasetPath, Kind: KindEmpty, Seed: CleanedCSVHeader},
			{Path: "notebooks", Kind: KindDir},
			{Path: "notebooks/01_data_cleaning_and_eda.ipynb", Kind: KindNotebook},
			{Path: "notebooks/02_advanced_analytics.ipynb", Kind: KindNotebook},
			{Path: "notebooks/03_predictive_modeling.ipynb", Kind: KindNotebook},
			{Path: "notebooks/04_statistical_analysis.ipynb", Kind: KindNotebook},
			{Path: "sql", Kind: KindDir},
			{Path: "sql/01_schema_creation.sql", Kind: KindText,
				Text: "-- SQL: schema creation\n-- Add CREATE TABLE statements here\n"},
			{Path: "sql/02_basic_queries.sql", Kind: KindText,
				Text: "-- Basic queries for EDA and reporting\n"},
			{Path: "sql/03_advanced_business_queries.sql", Kind: KindText,
				Text: "-- Joins, window functions, cohort analysis queries\n"},
			{Path: "sql/04_insights_queries.sql", Kind: KindText,
				Text: "-- Business insights queries\n"},
			{Path: "powerbi/screenshots", Kind: KindDir},
			{Path: "powerbi/customer_behavior_dashboard.pbix", Kind: KindBinary,
				Data: []byte("%PDF-1.4\n%placeholder pbix-like file\n")},
			{Path: "reports", Kind: KindDir},
			{Path: "reports/technical_report.md", Kind: KindText,
				Text: "# Technical report\n\nDescribe methods, data pipeline, models, and results.\n"},
			{Path: "reports/executive_summary.md", Kind: KindText,
				Text: "# Executive summary\n\nHigh level summary for business stakeholders.\n"},
			{Path: "reports/presentation.pdf", Kind: KindBinary,
				Data: []byte("%PDF-1.4\n%placeholder PDF presentation\n")},
			{Path: "src", Kind: KindDir},
			{Path: "src/__init__.py", Kind: KindText, Text: "# src package\n"},
			{Path: "src/config.py", Kind: KindText, Text: configPyContent},
			{Path: "src/database_connection.py", Kind: KindText, Text: dbConnectionPyContent},
			{Path: ".gitignore", Kind: KindText, Text: gitignoreContent},
			{Path: "requirements.txt", Kind: KindText,
				Text: "pandas\nnumpy\nscikit-learn\nmatplotlib\nnotebook\n"},
			{Path: "README.md", Kind: KindText, Text: readmeContent},
		},
	}
}

// Builtins returns every built-in blueprint, in display order.
func Builtins() []*Blueprint {
	return []*Blueprint{Builtin()}
}
