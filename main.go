package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/dataforge-labs/dataforge/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Best-effort: secrets like DATAFORGE_DB_PASSWORD may live in a local
	// .env file during development.
	_ = godotenv.Load()

	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
