// Package cmd implements the CLI application to keep a tarot reading ledger.
package cmd

import (
	"flag"
	"os"

	"github.com/etnz/arcana"
	"github.com/google/subcommands"
)

// Register registers the subcommands.
// A main package calls Register() to declare the subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")
	c.Register(&exportCmd{}, "ledger")

	c.Register(&listCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// EnvLedgerFile overrides the default ledger file location.
const EnvLedgerFile = "ARC_LEDGER_FILE"

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", defaultLedgerFile(), "Path to the ledger file (JSON)")

func defaultLedgerFile() string {
	if p := os.Getenv(EnvLedgerFile); p != "" {
		return p
	}
	return "ledger.json"
}

// loadLedger loads the ledger from the configured store path. A missing store
// is a valid empty ledger.
func loadLedger() (*arcana.Ledger, error) {
	return arcana.LoadLedger(*ledgerFile)
}
