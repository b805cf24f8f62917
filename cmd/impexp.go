package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/arcana"
	"github.com/google/subcommands"
)

// --- Export Command ---

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export readings as JSONL on stdout" }
func (*exportCmd) Usage() string {
	return `arc export

  Writes every reading to stdout in the import/export format: one JSON
  object per line, in chronological order.
`
}

func (*exportCmd) SetFlags(f *flag.FlagSet) {}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := arcana.ExportEntries(os.Stdout, ledger.Entries()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// --- Import Command ---

type importCmd struct {
	file string
	path string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import readings from a JSON document" }
func (*importCmd) Usage() string {
	return `arc import -file <document.json> [-path <jsonpath>]

  Reads a JSON document and adds the readings it contains to the ledger.
  The -path expression selects the list of reading records inside the
  document; the default "$" imports a document that is itself a list.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON document to import readings from")
	f.StringVar(&c.path, "path", "$", "jsonpath expression selecting the list of readings")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	doc, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening import document %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer doc.Close()

	entries, err := arcana.ImportReadings(doc, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing from %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := ledger.Add(entries...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d reading(s) into %s.\n", len(entries), ledger.Path())
	return subcommands.ExitSuccess
}
