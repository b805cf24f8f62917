package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/arcana"
	"github.com/etnz/arcana/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	start string
	end   string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list readings, optionally filtered by date range" }
func (*listCmd) Usage() string {
	return `arc list [-s <start_date>] [-d <end_date>]

  Lists readings from the ledger in chronological order. Both bounds are
  optional and inclusive.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "The start date for the range (YYYY-MM-DD)")
	f.StringVar(&c.end, "d", "", "The end date for the range (YYYY-MM-DD)")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var span arcana.Range
	if c.start != "" {
		start, err := arcana.ParseDate(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
		span.From = start
	}
	if c.end != "" {
		end, err := arcana.ParseDate(c.end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		span.To = end
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var entries []arcana.Entry
	for entry := range ledger.InRange(span) {
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		fmt.Println("No readings found for the specified range.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ListMarkdown(entries))
	return subcommands.ExitSuccess
}
