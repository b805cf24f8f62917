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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	top int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a summary of the reading history" }
func (*summaryCmd) Usage() string {
	return `arc summary [-top <n>]

  Displays the total number of readings and the most frequently drawn cards.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.top, "top", 3, "Number of most frequent cards to show")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if ledger.Len() == 0 {
		fmt.Println("No readings recorded yet.")
		return subcommands.ExitSuccess
	}

	summary := arcana.NewSummary(ledger, c.top)
	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
