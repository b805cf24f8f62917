package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/arcana"
	"github.com/google/subcommands"
)

type addCmd struct {
	question string
	cards    string
	spread   string
	notes    string
	date     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new tarot reading" }
func (*addCmd) Usage() string {
	return `arc add -question <question> -cards <cards> [-spread <spread>] [-notes <notes>] [-d <date>]

  Records a reading in the ledger. Cards are comma-separated, in draw order.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.question, "question", "", "Question or focus of the reading")
	f.StringVar(&c.cards, "cards", "", "Comma-separated list of cards drawn")
	f.StringVar(&c.spread, "spread", "Three Card", "Spread or layout used")
	f.StringVar(&c.notes, "notes", "", "Any observations or insights")
	f.StringVar(&c.date, "d", arcana.Today().String(), "Date of the reading (YYYY-MM-DD, defaults to today)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.question == "" || c.cards == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	entry, err := arcana.NewEntry(c.date, c.question, arcana.ParseCards(c.cards), c.spread, c.notes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := ledger.Add(entry); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added reading on %s with %d card(s). Saved to %s.\n", entry.Date, len(entry.Cards), ledger.Path())
	return subcommands.ExitSuccess
}
