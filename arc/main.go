package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/arcana/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the shell completion tree. Complete() takes over and
// exits the process when invoked by the shell, and is a no-op otherwise.
func completion() {
	arc := &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"add": {
				Flags: map[string]complete.Predictor{
					"question": predict.Nothing,
					"cards":    predict.Nothing,
					"spread":   predict.Set{"Three Card", "Single Card", "Celtic Cross"},
					"notes":    predict.Nothing,
					"d":        predict.Nothing,
				},
			},
			"list": {
				Flags: map[string]complete.Predictor{
					"s": predict.Nothing,
					"d": predict.Nothing,
				},
			},
			"summary": {
				Flags: map[string]complete.Predictor{
					"top": predict.Something,
				},
			},
			"fmt":    {},
			"export": {},
			"import": {
				Flags: map[string]complete.Predictor{
					"file": predict.Files("*.json"),
					"path": predict.Nothing,
				},
			},
			"topic": {
				Args: predict.Set{"readme", "quickstart", "store-format", "dates", "import-export"},
			},
		},
	}
	arc.Complete("arc")
}
