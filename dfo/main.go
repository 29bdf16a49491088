package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/demofolio/demofolio/cmd"
)

// completion describes the command tree for shell completion. It only runs
// when the shell asks for completions, otherwise it is a no-op.
func completion() {
	globalFlags := map[string]complete.Predictor{
		"store-dir": predict.Dirs("*"),
		"user":      predict.Nothing,
	}
	timeframes := map[string]complete.Predictor{
		"t": predict.Set{"day", "week", "month", "year", "all"},
	}
	c := &complete.Command{
		Flags: globalFlags,
		Sub: map[string]*complete.Command{
			"seed":    {},
			"link":    {Flags: map[string]complete.Predictor{"f": predict.Files("*.json")}},
			"summary": {},
			"perf": {Flags: map[string]complete.Predictor{
				"t": timeframes["t"],
				"a": predict.Nothing,
			}},
			"rank":         {Flags: timeframes},
			"institutions": {},
			"assist":       {},
		},
	}
	c.Complete("dfo")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
