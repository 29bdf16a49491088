package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/demofolio/demofolio"
	"github.com/demofolio/demofolio/renderer"
)

// rankCmd holds the flags for the 'rank' subcommand.
type rankCmd struct {
	timeframe string
}

func (*rankCmd) Name() string     { return "rank" }
func (*rankCmd) Synopsis() string { return "compare every account's performance" }
func (*rankCmd) Usage() string {
	return `dfo rank [-t <timeframe>] [-user <key>]

  Displays every account's balance, gain and return over the timeframe.
`
}

func (c *rankCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeframe, "t", "month", "Timeframe to report on (day, week, month, year, all).")
}

func (c *rankCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tf, err := demofolio.ParseTimeframe(c.timeframe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing timeframe: %v\n", err)
		return subcommands.ExitUsageError
	}

	sys := openSystem()
	if err := sys.EnsureSeeded(*user); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding %q: %v\n", *user, err)
		return subcommands.ExitFailure
	}

	ranked := sys.RankedAccounts(*user, tf, time.Now())
	printMarkdown(renderer.RenderRankings(&renderer.Rankings{Timeframe: tf, Entries: ranked}))
	return subcommands.ExitSuccess
}
