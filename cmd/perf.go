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

// perfCmd holds the flags for the 'perf' subcommand.
type perfCmd struct {
	timeframe string
	account   string
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "display performance over a timeframe" }
func (*perfCmd) Usage() string {
	return `dfo perf [-t <timeframe>] [-a <account>] [-user <key>]

  Displays the change over the timeframe for the whole portfolio, or for a
  single account with -a. The portfolio view names the accounts that moved
  the total the most.
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.timeframe, "t", "month", "Timeframe to report on (day, week, month, year, all).")
	f.StringVar(&c.account, "a", "", "Account id to report on. Defaults to the whole portfolio.")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	sum := sys.PerformanceSummary(*user, tf, c.account, time.Now())
	if len(sum.Points) == 0 {
		fmt.Fprintf(os.Stderr, "Unknown account %q\n", c.account)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderPerformance(sum))
	return subcommands.ExitSuccess
}
