package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/demofolio/demofolio/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio dashboard summary" }
func (*summaryCmd) Usage() string {
	return `dfo summary [-user <key>]

  Displays the user's total balance, invested capital, allocation by asset
  class and the last week of balance history.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sys := openSystem()
	if err := sys.EnsureSeeded(*user); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding %q: %v\n", *user, err)
		return subcommands.ExitFailure
	}

	sum := sys.PortfolioSummary(*user, time.Now())
	printMarkdown(renderer.RenderSummary(sum))
	return subcommands.ExitSuccess
}
