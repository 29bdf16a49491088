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

// seedCmd holds the flags for the 'seed' subcommand.
type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "create the starter account set for a user" }
func (*seedCmd) Usage() string {
	return `dfo seed [-user <key>]

  Creates the fixed starter set of institutions and accounts for the user,
  if none exists yet. Running it again changes nothing.
`
}

func (*seedCmd) SetFlags(_ *flag.FlagSet) {}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sys := openSystem()
	if err := sys.EnsureSeeded(*user); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding %q: %v\n", *user, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderInstitutions(sys.SyncedInstitutions(*user, time.Now())))
	return subcommands.ExitSuccess
}
