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

// institutionsCmd holds the flags for the 'institutions' subcommand.
type institutionsCmd struct{}

func (*institutionsCmd) Name() string     { return "institutions" }
func (*institutionsCmd) Synopsis() string { return "display the connections view" }
func (*institutionsCmd) Usage() string {
	return `dfo institutions [-user <key>]

  Displays every linked institution with its simulated connection status and
  the accounts it holds.
`
}

func (*institutionsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *institutionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sys := openSystem()
	if err := sys.EnsureSeeded(*user); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding %q: %v\n", *user, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderInstitutions(sys.SyncedInstitutions(*user, time.Now())))
	return subcommands.ExitSuccess
}
