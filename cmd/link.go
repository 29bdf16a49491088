package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/demofolio/demofolio"
)

// linkCmd holds the flags for the 'link' subcommand.
type linkCmd struct {
	file string
}

func (*linkCmd) Name() string     { return "link" }
func (*linkCmd) Synopsis() string { return "link an institution and its accounts from a payload" }
func (*linkCmd) Usage() string {
	return `dfo link -f <payload.json> [-user <key>]

  Reads a link payload describing an institution and its accounts and
  appends them to the user's catalog. Linking the same payload twice
  changes nothing. With -f - the payload is read from stdin.
`
}

func (c *linkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "Link payload file. Defaults to stdin.")
}

func (c *linkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if c.file != "-" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening payload %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	inst, accounts, err := demofolio.ParseLinkPayload(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing payload: %v\n", err)
		return subcommands.ExitUsageError
	}

	sys := openSystem()
	if err := sys.UpsertLinkedAccounts(*user, inst, accounts); err != nil {
		fmt.Fprintf(os.Stderr, "Error linking %q: %v\n", inst.Name, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Linked %s with %d account(s)\n", inst.Name, len(accounts))
	return subcommands.ExitSuccess
}
