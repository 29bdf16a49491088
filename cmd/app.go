// Package cmd implements the CLI application driving the demo data engine.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/demofolio/demofolio"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&seedCmd{}, "data")
	c.Register(&linkCmd{}, "data")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&perfCmd{}, "reports")
	c.Register(&rankCmd{}, "reports")
	c.Register(&institutionsCmd{}, "reports")

	c.Register(&assistCmd{}, "insights")
}

// Environment variables mirroring the global flags, for scripts and
// extensions.
const (
	EnvStoreDir = "DFO_STORE_DIR"
	EnvUser     = "DFO_USER"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeDir = flag.String("store-dir", envOr(EnvStoreDir, ".demofolio"), "Path to the folder holding the persisted demo bundles")
var user = flag.String("user", envOr(EnvUser, "demo@example.com"), "User key to operate on")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openSystem builds the engine over the app store folder.
func openSystem() *demofolio.System {
	return demofolio.NewSystem(demofolio.NewStore(*storeDir))
}
