package main

import (
	// Stdlib
	"os"

	// Internal
	"github.com/salsaflow/release-bump/app/appflags"
	"github.com/salsaflow/release-bump/app/metadata"
	"github.com/salsaflow/release-bump/commands/version"
	"github.com/salsaflow/release-bump/commands/version/bump"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

func main() {
	// Initialise the application.
	rb := gocli.NewApp("release-bump")
	rb.UsageLine = "release-bump [-dry-run] [-rollback] [-manifest PATH] {major|minor|patch}"
	rb.Short = "bump the manifest version, commit and tag the release"
	rb.Version = metadata.Version
	rb.Long = `
  release-bump increments the semantic version declared in the manifest,
  commits the manifest and tags the commit as v<new version>.`

	// Bumping is the default action.
	rb.Action = bumpCmd.Run

	// Register global flags.
	appflags.RegisterGlobalFlags(&rb.Flags)

	// Register subcommands.
	rb.MustRegisterSubcommand(versionCmd.Command)

	// Run the application.
	rb.Run(os.Args[1:])
}
