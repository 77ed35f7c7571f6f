package bumpCmd

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/release-bump/app"
	"github.com/salsaflow/release-bump/app/appflags"
	"github.com/salsaflow/release-bump/errs"
	"github.com/salsaflow/release-bump/release"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

// UsageMessage is printed to stdout when the argument count is wrong.
const UsageMessage = "Specify release version or bump: major/minor/patch"

var Command = &gocli.Command{
	UsageLine: "bump [-dry-run] [-rollback] [-manifest PATH] {major|minor|patch}",
	Short:     "bump the manifest version, commit and tag",
	Long: `
  Bump the version declared in the manifest file,
  then commit the manifest and tag the commit as v<new version>.

  The manifest must contain a line like version='1.2.3',
	`,
	Action: Run,
}

func init() {
	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)
}

// Run is also used as the default action of the application.
func Run(cmd *gocli.Command, args []string) {
	if len(args) != 1 {
		fmt.Println(UsageMessage)
		return
	}

	conf := app.MustInit()

	res, err := release.Bump(release.NewGitRepository(conf.AnnotatedTags), &release.Options{
		Kind:   args[0],
		Config: conf,
		DryRun: appflags.FlagDryRun,
	})
	if err != nil {
		errs.Fatal(err)
	}

	fmt.Println(res)
}
