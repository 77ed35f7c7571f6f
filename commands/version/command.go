package versionCmd

import (
	// Stdlib
	"fmt"
	"os"

	// Internal
	"github.com/salsaflow/release-bump/app"
	"github.com/salsaflow/release-bump/app/appflags"
	"github.com/salsaflow/release-bump/commands/version/bump"
	"github.com/salsaflow/release-bump/errs"
	"github.com/salsaflow/release-bump/release"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "version",
	Short:     "print the current project version",
	Long: `
  Print the project version string as declared in the manifest file.

  There are also some subcommands available. Check them out.
	`,
	Action: func(cmd *gocli.Command, args []string) {
		if len(args) != 0 {
			cmd.Usage()
			os.Exit(2)
		}

		ver, err := release.Current(app.MustInit())
		if err != nil {
			errs.Fatal(err)
		}

		fmt.Println(ver)
	},
}

func init() {
	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)

	// Register subcommands.
	Command.MustRegisterSubcommand(bumpCmd.Command)
}
