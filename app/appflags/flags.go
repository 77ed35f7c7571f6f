package appflags

import (
	// Stdlib
	"flag"

	// Internal
	"github.com/salsaflow/release-bump/config"
	flags "github.com/salsaflow/release-bump/flag"
	"github.com/salsaflow/release-bump/log"
)

var (
	FlagConfig   = config.LocalConfigFilename
	FlagManifest string
	FlagDryRun   bool
	FlagRollback bool
	FlagLog      = flags.NewStringEnumFlag(
		log.LevelStrings(), log.MustLevelToString(log.Info))
)

func RegisterGlobalFlags(flags *flag.FlagSet) {
	flags.StringVar(&FlagConfig, "config", FlagConfig, "set custom configuration file")
	flags.StringVar(&FlagManifest, "manifest", FlagManifest, "override the manifest file path")
	flags.BoolVar(&FlagDryRun, "dry-run", FlagDryRun, "only print what would be done")
	flags.BoolVar(&FlagRollback, "rollback", FlagRollback, "roll back the changes made on failure")
	flags.Var(FlagLog, "log", "set logging verbosity; {trace|debug|verbose|info|off}")
}
