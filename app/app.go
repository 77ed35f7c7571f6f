package app

import (
	// Internal
	"github.com/salsaflow/release-bump/app/appflags"
	"github.com/salsaflow/release-bump/config"
	"github.com/salsaflow/release-bump/errs"
	"github.com/salsaflow/release-bump/log"
)

// Init sets up logging and loads the configuration,
// applying the global command line flags on top of it.
func Init() (*config.Config, error) {
	// Set up logging.
	log.SetV(log.MustStringToLevel(appflags.FlagLog.Value()))

	// Load the configuration file.
	conf, err := config.Load(appflags.FlagConfig)
	if err != nil {
		return nil, err
	}

	// Apply the flags.
	if appflags.FlagManifest != "" {
		conf.Manifest = appflags.FlagManifest
	}
	if appflags.FlagRollback {
		conf.RollbackOnFailure = true
	}
	return conf, nil
}

func MustInit() *config.Config {
	conf, err := Init()
	if err != nil {
		errs.Fatal(err)
	}
	return conf
}
